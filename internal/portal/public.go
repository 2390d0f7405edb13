package portal

import (
	"net/http"
	"sort"
	"strings"

	"github.com/hmse-unipi/portal/internal/model"
)

const upcomingCount = 3

type eventsPage struct {
	Query      string
	Categories []string
	Events     []eventCard
}

type blogPage struct {
	Posts []model.Blog
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	page := eventsPage{}
	d := h.data(r, "Home", page)

	events, err := h.api.Events.List(h.apiContext(r), nil)
	if err != nil {
		h.fail(w, r, err, "home.html", d, "Failed to load events")
		return
	}

	if len(events) > upcomingCount {
		events = events[:upcomingCount]
	}
	page.Events = h.cards(events)
	d.Page = page
	h.render(w, r, http.StatusOK, "home.html", d)
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	page := eventsPage{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	d := h.data(r, "Events", page)

	events, err := h.api.Events.List(h.apiContext(r), nil)
	if err != nil {
		h.fail(w, r, err, "events.html", d, "Failed to load events")
		return
	}

	page.Categories = eventCategories(events)
	page.Events = h.cards(filterEvents(events, page.Query))
	d.Page = page
	h.render(w, r, http.StatusOK, "events.html", d)
}

// filterEvents keeps events whose title, categories or location contain
// q, case-insensitively. An empty q keeps everything.
func filterEvents(events []model.Event, q string) []model.Event {
	q = strings.ToLower(q)
	if q == "" {
		return events
	}

	var out []model.Event
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Categories), q) ||
			strings.Contains(strings.ToLower(e.Location), q) {
			out = append(out, e)
		}
	}
	return out
}

// eventCategories lists the distinct non-empty categories, sorted.
func eventCategories(events []model.Event) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range events {
		if e.Categories == "" || seen[e.Categories] {
			continue
		}
		seen[e.Categories] = true
		out = append(out, e.Categories)
	}
	sort.Strings(out)
	return out
}

func (h *handlers) blog(w http.ResponseWriter, r *http.Request) {
	page := blogPage{}
	d := h.data(r, "Blog", page)

	posts, err := h.api.Blogs.List(h.apiContext(r))
	if err != nil {
		h.fail(w, r, err, "blog.html", d, "Failed to load blog posts")
		return
	}

	page.Posts = posts
	d.Page = page
	h.render(w, r, http.StatusOK, "blog.html", d)
}

func (h *handlers) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about.html", h.data(r, "About Us", nil))
}
