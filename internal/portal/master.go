package portal

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hmse-unipi/portal/internal/model"
)

const (
	categoriesPath = "/dashboard/master/blog-category"
	blogsPath      = "/dashboard/master/blog"
)

type categoriesPage struct {
	Categories []model.BlogCategory
	Editing    *model.BlogCategory
}

type blogsPage struct {
	Blogs      []model.Blog
	Categories []model.BlogCategory
	Form       model.Blog
}

// CategoryNames joins the names of the given category ids.
func (p blogsPage) CategoryNames(ids model.IDs) string {
	var names []string
	for _, c := range p.Categories {
		if ids.Contains(c.ID) {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, ", ")
}

func (h *handlers) categoriesData(r *http.Request, editing *model.BlogCategory) (categoriesPage, error) {
	cats, err := h.api.BlogCategories.List(h.apiContext(r))
	if err != nil {
		return categoriesPage{}, err
	}
	return categoriesPage{Categories: cats, Editing: editing}, nil
}

func (h *handlers) categories(w http.ResponseWriter, r *http.Request) {
	d := h.data(r, "Blog Categories", categoriesPage{})

	var editing *model.BlogCategory
	if id, err := strconv.Atoi(r.URL.Query().Get("edit")); err == nil && id > 0 {
		c, err := h.api.BlogCategories.Get(h.apiContext(r), id)
		if err != nil {
			h.fail(w, r, err, "master_blog_category.html", d, "Failed to load category")
			return
		}
		editing = c
	}

	page, err := h.categoriesData(r, editing)
	if err != nil {
		h.fail(w, r, err, "master_blog_category.html", d, "Failed to load categories")
		return
	}

	d.Page = page
	h.render(w, r, http.StatusOK, "master_blog_category.html", d)
}

// categoryFailed re-renders the category list with msg or the error of
// err.
func (h *handlers) categoryFailed(w http.ResponseWriter, r *http.Request, err error, msg string, editing *model.BlogCategory) {
	d := h.data(r, "Blog Categories", categoriesPage{Editing: editing})
	if page, lerr := h.categoriesData(r, editing); lerr == nil {
		d.Page = page
	}
	if msg == "" {
		h.invalid(w, r, err, "master_blog_category.html", d)
		return
	}
	h.fail(w, r, err, "master_blog_category.html", d, msg)
}

func (h *handlers) createCategory(w http.ResponseWriter, r *http.Request) {
	in := &model.BlogCategory{Name: strings.TrimSpace(r.PostFormValue("name"))}
	if err := h.validate.Struct(in); err != nil {
		h.categoryFailed(w, r, err, "", nil)
		return
	}

	if err := h.api.BlogCategories.Create(h.apiContext(r), in); err != nil {
		h.categoryFailed(w, r, err, "Failed to add category", nil)
		return
	}
	http.Redirect(w, r, categoriesPath, http.StatusSeeOther)
}

func (h *handlers) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	in := &model.BlogCategory{ID: id, Name: strings.TrimSpace(r.PostFormValue("name"))}
	if err := h.validate.Struct(in); err != nil {
		h.categoryFailed(w, r, err, "", in)
		return
	}

	if err := h.api.BlogCategories.Update(h.apiContext(r), id, in); err != nil {
		h.categoryFailed(w, r, err, "Failed to update category", in)
		return
	}
	http.Redirect(w, r, categoriesPath, http.StatusSeeOther)
}

func (h *handlers) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.api.BlogCategories.Delete(h.apiContext(r), id); err != nil {
		h.categoryFailed(w, r, err, "Failed to delete category", nil)
		return
	}
	http.Redirect(w, r, categoriesPath, http.StatusSeeOther)
}

func (h *handlers) blogsData(r *http.Request, form model.Blog) (blogsPage, error) {
	ctx := h.apiContext(r)

	blogs, err := h.api.Blogs.List(ctx)
	if err != nil {
		return blogsPage{}, err
	}
	cats, err := h.api.BlogCategories.List(ctx)
	if err != nil {
		return blogsPage{}, err
	}
	return blogsPage{Blogs: blogs, Categories: cats, Form: form}, nil
}

func (h *handlers) blogs(w http.ResponseWriter, r *http.Request) {
	d := h.data(r, "Blog Posts", blogsPage{})

	var form model.Blog
	if id, err := strconv.Atoi(r.URL.Query().Get("edit")); err == nil && id > 0 {
		b, err := h.api.Blogs.Get(h.apiContext(r), id)
		if err != nil {
			h.fail(w, r, err, "master_blog.html", d, "Failed to load blog")
			return
		}
		form = *b
	}

	page, err := h.blogsData(r, form)
	if err != nil {
		h.fail(w, r, err, "master_blog.html", d, "Failed to load blogs")
		return
	}

	d.Page = page
	h.render(w, r, http.StatusOK, "master_blog.html", d)
}

func blogForm(r *http.Request) model.Blog {
	_ = r.ParseForm()

	ids := model.IDs{}
	for _, v := range r.PostForm["categories"] {
		if id, err := strconv.Atoi(v); err == nil {
			ids = append(ids, id)
		}
	}

	return model.Blog{
		Title:      strings.TrimSpace(r.PostFormValue("title")),
		Content:    strings.TrimSpace(r.PostFormValue("content")),
		ImageURL:   strings.TrimSpace(r.PostFormValue("image_url")),
		Categories: ids,
	}
}

func (h *handlers) blogFailed(w http.ResponseWriter, r *http.Request, err error, msg string, form model.Blog) {
	d := h.data(r, "Blog Posts", blogsPage{Form: form})
	if page, lerr := h.blogsData(r, form); lerr == nil {
		d.Page = page
	}
	if msg == "" {
		h.invalid(w, r, err, "master_blog.html", d)
		return
	}
	h.fail(w, r, err, "master_blog.html", d, msg)
}

func (h *handlers) createBlog(w http.ResponseWriter, r *http.Request) {
	in := blogForm(r)
	if err := h.validate.Struct(in); err != nil {
		h.blogFailed(w, r, err, "", in)
		return
	}

	if err := h.api.Blogs.Create(h.apiContext(r), &in); err != nil {
		h.blogFailed(w, r, err, "Failed to add blog", in)
		return
	}
	http.Redirect(w, r, blogsPath, http.StatusSeeOther)
}

func (h *handlers) updateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	in := blogForm(r)
	in.ID = id
	if err := h.validate.Struct(in); err != nil {
		h.blogFailed(w, r, err, "", in)
		return
	}

	if err := h.api.Blogs.Update(h.apiContext(r), id, &in); err != nil {
		h.blogFailed(w, r, err, "Failed to update blog", in)
		return
	}
	http.Redirect(w, r, blogsPath, http.StatusSeeOther)
}

func (h *handlers) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.api.Blogs.Delete(h.apiContext(r), id); err != nil {
		h.blogFailed(w, r, err, "Failed to delete blog", model.Blog{})
		return
	}
	http.Redirect(w, r, blogsPath, http.StatusSeeOther)
}
