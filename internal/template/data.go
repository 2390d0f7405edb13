package template

import (
	"strings"

	"github.com/hmse-unipi/portal/internal/model"
)

// Data is what every page template receives. Page holds the
// page-specific payload.
type Data struct {
	PageTitle string
	Path      string
	User      *model.User
	// Home is the dashboard landing page for User.
	Home string

	Error string
	Flash string

	WhatsApp string

	Page any
}

type MenuItem struct {
	Href  string
	Label string
	Items []MenuItem
}

var publicMenu = []MenuItem{
	{Href: "/", Label: "Home"},
	{Href: "/events", Label: "Events"},
	{Href: "/blog", Label: "Blog"},
	{Href: "/about", Label: "About Us"},
}

var memberMenu = []MenuItem{
	{Href: "/", Label: "Home"},
	{Href: "/dashboard/events", Label: "My Events"},
	{Href: "/dashboard/payments", Label: "My Payments"},
}

var adminMenu = []MenuItem{
	{Href: "/", Label: "Home"},
	{Href: "/dashboard/admin/reports", Label: "Reports"},
	{Href: "/dashboard/events", Label: "My Events"},
	{Href: "/dashboard/admin/payments", Label: "Payments"},
	{Label: "Master Data", Items: []MenuItem{
		{Href: "/dashboard/master/blog-category", Label: "Blog Categories"},
		{Href: "/dashboard/master/blog", Label: "Blog Posts"},
	}},
}

// Menu is the navigation for the current user. Dashboard pages get the
// role menu, everything else the public one.
func (d *Data) Menu() []MenuItem {
	if d.User == nil || !d.InDashboard() {
		return publicMenu
	}
	if d.User.IsAdmin() {
		return adminMenu
	}
	return memberMenu
}

func (d *Data) InDashboard() bool {
	return strings.HasPrefix(d.Path, "/dashboard")
}
