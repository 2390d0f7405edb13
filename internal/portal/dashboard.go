package portal

import (
	"net/http"
	"strings"

	"github.com/hmse-unipi/portal/internal/model"
)

type myEventsPage struct {
	Events []model.Event
}

type paymentsPage struct {
	Payments []model.Payment
}

type reportsPage struct {
	Sales  *model.SalesReport
	Events []model.EventReport
}

func (h *handlers) dashboardHome(w http.ResponseWriter, r *http.Request) {
	s, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	http.Redirect(w, r, h.routes.HomeFor(s.User), http.StatusSeeOther)
}

func (h *handlers) myEvents(w http.ResponseWriter, r *http.Request) {
	d := h.data(r, "My Events", myEventsPage{})

	events, err := h.api.Users.MyEvents(h.apiContext(r))
	if err != nil {
		h.fail(w, r, err, "dashboard_events.html", d, "Failed to load events")
		return
	}

	d.Page = myEventsPage{Events: events}
	h.render(w, r, http.StatusOK, "dashboard_events.html", d)
}

func (h *handlers) myPayments(w http.ResponseWriter, r *http.Request) {
	d := h.data(r, "My Payments", paymentsPage{})

	payments, err := h.api.Payments.Mine(h.apiContext(r))
	if err != nil {
		h.fail(w, r, err, "dashboard_payments.html", d, "Failed to load payments")
		return
	}

	d.Page = paymentsPage{Payments: payments}
	h.render(w, r, http.StatusOK, "dashboard_payments.html", d)
}

func (h *handlers) reports(w http.ResponseWriter, r *http.Request) {
	ctx := h.apiContext(r)
	d := h.data(r, "Reports", reportsPage{})

	sales, err := h.api.Admin.SalesReport(ctx, r.URL.Query())
	if err != nil {
		h.fail(w, r, err, "admin_reports.html", d, "Failed to load reports")
		return
	}

	events, err := h.api.Admin.EventReport(ctx)
	if err != nil {
		h.fail(w, r, err, "admin_reports.html", d, "Failed to load reports")
		return
	}

	d.Page = reportsPage{Sales: sales, Events: events}
	h.render(w, r, http.StatusOK, "admin_reports.html", d)
}

func (h *handlers) pendingPayments(w http.ResponseWriter, r *http.Request) {
	d := h.data(r, "Payments", paymentsPage{})

	payments, err := h.api.Payments.Pending(h.apiContext(r))
	if err != nil {
		h.fail(w, r, err, "admin_payments.html", d, "Failed to load payments")
		return
	}

	d.Page = paymentsPage{Payments: payments}
	h.render(w, r, http.StatusOK, "admin_payments.html", d)
}

// confirmPayment records the admin verdict and goes back to the list of
// pending payments.
func (h *handlers) confirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "registrationID")
	if !ok {
		http.NotFound(w, r)
		return
	}

	in := model.Confirmation{
		Status: r.PostFormValue("status"),
		Notes:  strings.TrimSpace(r.PostFormValue("notes")),
	}

	ctx := h.apiContext(r)
	if err := h.validate.Struct(in); err != nil {
		d := h.data(r, "Payments", paymentsPage{})
		if payments, err := h.api.Payments.Pending(ctx); err == nil {
			d.Page = paymentsPage{Payments: payments}
		}
		h.invalid(w, r, err, "admin_payments.html", d)
		return
	}

	if err := h.api.Payments.Confirm(ctx, id, in); err != nil {
		d := h.data(r, "Payments", paymentsPage{})
		h.fail(w, r, err, "admin_payments.html", d, "Failed to process payment confirmation")
		return
	}

	http.Redirect(w, r, "/dashboard/admin/payments", http.StatusSeeOther)
}
