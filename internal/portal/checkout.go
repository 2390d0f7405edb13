package portal

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/model"
)

const maxProofSize = 2 << 20

type checkoutPage struct {
	Event *model.Event
}

// checkoutPage shows the event with the registration form. Anonymous
// visitors are sent to login and brought back afterwards.
func (h *handlers) checkoutPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	id, ok := idParam(r, "eventID")
	if !ok {
		http.NotFound(w, r)
		return
	}

	d := h.data(r, "Checkout", checkoutPage{})
	event, err := h.api.Events.Get(h.apiContext(r), id)
	if err != nil {
		h.fail(w, r, err, "checkout.html", d, "Failed to load event details")
		return
	}

	d.Page = checkoutPage{Event: event}
	h.render(w, r, http.StatusOK, "checkout.html", d)
}

// checkout registers for the event and, when it is paid, uploads the
// payment proof for the new registration.
func (h *handlers) checkout(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	id, ok := idParam(r, "eventID")
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := h.apiContext(r)
	d := h.data(r, "Checkout", checkoutPage{})

	event, err := h.api.Events.Get(ctx, id)
	if err != nil {
		h.fail(w, r, err, "checkout.html", d, "Failed to load event details")
		return
	}
	d.Page = checkoutPage{Event: event}

	r.Body = http.MaxBytesReader(w, r.Body, maxProofSize+1<<20)
	if err := r.ParseMultipartForm(maxProofSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		d.Error = "File size should not exceed 2MB"
		h.render(w, r, http.StatusRequestEntityTooLarge, "checkout.html", d)
		return
	}

	paid := !event.Price.IsFree()
	if paid {
		f, hdr, err := r.FormFile("proof")
		if err != nil {
			d.Error = "Please upload your payment proof"
			h.render(w, r, http.StatusUnprocessableEntity, "checkout.html", d)
			return
		}
		defer f.Close()

		if hdr.Size > maxProofSize {
			d.Error = "File size should not exceed 2MB"
			h.render(w, r, http.StatusRequestEntityTooLarge, "checkout.html", d)
			return
		}

		reg, err := h.api.Events.Register(ctx, id)
		if err != nil {
			h.fail(w, r, err, "checkout.html", d, "Failed to process registration")
			return
		}
		if reg.ID == 0 {
			d.Error = "Registration ID not received from server"
			h.render(w, r, http.StatusBadGateway, "checkout.html", d)
			return
		}

		if err := h.api.Payments.SubmitProof(ctx, reg.ID, hdr.Filename, f); err != nil {
			h.log.Error("registration left without payment proof",
				zap.Int("registration_id", reg.ID),
				zap.Int("event_id", id),
				zap.Error(err))
			h.fail(w, r, err, "checkout.html", d, "Failed to upload payment proof")
			return
		}
	} else {
		if _, err := h.api.Events.Register(ctx, id); err != nil {
			h.fail(w, r, err, "checkout.html", d, "Failed to process registration")
			return
		}
	}

	http.Redirect(w, r, h.routes.Home, http.StatusSeeOther)
}
