package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/wolfman30/smilebright-dental/internal/booking"
)

// bookingResponse is the JSON body of every /booking endpoint.
type bookingResponse struct {
	Open           bool     `json:"open"`
	State          string   `json:"state"`
	Message        string   `json:"message"`
	SubmitDisabled bool     `json:"submit_disabled"`
	Invalid        []string `json:"invalid,omitempty"`
	Error          string   `json:"error,omitempty"`
}

type submitRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
}

// OpenBooking handles POST /booking/open. The form field "source" names the
// trigger (cta, fab, menu, service_card, consultation).
func (h *Handler) OpenBooking(w http.ResponseWriter, r *http.Request) {
	v, err := h.visitor(r)
	if err != nil {
		http.Error(w, "missing visitor", http.StatusBadRequest)
		return
	}
	source := booking.ParseSource(r.FormValue("source"))
	if err := v.Session.Open(r.Context(), source); err != nil {
		h.respondError(w, r, http.StatusServiceUnavailable, "booking unavailable")
		return
	}
	h.respond(w, r, http.StatusOK, v, nil, "")
}

// CloseBooking handles POST /booking/close: the close button and backdrop.
func (h *Handler) CloseBooking(w http.ResponseWriter, r *http.Request) {
	v, err := h.visitor(r)
	if err != nil {
		http.Error(w, "missing visitor", http.StatusBadRequest)
		return
	}
	if err := v.Modal.Dismiss(r.Context()); err != nil {
		h.respondError(w, r, http.StatusServiceUnavailable, "booking unavailable")
		return
	}
	h.respond(w, r, http.StatusOK, v, nil, "")
}

// SubmitBooking handles POST /booking/submit with form or JSON fields.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	v, err := h.visitor(r)
	if err != nil {
		http.Error(w, "missing visitor", http.StatusBadRequest)
		return
	}
	fields, err := decodeFields(r)
	if err != nil {
		h.logger.Warn("failed to decode booking request", "visitor_id", v.ID, "error", err)
		h.respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = v.Modal.Submit(r.Context(), fields)
	var verr *booking.ValidationError
	switch {
	case err == nil:
		h.respond(w, r, http.StatusOK, v, nil, "")
	case errors.As(err, &verr):
		if wantsJSON(r) {
			h.respond(w, r, http.StatusBadRequest, v, verr.Fields, "missing or invalid fields")
			return
		}
		h.renderReturn(w, r, http.StatusBadRequest, safeReturn(r.FormValue("return")), verr.Fields)
	case errors.Is(err, booking.ErrSubmitInFlight):
		h.respond(w, r, http.StatusConflict, v, nil, "submission already in progress")
	default:
		h.respond(w, r, http.StatusBadGateway, v, nil, "booking endpoint failed")
	}
}

// BookingState handles GET /booking/state.
func (h *Handler) BookingState(w http.ResponseWriter, r *http.Request) {
	v, err := h.visitor(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, bookingResponse{Error: "missing visitor"})
		return
	}
	writeJSON(w, http.StatusOK, h.snapshot(r, v, nil, ""))
}

func decodeFields(r *http.Request) (booking.Fields, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return booking.Fields{}, err
		}
		return booking.Fields{Name: req.Name, Phone: req.Phone, Service: req.Service}, nil
	}
	if err := r.ParseForm(); err != nil {
		return booking.Fields{}, err
	}
	return booking.Fields{
		Name:    r.PostForm.Get("name"),
		Phone:   r.PostForm.Get("phone"),
		Service: r.PostForm.Get("service"),
	}, nil
}

func (h *Handler) snapshot(r *http.Request, v *booking.Visitor, invalid []string, errMsg string) bookingResponse {
	open, err := v.Session.IsOpen(r.Context())
	if err != nil {
		h.logger.Warn("booking session unavailable", "visitor_id", v.ID, "error", err)
	}
	view := v.Modal.View()
	return bookingResponse{
		Open:           open,
		State:          view.State.String(),
		Message:        view.Message,
		SubmitDisabled: view.SubmitDisabled,
		Invalid:        invalid,
		Error:          errMsg,
	}
}

// respond answers JSON clients with the modal snapshot and redirects form
// posts back to the page they came from.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, v *booking.Visitor, invalid []string, errMsg string) {
	if wantsJSON(r) {
		writeJSON(w, status, h.snapshot(r, v, invalid, errMsg))
		return
	}
	http.Redirect(w, r, safeReturn(r.FormValue("return")), http.StatusSeeOther)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if wantsJSON(r) {
		writeJSON(w, status, bookingResponse{Error: msg})
		return
	}
	http.Error(w, msg, status)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
