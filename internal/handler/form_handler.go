package handler

import (
	"errors"
	"log"
	"net/http"

	"visaportal/internal/models"
	"visaportal/internal/service"
	"visaportal/internal/session"
)

// FormHandler serves the server-rendered portal: the application form with
// session prefill, the submit endpoint, and the explicit clear endpoint.
type FormHandler struct {
	subSvc  *service.SubmissionService
	cookies *session.CookieStore
}

func NewFormHandler(subSvc *service.SubmissionService, cookies *session.CookieStore) *FormHandler {
	return &FormHandler{subSvc: subSvc, cookies: cookies}
}

// Index renders the form, pre-filled from whatever the session still holds.
func (h *FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	values := h.cookies.Load(r)
	h.render(w, pageData{Prefill: values.All()})
}

// Submit runs the submission pipeline and renders the receipt.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, pageData{Prefill: map[string]string{}, Error: "Could not read the submitted form."})
		return
	}
	app := applicationFromForm(r)

	values := h.cookies.Load(r)
	sess := session.New(values)

	receipt, err := h.subSvc.Submit(app, sess)
	if err != nil {
		if errors.Is(err, service.ErrMailConfigIncomplete) {
			h.render(w, pageData{
				Prefill: values.All(),
				Error:   "Email configuration is incomplete. Please check server settings.",
			})
			return
		}
		log.Printf("handler: submit: %v", err)
		h.render(w, pageData{Prefill: values.All(), Error: "Submission could not be processed."})
		return
	}

	// Persist the post-pipeline session state (cleared after a completed run).
	h.cookies.Save(w, values)

	h.render(w, pageData{
		Prefill: map[string]string{},
		Receipt: receipt,
		Message: receipt.Message,
	})
}

// Clear empties the session and sends the client back to a blank form.
func (h *FormHandler) Clear(w http.ResponseWriter, r *http.Request) {
	values := h.cookies.Load(r)
	sess := session.New(values)
	sess.Clear()
	h.cookies.Save(w, values)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *FormHandler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if data.Prefill == nil {
		data.Prefill = map[string]string{}
	}
	if err := portalTmpl.Execute(w, data); err != nil {
		log.Printf("handler: render: %v", err)
	}
}

func applicationFromForm(r *http.Request) *models.Application {
	return &models.Application{
		FullName:             r.PostFormValue("full_name"),
		Email:                r.PostFormValue("email"),
		Phone:                r.PostFormValue("phone"),
		DateOfBirth:          r.PostFormValue("date_of_birth"),
		PassportNo:           r.PostFormValue("passport_no"),
		Nationality:          r.PostFormValue("nationality"),
		PassportIssueDate:    r.PostFormValue("passport_issue_date"),
		PassportExpiryDate:   r.PostFormValue("passport_expiry_date"),
		PurposeOfVisit:       r.PostFormValue("purpose_of_visit"),
		IntendedDuration:     r.PostFormValue("intended_duration"),
		ArrivalDate:          r.PostFormValue("arrival_date"),
		DepartureDate:        r.PostFormValue("departure_date"),
		AccommodationDetails: r.PostFormValue("accommodation_details"),
		Username:             r.PostFormValue("account_username"),
		Password:             r.PostFormValue("account_password"),
		EmergencyName:        r.PostFormValue("emergency_contact_name"),
		EmergencyPhone:       r.PostFormValue("emergency_contact_phone"),
		EmergencyRelation:    r.PostFormValue("emergency_contact_relation"),
	}
}
