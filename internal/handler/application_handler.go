package handler

import (
	"errors"
	"net/http"

	"visaportal/internal/models"
	"visaportal/internal/service"
	"visaportal/internal/session"
)

// ApplicationHandler is the JSON counterpart of the HTML form: submit,
// prefill read, and session reset for API clients.
type ApplicationHandler struct {
	subSvc  *service.SubmissionService
	cookies *session.CookieStore
}

func NewApplicationHandler(subSvc *service.SubmissionService, cookies *session.CookieStore) *ApplicationHandler {
	return &ApplicationHandler{subSvc: subSvc, cookies: cookies}
}

type applicationRequest struct {
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	DateOfBirth          string `json:"date_of_birth"`
	PassportNo           string `json:"passport_no"`
	Nationality          string `json:"nationality"`
	PassportIssueDate    string `json:"passport_issue_date"`
	PassportExpiryDate   string `json:"passport_expiry_date"`
	PurposeOfVisit       string `json:"purpose_of_visit"`
	IntendedDuration     string `json:"intended_duration"`
	ArrivalDate          string `json:"arrival_date"`
	DepartureDate        string `json:"departure_date"`
	AccommodationDetails string `json:"accommodation_details"`
	Username             string `json:"account_username"`
	Password             string `json:"account_password"`
	EmergencyName        string `json:"emergency_contact_name"`
	EmergencyPhone       string `json:"emergency_contact_phone"`
	EmergencyRelation    string `json:"emergency_contact_relation"`
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app := &models.Application{
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		DateOfBirth:          req.DateOfBirth,
		PassportNo:           req.PassportNo,
		Nationality:          req.Nationality,
		PassportIssueDate:    req.PassportIssueDate,
		PassportExpiryDate:   req.PassportExpiryDate,
		PurposeOfVisit:       req.PurposeOfVisit,
		IntendedDuration:     req.IntendedDuration,
		ArrivalDate:          req.ArrivalDate,
		DepartureDate:        req.DepartureDate,
		AccommodationDetails: req.AccommodationDetails,
		Username:             req.Username,
		Password:             req.Password,
		EmergencyName:        req.EmergencyName,
		EmergencyPhone:       req.EmergencyPhone,
		EmergencyRelation:    req.EmergencyRelation,
	}

	values := h.cookies.Load(r)
	sess := session.New(values)

	receipt, err := h.subSvc.Submit(app, sess)
	if err != nil {
		if errors.Is(err, service.ErrMailConfigIncomplete) {
			writeError(w, http.StatusServiceUnavailable, "mail configuration incomplete")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cookies.Save(w, values)
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *ApplicationHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	values := h.cookies.Load(r)
	writeJSON(w, http.StatusOK, map[string]any{"prefill": values.All()})
}

func (h *ApplicationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	values := h.cookies.Load(r)
	sess := session.New(values)
	sess.Clear()
	h.cookies.Save(w, values)
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
