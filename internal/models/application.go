package models

// Application is one visa application as submitted by a client. All fields
// arrive as free-form strings; ApplicationID and SubmittedAt are stamped by
// the submission service before anything else touches the record.
//
// Password is the only confidential field: it lives in the in-flight record
// so the notification can be composed, but it is never written to the
// session, the receipt log, or any rendered value.
type Application struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`

	PassportNo         string `json:"passport_no"`
	Nationality        string `json:"nationality"`
	PassportIssueDate  string `json:"passport_issue_date"`
	PassportExpiryDate string `json:"passport_expiry_date"`

	PurposeOfVisit       string `json:"purpose_of_visit"`
	IntendedDuration     string `json:"intended_duration"`
	ArrivalDate          string `json:"arrival_date"`
	DepartureDate        string `json:"departure_date"`
	AccommodationDetails string `json:"accommodation_details"`

	Username string `json:"account_username"`
	Password string `json:"-"`

	EmergencyName     string `json:"emergency_contact_name"`
	EmergencyPhone    string `json:"emergency_contact_phone"`
	EmergencyRelation string `json:"emergency_contact_relation"`

	ApplicationID string `json:"application_id,omitempty"`
	SubmittedAt   string `json:"submitted_at,omitempty"`
}

// SessionFields returns the record as a field-name-keyed map suitable for
// session capture and form prefill. The password is deliberately absent:
// adding it here would violate the session confidentiality invariant.
func (a *Application) SessionFields() map[string]string {
	return map[string]string{
		"full_name":                  a.FullName,
		"email":                      a.Email,
		"phone":                      a.Phone,
		"date_of_birth":              a.DateOfBirth,
		"passport_no":                a.PassportNo,
		"nationality":                a.Nationality,
		"passport_issue_date":        a.PassportIssueDate,
		"passport_expiry_date":       a.PassportExpiryDate,
		"purpose_of_visit":           a.PurposeOfVisit,
		"intended_duration":          a.IntendedDuration,
		"arrival_date":               a.ArrivalDate,
		"departure_date":             a.DepartureDate,
		"accommodation_details":      a.AccommodationDetails,
		"account_username":           a.Username,
		"emergency_contact_name":     a.EmergencyName,
		"emergency_contact_phone":    a.EmergencyPhone,
		"emergency_contact_relation": a.EmergencyRelation,
		"application_id":             a.ApplicationID,
		"submitted_at":               a.SubmittedAt,
	}
}
