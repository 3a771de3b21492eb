package service

import (
	"errors"
	"log"

	"visaportal/internal/config"
	"visaportal/internal/mailer"
	"visaportal/internal/models"
	"visaportal/internal/repository"
	"visaportal/internal/session"
)

// ErrMailConfigIncomplete signals that dispatch-required settings are
// missing. It is the only error Submit returns: everything else is
// downgraded to a classified outcome inside the receipt.
var ErrMailConfigIncomplete = errors.New("submission: mail configuration incomplete")

// Dispatcher delivers one composed notification.
type Dispatcher interface {
	Dispatch(subject, body string) models.DispatchResult
}

// SubmissionService runs the submission pipeline: stamp the record, verify
// the credential fields, compose and dispatch the administrator
// notification, update the session, and produce the receipt. The stages are
// strictly sequential; a rejected verification or a failed dispatch is
// recorded and the run still finalizes.
type SubmissionService struct {
	cfg        *config.Config
	ids        *IDGenerator
	verifier   *Verifier
	dispatcher Dispatcher
	receipts   *repository.ReceiptRepo
}

func NewSubmissionService(cfg *config.Config, ids *IDGenerator, verifier *Verifier, dispatcher Dispatcher, receipts *repository.ReceiptRepo) *SubmissionService {
	return &SubmissionService{
		cfg:        cfg,
		ids:        ids,
		verifier:   verifier,
		dispatcher: dispatcher,
		receipts:   receipts,
	}
}

// Submit processes one application start to finish. The configuration gate
// runs before anything else: an incomplete mail config refuses the whole
// submission rather than stamping a record it can never notify about.
func (s *SubmissionService) Submit(app *models.Application, sess *session.Session) (*models.Receipt, error) {
	if !s.cfg.Complete() {
		return nil, ErrMailConfigIncomplete
	}

	// The identifier is assigned exactly once, before any other derived value.
	app.ApplicationID = s.ids.Generate()
	app.SubmittedAt = s.ids.Timestamp()
	log.Printf("submission: processing %s (%s)", app.ApplicationID, app.Email)

	verification := s.verifier.Verify(app.Username, app.Password)

	// The notification is composed from the full unredacted record.
	subject, body := mailer.Compose(app, verification)
	dispatch := s.dispatcher.Dispatch(subject, body)

	// Capture the redacted record, then clear: submissions are one-shot, so
	// a completed run leaves nothing behind for the next request to prefill.
	sess.Capture(app)
	sess.Clear()

	receipt := buildReceipt(app, verification, dispatch)
	s.receipts.Add(receipt)
	log.Printf("submission: %s finalized (verified=%t sent=%t)", app.ApplicationID, verification.OK, dispatch.Sent)
	return receipt, nil
}

func buildReceipt(app *models.Application, verification models.VerificationResult, dispatch models.DispatchResult) *models.Receipt {
	fields := []models.ReceiptField{
		{Label: "Full Name", Value: app.FullName},
		{Label: "Email", Value: app.Email},
		{Label: "Phone", Value: app.Phone},
		{Label: "Date of Birth", Value: app.DateOfBirth},
		{Label: "Passport Number", Value: app.PassportNo},
		{Label: "Nationality", Value: app.Nationality},
		{Label: "Passport Issue Date", Value: app.PassportIssueDate},
		{Label: "Passport Expiry Date", Value: app.PassportExpiryDate},
		{Label: "Purpose of Visit", Value: app.PurposeOfVisit},
		{Label: "Intended Duration", Value: app.IntendedDuration},
		{Label: "Arrival Date", Value: app.ArrivalDate},
		{Label: "Departure Date", Value: app.DepartureDate},
		{Label: "Accommodation", Value: app.AccommodationDetails},
		{Label: "Account Username", Value: app.Username},
		{Label: "Account Password", Value: models.SecretMask},
		{Label: "Emergency Contact Name", Value: app.EmergencyName},
		{Label: "Emergency Contact Phone", Value: app.EmergencyPhone},
		{Label: "Emergency Contact Relation", Value: app.EmergencyRelation},
	}
	return &models.Receipt{
		ApplicationID:      app.ApplicationID,
		SubmittedAt:        app.SubmittedAt,
		Fields:             fields,
		VerificationStatus: verification.Message,
		VerificationOK:     verification.OK,
		NotificationStatus: dispatch.StatusText(),
		NotificationSent:   dispatch.Sent,
		Message:            "Visa application submitted successfully! Application ID: " + app.ApplicationID,
	}
}
