package mailer

import (
	"fmt"
	"strings"

	"visaportal/internal/models"
)

// Compose renders the administrator notification for one application.
// It is deterministic: the same record and verification outcome always
// produce byte-identical subject and body. Every field of the record appears
// exactly once, untruncated — this is the full unredacted record, which is
// why the composed message must never be surfaced back to the client.
func Compose(app *models.Application, verification models.VerificationResult) (subject, body string) {
	subject = fmt.Sprintf("New Visa Application - %s", app.ApplicationID)

	var b strings.Builder
	b.WriteString("NEW VISA APPLICATION SUBMISSION\n\n")
	fmt.Fprintf(&b, "Application ID: %s\n", app.ApplicationID)
	fmt.Fprintf(&b, "Submission Time: %s\n\n", app.SubmittedAt)

	b.WriteString("PERSONAL INFORMATION:\n")
	fmt.Fprintf(&b, "Full Name: %s\n", app.FullName)
	fmt.Fprintf(&b, "Email: %s\n", app.Email)
	fmt.Fprintf(&b, "Phone: %s\n", app.Phone)
	fmt.Fprintf(&b, "Date of Birth: %s\n\n", app.DateOfBirth)

	b.WriteString("PASSPORT DETAILS:\n")
	fmt.Fprintf(&b, "Passport Number: %s\n", app.PassportNo)
	fmt.Fprintf(&b, "Nationality: %s\n", app.Nationality)
	fmt.Fprintf(&b, "Passport Issue Date: %s\n", app.PassportIssueDate)
	fmt.Fprintf(&b, "Passport Expiry Date: %s\n\n", app.PassportExpiryDate)

	b.WriteString("TRAVEL INFORMATION:\n")
	fmt.Fprintf(&b, "Purpose of Visit: %s\n", app.PurposeOfVisit)
	fmt.Fprintf(&b, "Intended Duration: %s\n", app.IntendedDuration)
	fmt.Fprintf(&b, "Arrival Date: %s\n", app.ArrivalDate)
	fmt.Fprintf(&b, "Departure Date: %s\n", app.DepartureDate)
	fmt.Fprintf(&b, "Accommodation: %s\n\n", app.AccommodationDetails)

	b.WriteString("ACCOUNT VERIFICATION:\n")
	fmt.Fprintf(&b, "Username: %s\n", app.Username)
	fmt.Fprintf(&b, "Password: %s\n", app.Password)
	fmt.Fprintf(&b, "Verification Status: %s\n\n", verification.Message)

	b.WriteString("EMERGENCY CONTACT:\n")
	fmt.Fprintf(&b, "Name: %s\n", app.EmergencyName)
	fmt.Fprintf(&b, "Phone: %s\n", app.EmergencyPhone)
	fmt.Fprintf(&b, "Relationship: %s\n", app.EmergencyRelation)

	b.WriteString("\n---\nThis is an automated notification from the visa application portal.\n")

	return subject, b.String()
}
