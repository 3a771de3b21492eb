package models

// SecretMask replaces the account password everywhere it is echoed back.
const SecretMask = "••••••••"

// VerificationResult classifies a credential check. Message is advisory text
// only; callers branch on OK, never on the wording.
type VerificationResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// FailureKind classifies a failed notification dispatch.
type FailureKind string

const (
	FailNone      FailureKind = ""
	FailAuth      FailureKind = "AuthFailure"
	FailTransport FailureKind = "TransportFailure"
	FailUnknown   FailureKind = "UnknownFailure"
)

// DispatchResult is the outcome of a single notification attempt.
type DispatchResult struct {
	Sent bool        `json:"sent"`
	Kind FailureKind `json:"kind,omitempty"`
	Err  error       `json:"-"`
}

// StatusText renders the dispatch outcome for the receipt. Every failure
// kind appears verbatim so nothing below the pipeline is silently dropped;
// a failure constructed without a kind reads as unknown.
func (d DispatchResult) StatusText() string {
	if d.Sent {
		return "Sent successfully"
	}
	kind := d.Kind
	if kind == FailNone {
		kind = FailUnknown
	}
	return "Failed to send (" + string(kind) + ")"
}

// ReceiptField is one labeled value of the redacted submission echo. A slice
// keeps the display order stable.
type ReceiptField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Receipt is what the submitter (and the operator log) sees after a pipeline
// run: the stamped identifier, a redacted echo of every submitted field, and
// the combined verification/notification outcome.
type Receipt struct {
	ApplicationID      string         `json:"application_id"`
	SubmittedAt        string         `json:"submitted_at"`
	Fields             []ReceiptField `json:"fields"`
	VerificationStatus string         `json:"verification_status"`
	VerificationOK     bool           `json:"verification_ok"`
	NotificationStatus string         `json:"notification_status"`
	NotificationSent   bool           `json:"notification_sent"`
	Message            string         `json:"message"`
}
