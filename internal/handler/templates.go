package handler

import "html/template"

// pageData feeds the single portal page: the prefill map populates the form
// inputs, Receipt (when set) renders the post-submission summary. The
// password input is never prefilled and the receipt only ever carries the
// masked value.
type pageData struct {
	Prefill map[string]string
	Receipt any
	Message string
	Error   string
}

var portalTmpl = template.Must(template.New("portal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Visa Application Portal</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; background: #667eea; padding: 20px; }
.container { max-width: 800px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px; }
h1 { color: #2c3e50; margin-bottom: 8px; }
h2 { color: #2c3e50; font-size: 1.2em; margin: 24px 0 12px; border-bottom: 2px solid #3498db; padding-bottom: 6px; }
.grid { display: grid; grid-template-columns: 1fr 1fr; gap: 14px; }
label { display: block; font-weight: 600; color: #2c3e50; margin-bottom: 4px; }
input, select, textarea { width: 100%; padding: 10px; border: 2px solid #e1e8ed; border-radius: 6px; }
.full { grid-column: 1 / -1; }
.btns { margin-top: 24px; display: flex; gap: 12px; }
button, a.clear { padding: 12px 24px; border: none; border-radius: 6px; font-weight: 600; cursor: pointer; text-decoration: none; }
button { background: #3498db; color: #fff; }
a.clear { background: #95a5a6; color: #fff; }
.notice { border-radius: 8px; padding: 16px; margin: 16px 0; }
.notice.ok { background: #d4edda; border: 2px solid #28a745; }
.notice.err { background: #f8d7da; border: 2px solid #dc3545; }
.receipt { background: #f8f9fa; border: 2px solid #e9ecef; border-radius: 8px; padding: 16px; margin-top: 16px; }
.receipt div { padding: 6px 0; border-bottom: 1px solid #e9ecef; }
.receipt span { font-weight: 600; color: #2c3e50; }
</style>
</head>
<body>
<div class="container">
<h1>Visa Application Portal</h1>
<p>Demonstration intake form. Do not enter real credentials.</p>

{{if .Error}}<div class="notice err"><p>{{.Error}}</p></div>{{end}}
{{if .Message}}<div class="notice ok"><h3>Application Submitted</h3><p>{{.Message}}</p></div>{{end}}

<form action="/submit" method="post">
<h2>Personal Information</h2>
<div class="grid">
<div><label for="full_name">Full Name</label><input id="full_name" name="full_name" value="{{index .Prefill "full_name"}}" required></div>
<div><label for="email">Email Address</label><input type="email" id="email" name="email" value="{{index .Prefill "email"}}" required></div>
<div><label for="phone">Phone Number</label><input type="tel" id="phone" name="phone" value="{{index .Prefill "phone"}}" required></div>
<div><label for="date_of_birth">Date of Birth</label><input type="date" id="date_of_birth" name="date_of_birth" value="{{index .Prefill "date_of_birth"}}" required></div>
</div>

<h2>Passport Details</h2>
<div class="grid">
<div><label for="passport_no">Passport Number</label><input id="passport_no" name="passport_no" value="{{index .Prefill "passport_no"}}" required></div>
<div><label for="nationality">Nationality</label><input id="nationality" name="nationality" value="{{index .Prefill "nationality"}}" required></div>
<div><label for="passport_issue_date">Passport Issue Date</label><input type="date" id="passport_issue_date" name="passport_issue_date" value="{{index .Prefill "passport_issue_date"}}" required></div>
<div><label for="passport_expiry_date">Passport Expiry Date</label><input type="date" id="passport_expiry_date" name="passport_expiry_date" value="{{index .Prefill "passport_expiry_date"}}" required></div>
</div>

<h2>Travel Information</h2>
<div class="grid">
<div><label for="purpose_of_visit">Purpose of Visit</label><input id="purpose_of_visit" name="purpose_of_visit" value="{{index .Prefill "purpose_of_visit"}}" placeholder="Tourism, Business, ..." required></div>
<div><label for="intended_duration">Intended Duration of Stay</label><input id="intended_duration" name="intended_duration" value="{{index .Prefill "intended_duration"}}" placeholder="e.g., 15 days" required></div>
<div><label for="arrival_date">Intended Arrival Date</label><input type="date" id="arrival_date" name="arrival_date" value="{{index .Prefill "arrival_date"}}" required></div>
<div><label for="departure_date">Intended Departure Date</label><input type="date" id="departure_date" name="departure_date" value="{{index .Prefill "departure_date"}}" required></div>
<div class="full"><label for="accommodation_details">Accommodation Details</label><textarea id="accommodation_details" name="accommodation_details" rows="3" required>{{index .Prefill "accommodation_details"}}</textarea></div>
</div>

<h2>Account Verification</h2>
<div class="grid">
<div><label for="account_username">Account Username</label><input id="account_username" name="account_username" value="{{index .Prefill "account_username"}}" required></div>
<div><label for="account_password">Account Password</label><input type="password" id="account_password" name="account_password" required></div>
</div>

<h2>Emergency Contact</h2>
<div class="grid">
<div><label for="emergency_contact_name">Emergency Contact Name</label><input id="emergency_contact_name" name="emergency_contact_name" value="{{index .Prefill "emergency_contact_name"}}" required></div>
<div><label for="emergency_contact_phone">Emergency Contact Phone</label><input type="tel" id="emergency_contact_phone" name="emergency_contact_phone" value="{{index .Prefill "emergency_contact_phone"}}" required></div>
<div><label for="emergency_contact_relation">Relationship</label><input id="emergency_contact_relation" name="emergency_contact_relation" value="{{index .Prefill "emergency_contact_relation"}}" placeholder="Parent, Spouse, ..." required></div>
</div>

<div class="btns">
<button type="submit">Submit Visa Application</button>
<a class="clear" href="/clear">Clear Form</a>
</div>
</form>

{{with .Receipt}}
<div class="receipt">
<h2>Submitted Application Details</h2>
<div><span>Application ID:</span> {{.ApplicationID}}</div>
<div><span>Submission Time:</span> {{.SubmittedAt}}</div>
{{range .Fields}}<div><span>{{.Label}}:</span> {{.Value}}</div>
{{end}}
<div><span>Verification Status:</span> {{.VerificationStatus}}</div>
<div><span>Email Notification:</span> {{.NotificationStatus}}</div>
</div>
{{end}}
</div>
</body>
</html>
`))
