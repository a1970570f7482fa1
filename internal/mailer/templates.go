package mailer

import (
	"fmt"
	"strings"
	"time"
)

// subjectLabels maps the contact form's subject categories to the wording
// used in the confirmation email.
var subjectLabels = map[string]string{
	"general":     "General Inquiry",
	"quote":       "Quote Request",
	"sample":      "Sample Request",
	"bulk":        "Bulk Order Inquiry",
	"support":     "Customer Support",
	"partnership": "Partnership Inquiry",
}

// SubjectLabel resolves a submission category to its display label. An
// unrecognized category falls through as-is; an empty one becomes the
// general inquiry label.
func SubjectLabel(category string) string {
	if label, ok := subjectLabels[category]; ok {
		return label
	}
	if strings.TrimSpace(category) != "" {
		return category
	}
	return subjectLabels["general"]
}

func businessSubject(sub ContactSubmission) string {
	return fmt.Sprintf("iGripps Forms: Submission from %s", sub.Email)
}

func confirmationSubject(sub ContactSubmission) string {
	return fmt.Sprintf("iGripps - Thank you for your %s", SubjectLabel(sub.Subject))
}

func businessBody(sub ContactSubmission, ts time.Time) string {
	orNA := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "N/A"
		}
		return s
	}

	return strings.TrimSpace(fmt.Sprintf(`
NEW CONTACT FORM SUBMISSION
===========================

Received: %s
Subject: %s

CONTACT DETAILS:
----------------
Name:  %s
Email: %s
Club:  %s
Phone: %s

MESSAGE:
--------
%s

---
This message was sent from the iGripps contact form.
Reply directly to this email to respond to %s at %s.
`, formatTimestamp(ts), SubjectLabel(sub.Subject), sub.Name, sub.Email, orNA(sub.Club), orNA(sub.Phone), sub.Message, sub.Name, sub.Email))
}

func confirmationBody(sub ContactSubmission, ts time.Time) string {
	label := SubjectLabel(sub.Subject)

	return strings.TrimSpace(fmt.Sprintf(`
Hi %s,

Thanks for contacting iGripps! We've received your %s submission and will get back to you as soon as possible.

SUBMISSION DETAILS:
-------------------
Received: %s
Type: %s

Our team will review your message and respond as soon as possible. If you have any urgent questions, feel free to call us directly.

Best regards,
The iGripps Team

---
iGripps - Premium Football Socks
Website: https://igripps.com.au
Email: admin@igripps.com.au

This is an automated confirmation email. Please do not reply to this message.
`, sub.Name, strings.ToLower(label), formatTimestamp(ts), label))
}

var sydney = loadSydney()

func loadSydney() *time.Location {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		return time.UTC
	}
	return loc
}

func formatTimestamp(ts time.Time) string {
	return ts.In(sydney).Format("Monday, 2 January 2006 at 3:04:05 pm")
}
