// Package emails renders the transactional messages the site sends.
package emails

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"
)

// TemplateID names a message. The set is closed: Registry holds a builder for every member.
type TemplateID string

const (
	CartAbandoned1h                TemplateID = "cart_abandoned_1h"
	CartAbandoned24h               TemplateID = "cart_abandoned_24h"
	BookingConfirmed               TemplateID = "booking_confirmed"
	InternalNewJobPaid             TemplateID = "internal_new_job_paid"
	SubscriptionWelcome            TemplateID = "subscription_welcome"
	SubscriptionCancelled          TemplateID = "subscription_cancelled"
	PaymentFailed                  TemplateID = "payment_failed"
	JobCompleted                   TemplateID = "job_completed"
	ReviewRequest                  TemplateID = "review_request"
	LeadNotification               TemplateID = "lead_notification"
	PartnerApplicationNotification TemplateID = "partner_application_notification"
	VerificationCode               TemplateID = "verification_code"
)

// AllTemplates lists every TemplateID.
var AllTemplates = []TemplateID{
	CartAbandoned1h,
	CartAbandoned24h,
	BookingConfirmed,
	InternalNewJobPaid,
	SubscriptionWelcome,
	SubscriptionCancelled,
	PaymentFailed,
	JobCompleted,
	ReviewRequest,
	LeadNotification,
	PartnerApplicationNotification,
	VerificationCode,
}

var ErrUnknownTemplate = errors.New("unknown email template")

const (
	siteURL          = "https://www.wearemaster.com"
	defaultReviewURL = siteURL + "/review"
	logoURL          = "https://www.wearemaster.com/master-logo.png"
)

// Content is a rendered message.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

// Data carries the caller-supplied template fields.
type Data map[string]any

// String returns the field as text, or def when it is missing or blank.
func (d Data) String(key, def string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	case []string:
		s = strings.Join(t, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, fmt.Sprint(p))
		}
		s = strings.Join(parts, ", ")
	default:
		s = fmt.Sprint(t)
	}
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func (d Data) firstName() string {
	name := d.String("name", "there")
	return strings.Fields(name)[0]
}

// Builder turns data into a message.
type Builder func(Data) Content

// Registry maps every template to its builder.
var Registry = map[TemplateID]Builder{
	CartAbandoned1h:                cartAbandoned1h,
	CartAbandoned24h:               cartAbandoned24h,
	BookingConfirmed:               bookingConfirmed,
	InternalNewJobPaid:             internalNewJobPaid,
	SubscriptionWelcome:            subscriptionWelcome,
	SubscriptionCancelled:          subscriptionCancelled,
	PaymentFailed:                  paymentFailed,
	JobCompleted:                   jobCompleted,
	ReviewRequest:                  reviewRequest,
	LeadNotification:               leadNotification,
	PartnerApplicationNotification: partnerApplicationNotification,
	VerificationCode:               verificationCode,
}

// Parse maps a wire value to a TemplateID.
func Parse(s string) (TemplateID, bool) {
	id := TemplateID(strings.TrimSpace(s))
	_, ok := Registry[id]
	return id, ok
}

// Render builds the message for id.
func Render(id TemplateID, data Data) (Content, error) {
	b, ok := Registry[id]
	if !ok {
		return Content{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
	}
	if data == nil {
		data = Data{}
	}
	return b(data), nil
}

type button struct {
	URL   string
	Label string
}

type row struct {
	Label string
	Value string
}

type page struct {
	Greeting   string
	Paragraphs []string
	Highlight  string
	Button     *button
	Rows       []row
	Signoff    string
}

var layout = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Helvetica Neue', Arial, sans-serif; background: #f5f5f7; margin: 0; padding: 24px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden;">
    <div style="background: #020034; padding: 24px; text-align: center;">
      <img src="{{.Logo}}" alt="Master" style="display: block; max-height: 44px; width: auto; margin: 0 auto;" />
    </div>
    <div style="padding: 32px; color: #1d1d1f; line-height: 1.6;">
      {{- if .Page.Greeting}}
      <p>{{.Page.Greeting}}</p>
      {{- end}}
      {{- range .Page.Paragraphs}}
      <p>{{.}}</p>
      {{- end}}
      {{- if .Page.Highlight}}
      <p style="font-size: 32px; font-weight: 700; letter-spacing: 8px; color: #E94A02; text-align: center;">{{.Page.Highlight}}</p>
      {{- end}}
      {{- if .Page.Rows}}
      <table style="width: 100%; border-collapse: collapse;">
        {{- range .Page.Rows}}
        <tr><td style="padding: 6px 8px; font-weight: 600; vertical-align: top;">{{.Label}}</td><td style="padding: 6px 8px;">{{.Value}}</td></tr>
        {{- end}}
      </table>
      {{- end}}
      {{- if .Page.Button}}
      <p style="text-align: center;"><a href="{{.Page.Button.URL}}" style="display: inline-block; background: #E94A02; color: #ffffff; padding: 12px 24px; border-radius: 8px; text-decoration: none;">{{.Page.Button.Label}}</a></p>
      {{- end}}
      {{- if .Page.Signoff}}
      <p>{{.Page.Signoff}}<br>Master Team</p>
      {{- end}}
    </div>
    <div style="padding: 16px; text-align: center; color: #6b7280; font-size: 12px;">
      <p>Master Services | hello@wearemaster.com</p>
    </div>
  </div>
</body>
</html>
`))

func render(subject string, p page) Content {
	var buf bytes.Buffer
	if err := layout.Execute(&buf, struct {
		Logo string
		Page page
	}{Logo: logoURL, Page: p}); err != nil {
		// The layout only reads fields of page, so this cannot fail for well-formed input.
		buf.Reset()
		buf.WriteString(template.HTMLEscapeString(strings.Join(p.Paragraphs, "\n")))
	}
	return Content{Subject: subject, HTML: buf.String(), Text: plainText(p)}
}

func plainText(p page) string {
	var parts []string
	if p.Greeting != "" {
		parts = append(parts, p.Greeting)
	}
	parts = append(parts, p.Paragraphs...)
	if p.Highlight != "" {
		parts = append(parts, p.Highlight)
	}
	if len(p.Rows) > 0 {
		lines := make([]string, 0, len(p.Rows))
		for _, r := range p.Rows {
			lines = append(lines, r.Label+": "+r.Value)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	if p.Button != nil {
		parts = append(parts, p.Button.Label+": "+p.Button.URL)
	}
	if p.Signoff != "" {
		parts = append(parts, p.Signoff+",\nMaster Team")
	}
	return strings.Join(parts, "\n\n")
}

func greeting(d Data) string {
	return "Hi " + d.firstName() + ","
}

func cartAbandoned1h(d Data) Content {
	return render("You're almost done — finish your booking in seconds", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"You were just one step away from completing your booking.",
			"Your details are saved, you can finish in under a minute and secure your preferred date.",
			"If you need help, just reply to this email.",
		},
		Button:  &button{URL: d.String("resumeUrl", siteURL), Label: "Complete your booking here"},
		Signoff: "With Love",
	})
}

func cartAbandoned24h(d Data) Content {
	paragraphs := []string{
		"We noticed you didn't finish booking your job yesterday.",
		"If you still need a hand, our vetted professionals are ready and your details are saved.",
	}
	if svc := d.String("serviceName", ""); svc != "" {
		paragraphs = append(paragraphs, "Service: "+svc)
	}
	paragraphs = append(paragraphs, "Questions? Just reply to this email and we'll help.")
	return render("Still need help with this job?", page{
		Greeting:   greeting(d),
		Paragraphs: paragraphs,
		Button:     &button{URL: d.String("resumeUrl", siteURL), Label: "Finish your booking"},
		Signoff:    "With Love",
	})
}

func bookingConfirmed(d Data) Content {
	return render("Your booking is confirmed", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"Your booking has been confirmed and payment successfully received.",
			"Booking Reference: " + d.String("bookingRef", "N/A"),
			"Everything is now in place. Your job is scheduled and being managed by our operations team to ensure a smooth delivery.",
			"You'll receive updates as the job progresses.",
			"If you need anything in the meantime, just reply to this email.",
		},
		Signoff: "Kind regards",
	})
}

func internalNewJobPaid(d Data) Content {
	ref := d.String("bookingRef", "—")
	customer := d.String("customerName", "—")
	amount := "—"
	if v := d.String("amount", ""); v != "" {
		if pence, err := strconv.ParseFloat(v, 64); err == nil {
			amount = fmt.Sprintf("%.2f %s", pence/100, strings.ToUpper(d.String("currency", "GBP")))
		}
	}
	subscription := "No"
	if d.String("addSubscription", "") == "true" {
		subscription = "Yes (Master Club)"
	}
	return render(fmt.Sprintf("[New job paid] %s – %s", ref, customer), page{
		Paragraphs: []string{"A new job has been paid."},
		Rows: []row{
			{"Booking ref", ref},
			{"Payment intent", d.String("paymentIntentId", "—")},
			{"Amount", amount},
			{"Customer", customer},
			{"Email", d.String("customerEmail", "—")},
			{"Phone", d.String("customerPhone", "—")},
			{"Address", strings.TrimSpace(d.String("addressLine1", "") + " " + d.String("addressLine2", ""))},
			{"City", d.String("city", "—")},
			{"Postcode", d.String("postcode", "—")},
			{"Service", d.String("serviceName", "—")},
			{"Category", d.String("serviceCategory", "—")},
			{"Job description", d.String("jobDescription", "—")},
			{"Preferred dates", d.String("preferredDates", "—")},
			{"Time slots", d.String("preferredTimeSlots", "—")},
			{"Hours booked", d.String("hoursBooked", "—")},
			{"Master Club", subscription},
			{"Paid at", d.String("paidAt", "—")},
		},
	})
}

func subscriptionWelcome(d Data) Content {
	return render("Welcome to Master Club, you're all set.", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"Welcome to Master Club. Your membership is now active.",
			"You get priority booking, member pricing and a dedicated team looking after your home.",
			"Manage your membership at any time from your account.",
		},
		Button:  &button{URL: siteURL, Label: "Book your next job"},
		Signoff: "Kind regards",
	})
}

func subscriptionCancelled(d Data) Content {
	paragraphs := []string{"Your Master Club subscription has been cancelled."}
	if end := d.String("periodEnd", ""); end != "" {
		paragraphs = append(paragraphs, "Your benefits remain available until "+end+".")
	}
	paragraphs = append(paragraphs, "We'd love to have you back whenever you need us.")
	return render("Your subscription has been cancelled", page{
		Greeting:   greeting(d),
		Paragraphs: paragraphs,
		Signoff:    "Kind regards",
	})
}

func paymentFailed(d Data) Content {
	return render("Action needed — payment issue", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"We weren't able to process your payment.",
			"Please check your card details or try a different payment method to keep your booking.",
		},
		Button:  &button{URL: d.String("retryUrl", siteURL), Label: "Update payment"},
		Signoff: "Kind regards",
	})
}

func jobCompleted(d Data) Content {
	return render("Job completed — thank you for choosing Master", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"Your job has been completed.",
			"Booking Reference: " + d.String("bookingRef", "N/A"),
			"Thank you for choosing Master. If anything isn't right, reply to this email and we'll sort it.",
		},
		Signoff: "Kind regards",
	})
}

func reviewRequest(d Data) Content {
	return render("How did we do?", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"We hope you're happy with the work.",
			"Your feedback helps us keep standards high. It takes less than a minute.",
		},
		Button:  &button{URL: d.String("reviewUrl", defaultReviewURL), Label: "Leave a review"},
		Signoff: "Thank you",
	})
}

func leadNotification(d Data) Content {
	source := d.String("source", "—")
	email := d.String("email", "—")
	return render(fmt.Sprintf("[New lead] %s – %s", source, email), page{
		Paragraphs: []string{"A new lead has been captured."},
		Rows: []row{
			{"Email", email},
			{"Name", d.String("name", "—")},
			{"Phone", d.String("phone", "—")},
			{"Service", d.String("service", "—")},
			{"Service type", d.String("service_type", "—")},
			{"Postcode", d.String("postcode", "—")},
			{"Preferred contact", d.String("preferred_contact", "—")},
			{"Source", source},
		},
	})
}

func partnerApplicationNotification(d Data) Content {
	name := d.String("fullName", "—")
	email := d.String("email", "—")
	rows := []row{
		{"Application", d.String("id", "—")},
		{"Name", name},
		{"Email", email},
		{"Phone", d.String("phone", "—")},
		{"Business structure", d.String("businessStructure", "—")},
		{"Work types", d.String("workTypes", "—")},
		{"Area coverage", d.String("areaCoverage", "—")},
	}
	if docs, ok := d["documents"].(map[string]string); ok {
		keys := make([]string, 0, len(docs))
		for k := range docs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, row{Label: k, Value: docs[k]})
		}
	}
	return render(fmt.Sprintf("[Partner application] %s – %s", name, email), page{
		Paragraphs: []string{"A partner application has been completed."},
		Rows:       rows,
	})
}

func verificationCode(d Data) Content {
	return render("Your Master verification code", page{
		Greeting: greeting(d),
		Paragraphs: []string{
			"We sent a 6-digit verification code to " + d.String("email", "your email") + ".",
			"This code will expire in 10 minutes. Never share it with anyone.",
			"If you didn't request this code, you can safely ignore this email.",
		},
		Highlight: d.String("code", "000000"),
	})
}
