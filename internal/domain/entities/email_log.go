package entities

import "time"

const EmailLogStatusSent = "sent"

// EmailMessage is a rendered email ready for the provider.
type EmailMessage struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// EmailLog records a delivered message.
type EmailLog struct {
	Template       string
	RecipientEmail string
	Subject        string
	Status         string
	ExternalID     string
	SentAt         time.Time
}
