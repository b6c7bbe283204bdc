package entities

import "time"

const DefaultLeadSource = "hero_b2c"

// HeroLead is an email captured from the landing page search box.
type HeroLead struct {
	ID               string
	Email            string
	Service          string
	ServiceType      string
	Postcode         string
	Phone            string
	PreferredContact string
	Source           string
	CreatedAt        time.Time
}

// BookingLead is a partially completed booking that ops should follow up.
// It is only emailed, never stored.
type BookingLead struct {
	Email       string
	Name        string
	Phone       string
	Postcode    string
	Service     string
	ServiceType string
	Source      string
}
