package usecase

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/pricing"
	"master_booking/internal/domain/validation"
)

const (
	unknownCustomer    = "Unknown"
	unknownPostcode    = "Unknown"
	defaultServiceName = "Service"
	maxRoomCount       = 20
	maxMetadataValue   = 500
)

// BookingDetails is the customer and job data sent with a checkout.
type BookingDetails struct {
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	AddressLine1       string
	AddressLine2       string
	City               string
	Postcode           string
	ServiceID          string
	ServiceName        string
	ServiceCategory    string
	JobDescription     string
	PropertyType       string
	Bedrooms           *int
	Bathrooms          *int
	Addons             []string
	ScheduledDates     []string
	ScheduledTimeSlots []string
	HoursBooked        int
}

// normalizeBooking sanitizes every field. Fields that fail validation fall back to
// neutral defaults; the caller decides whether the email is mandatory.
func normalizeBooking(d BookingDetails) (entities.Booking, validation.Result) {
	email := validation.Email(d.CustomerEmail)

	b := entities.Booking{
		CustomerName:       orDefault(validation.SanitizeString(d.CustomerName, 200), unknownCustomer),
		CustomerEmail:      email.Sanitized,
		AddressLine1:       validation.SanitizeString(d.AddressLine1, 200),
		AddressLine2:       validation.SanitizeString(d.AddressLine2, 200),
		City:               validation.SanitizeString(d.City, 100),
		Postcode:           unknownPostcode,
		ServiceName:        orDefault(validation.SanitizeString(d.ServiceName, 200), defaultServiceName),
		ServiceCategory:    validation.SanitizeString(d.ServiceCategory, 100),
		JobDescription:     validation.SanitizeString(d.JobDescription, 5000),
		PropertyType:       validation.SanitizeString(d.PropertyType, 50),
		Bedrooms:           roomCount(d.Bedrooms),
		Bathrooms:          roomCount(d.Bathrooms),
		Addons:             validation.SanitizeList(d.Addons, 20, 100),
		ScheduledDates:     validation.SanitizeList(d.ScheduledDates, 10, 50),
		ScheduledTimeSlots: validation.SanitizeList(d.ScheduledTimeSlots, 10, 50),
		Currency:           pricing.Currency,
	}
	if d.HoursBooked > 0 && d.HoursBooked <= 24 {
		b.HoursBooked = d.HoursBooked
	}
	if pc := validation.Postcode(d.Postcode); pc.Valid {
		b.Postcode = pc.Sanitized
	}
	if ph := validation.Phone(d.CustomerPhone); ph.Valid {
		b.CustomerPhone = ph.Sanitized
	}
	if id, err := uuid.Parse(strings.TrimSpace(d.ServiceID)); err == nil {
		b.ServiceID = id.String()
	}
	return b, email
}

func roomCount(n *int) int {
	if n == nil || *n < 0 || *n > maxRoomCount {
		return 0
	}
	return *n
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// poundsToPence converts a validated pound amount to pence.
func poundsToPence(v float64) int64 {
	return int64(math.Round(v * 100))
}

// bookingMetadata is attached to the payment intent so the webhook can rebuild
// the booking when the pending row was never written.
func bookingMetadata(b entities.Booking) map[string]string {
	md := map[string]string{
		"booking_ref":          b.BookingRef,
		"customer_name":        b.CustomerName,
		"customer_email":       b.CustomerEmail,
		"customer_phone":       b.CustomerPhone,
		"address_line1":        b.AddressLine1,
		"address_line2":        b.AddressLine2,
		"city":                 b.City,
		"postcode":             b.Postcode,
		"service_id":           b.ServiceID,
		"service_name":         b.ServiceName,
		"service_category":     b.ServiceCategory,
		"job_description":      b.JobDescription,
		"scheduled_dates":      strings.Join(b.ScheduledDates, ", "),
		"scheduled_time_slots": strings.Join(b.ScheduledTimeSlots, ", "),
		"coupon_code":          b.CouponCode,
	}
	for k, v := range md {
		if v == "" {
			delete(md, k)
			continue
		}
		md[k] = truncateRunes(v, maxMetadataValue)
	}
	return md
}

// bookingFromMetadata is the inverse of bookingMetadata.
func bookingFromMetadata(md map[string]string, receiptEmail string) entities.Booking {
	b := entities.Booking{
		BookingRef:         md["booking_ref"],
		CustomerName:       orDefault(md["customer_name"], unknownCustomer),
		CustomerEmail:      md["customer_email"],
		CustomerPhone:      md["customer_phone"],
		AddressLine1:       md["address_line1"],
		AddressLine2:       md["address_line2"],
		City:               md["city"],
		Postcode:           orDefault(md["postcode"], unknownPostcode),
		ServiceID:          md["service_id"],
		ServiceName:        orDefault(md["service_name"], defaultServiceName),
		ServiceCategory:    md["service_category"],
		JobDescription:     md["job_description"],
		ScheduledDates:     splitList(md["scheduled_dates"]),
		ScheduledTimeSlots: splitList(md["scheduled_time_slots"]),
		CouponCode:         md["coupon_code"],
	}
	if b.CustomerEmail == "" {
		b.CustomerEmail = strings.ToLower(strings.TrimSpace(receiptEmail))
	}
	if b.BookingRef == "" {
		b.BookingRef = entities.NewBookingRef()
	}
	return b
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
