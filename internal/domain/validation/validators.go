// Package validation turns untrusted input into canonical values.
// Every function is total: callers branch on Valid instead of handling errors.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MaxEmailLength = 254
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

// Result is the outcome of validating a string field.
type Result struct {
	Valid     bool   `json:"valid"`
	Sanitized string `json:"sanitized,omitempty"`
	Error     string `json:"error,omitempty"`
}

// AmountResult is the outcome of validating a monetary amount.
type AmountResult struct {
	Valid bool    `json:"valid"`
	Value float64 `json:"value,omitempty"`
	Error string  `json:"error,omitempty"`
}

var (
	validate = validator.New()

	postcodePattern  = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]? [0-9][A-Z]{2}$`)
	compactPostcode  = regexp.MustCompile(`^([A-Z]{1,2}[0-9][A-Z0-9]?)([0-9][A-Z]{2})$`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	phoneDisallowed  = regexp.MustCompile(`[^\d+]`)
	domainLabel      = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)
	htmlSpecialChars = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"/", "&#x2F;",
	)
)

// Email trims and lowercases raw and checks it is a deliverable address.
func Email(raw string) Result {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return Result{Error: "Email is required"}
	}
	if len(email) > MaxEmailLength {
		return Result{Error: "Email is too long"}
	}
	if err := validate.Var(email, "email"); err != nil {
		return Result{Error: "Invalid email format"}
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	if strings.Contains(local, "..") || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return Result{Error: "Invalid email format"}
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return Result{Error: "Invalid email format"}
	}
	for _, l := range labels {
		if !domainLabel.MatchString(l) {
			return Result{Error: "Invalid email format"}
		}
	}
	return Result{Valid: true, Sanitized: email}
}

// Postcode canonicalises a UK postcode to "OUTWARD INWARD".
func Postcode(raw string) Result {
	pc := strings.ToUpper(strings.TrimSpace(raw))
	if pc == "" {
		return Result{Error: "Postcode is required"}
	}
	pc = whitespaceRun.ReplaceAllString(pc, " ")
	if m := compactPostcode.FindStringSubmatch(pc); m != nil {
		pc = m[1] + " " + m[2]
	}
	if !postcodePattern.MatchString(pc) {
		return Result{Error: "Invalid UK postcode format"}
	}
	return Result{Valid: true, Sanitized: pc}
}

// Phone keeps digits and a leading +, rewriting +44 to a national 0 prefix.
func Phone(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{Error: "Phone number is required"}
	}
	cleaned := phoneDisallowed.ReplaceAllString(trimmed, "")
	plus := strings.HasPrefix(cleaned, "+")
	cleaned = strings.ReplaceAll(cleaned, "+", "")
	if plus {
		cleaned = "+" + cleaned
	}
	if strings.HasPrefix(cleaned, "+44") {
		cleaned = "0" + strings.TrimPrefix(cleaned, "+44")
	}

	// The national trunk 0 is not counted.
	digits := strings.TrimPrefix(strings.TrimPrefix(cleaned, "+"), "0")
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return Result{Error: "Invalid phone number length"}
	}
	return Result{Valid: true, Sanitized: cleaned}
}

// Amount accepts a number or numeric string and rounds it to 2 decimals.
func Amount(raw any, ceiling float64) AmountResult {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return AmountResult{Error: "Invalid amount format"}
		}
		v = f
	default:
		return AmountResult{Error: "Invalid amount format"}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return AmountResult{Error: "Invalid amount format"}
	}
	if v <= 0 {
		return AmountResult{Error: "Amount must be positive"}
	}
	if v > ceiling {
		return AmountResult{Error: "Amount exceeds maximum allowed"}
	}
	return AmountResult{Valid: true, Value: math.Round(v*100) / 100}
}

// SanitizeString trims, truncates to maxLength runes, strips NUL bytes and escapes markup characters.
func SanitizeString(raw string, maxLength int) string {
	s := strings.TrimSpace(raw)
	if maxLength >= 0 && utf8.RuneCountInString(s) > maxLength {
		s = string([]rune(s)[:maxLength])
	}
	s = strings.ReplaceAll(s, "\x00", "")
	return htmlSpecialChars.Replace(s)
}

// SanitizeList sanitizes each entry, drops empties and keeps at most maxItems.
func SanitizeList(raw []string, maxItems, maxLength int) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if len(out) == maxItems {
			break
		}
		if v := SanitizeString(s, maxLength); v != "" {
			out = append(out, v)
		}
	}
	return out
}
