// Package contact validates the contact form and manages its transient
// feedback message.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/marcus/folio/internal/locale"
)

// FeedbackDelay is how long a feedback message stays visible.
const FeedbackDelay = 3000 * time.Millisecond

// RE2's \s is ASCII only, so Unicode separators and the BOM are listed too.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// Fields are the raw values of the contact form.
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns the fields with surrounding whitespace removed.
func (f Fields) Trimmed() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Rule identifies which validation rule failed.
type Rule int

const (
	RuleEmptyField Rule = iota + 1
	RuleInvalidEmail
)

func (r Rule) String() string {
	switch r {
	case RuleEmptyField:
		return "empty_field"
	case RuleInvalidEmail:
		return "invalid_email"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// ValidationError reports the first failed rule.
type ValidationError struct {
	Rule Rule
}

func (e *ValidationError) Error() string {
	return "contact form: " + e.Rule.String()
}

// Validate checks that every field is present and the email looks like
// local@domain.tld. Empty fields are reported before a malformed email.
func Validate(f Fields) error {
	f = f.Trimmed()
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return &ValidationError{Rule: RuleEmptyField}
	}
	if !ValidEmail(f.Email) {
		return &ValidationError{Rule: RuleInvalidEmail}
	}
	return nil
}

// ValidEmail reports whether s matches the accepted email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// MessageID returns the localized message id describing the outcome of
// Validate: thanks for nil, otherwise the message for the failed rule.
func MessageID(err error) string {
	if err == nil {
		return locale.MsgThanks
	}
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Rule == RuleInvalidEmail {
		return locale.MsgInvalidEmail
	}
	return locale.MsgMissingFields
}
