package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 256
	MaxNameLength     = 100
	MaxTitleLength    = 200
	MaxDescLength     = 5000
)

// NormalizeEmail is applied before every store and lookup so that the
// unique index sees one spelling per address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(v *ValidationError, name string) {
	switch {
	case name == "":
		v.add("name", "is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		v.add("name", "is too long")
	}
}

// validateEmail expects an already normalised address. Display names and
// other RFC 5322 decorations are rejected.
func validateEmail(v *ValidationError, email string) {
	if email == "" {
		v.add("email", "is required")
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		v.add("email", "is not a valid address")
	}
}

func validatePassword(v *ValidationError, field, password string) {
	switch n := utf8.RuneCountInString(password); {
	case n == 0:
		v.add(field, "is required")
	case n < MinPasswordLength:
		v.add(field, "must be at least 6 characters")
	case len(password) > MaxPasswordLength:
		v.add(field, "is too long")
	}
}

func validateTitle(v *ValidationError, title string) {
	switch {
	case title == "":
		v.add("title", "is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		v.add("title", "is too long")
	}
}

func validateDescription(v *ValidationError, desc string) {
	if utf8.RuneCountInString(desc) > MaxDescLength {
		v.add("description", "is too long")
	}
}

// parseStatus maps "" to def and rejects unknown values.
func parseStatus(v *ValidationError, raw string, def domain.TaskStatus) domain.TaskStatus {
	if raw == "" {
		return def
	}
	s := domain.TaskStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		v.add("status", "must be pending or completed")
	}
	return s
}
