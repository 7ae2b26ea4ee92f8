package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
	ContactStatusArchived  ContactStatus = "archived"
)

// Contact is an inbound lead submitted through the public contact form, the
// only entity created by anonymous writes.
type Contact struct {
	Id        string        `db:"id" json:"id"`
	Status    ContactStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
	ContactInsert
}

type ContactInsert struct {
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Company  string `db:"company" json:"company,omitempty"`
	Phone    string `db:"phone" json:"phone,omitempty"`
	Service  string `db:"service" json:"service,omitempty"`
	Message  string `db:"message" json:"message"`
	Language string `db:"language" json:"language"`
}

// ContactFilters narrows the admin contacts listing.
type ContactFilters struct {
	Status *ContactStatus
}

var validContactStatuses = map[ContactStatus]bool{
	ContactStatusNew:       true,
	ContactStatusRead:      true,
	ContactStatusResponded: true,
	ContactStatusArchived:  true,
}

// ParseContactStatus validates a status string from a request.
func ParseContactStatus(s string) (ContactStatus, error) {
	st := ContactStatus(s)
	if !validContactStatuses[st] {
		return "", &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status: %s", s)}
	}
	return st, nil
}

// ValidateContactInsert checks a public submission.
func ValidateContactInsert(in *ContactInsert) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	in.Company = strings.TrimSpace(in.Company)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Service = strings.TrimSpace(in.Service)

	if in.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(in.Name) > 100 {
		return &ValidationError{Field: "name", Message: "name must not exceed 100 characters"}
	}
	if in.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !govalidator.IsEmail(in.Email) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	if in.Message == "" {
		return &ValidationError{Field: "message", Message: "message is required"}
	}
	if len(in.Message) > 5000 {
		return &ValidationError{Field: "message", Message: "message must not exceed 5000 characters"}
	}
	switch in.Language {
	case "":
		in.Language = LocaleEN
	case LocaleEN, LocaleID:
	default:
		return &ValidationError{Field: "language", Message: fmt.Sprintf("unsupported language: %s", in.Language)}
	}
	return nil
}
