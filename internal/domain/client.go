package domain

import (
	"regexp"
	"strings"
	"time"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusLead     ClientStatus = "lead"
)

// ValidClientStatus reports whether s is a known client status.
func ValidClientStatus(s ClientStatus) bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusLead:
		return true
	}
	return false
}

type Client struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Company         string       `json:"company,omitempty"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone,omitempty"`
	Status          ClientStatus `json:"status"`
	Tags            []string     `json:"tags,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt,omitzero"`
	LastInteraction time.Time    `json:"lastInteraction,omitzero"`
}

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9()\-\s.]{7,20}$`)
)

// NewClient creates a new client with required fields
func NewClient(name, email string) *Client {
	return &Client{
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		Status: ClientStatusActive,
	}
}

// Validate returns an error if the client is invalid
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "client name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return NewValidationError("email", "email is required")
	}
	if !emailRe.MatchString(c.Email) {
		return NewValidationError("email", "invalid email address")
	}
	if c.Phone != "" && !phoneRe.MatchString(c.Phone) {
		return NewValidationError("phone", "invalid phone number")
	}
	if !ValidClientStatus(c.Status) {
		return NewValidationError("status", "unknown client status")
	}
	return nil
}

// Clone returns a deep copy of the client.
func (c *Client) Clone() *Client {
	cp := *c
	if c.Tags != nil {
		cp.Tags = append([]string(nil), c.Tags...)
	}
	return &cp
}
