package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientStatus marks whether a client is still billed
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Client is a billable counterparty. Name is the only required field.
type Client struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Company    string       `json:"company,omitempty"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Address    string       `json:"address,omitempty"`
	City       string       `json:"city,omitempty"`
	PostalCode string       `json:"postalCode,omitempty"`
	Country    string       `json:"country,omitempty"`
	VATNumber  string       `json:"vatNumber,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	Status     ClientStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// NewClient creates an active client with a fresh identifier.
func NewClient(name, email string) Client {
	return Client{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Status:    ClientActive,
		CreatedAt: time.Now().UTC(),
	}
}
