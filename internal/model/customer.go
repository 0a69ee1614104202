package model

import "time"

// Customer is a dormant entity carried over from the CMS schema. It has a
// table but no service or endpoints attached yet.
type Customer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	CPF        *string   `json:"cpf,omitempty"`
	PostalCode *string   `json:"postal_code,omitempty"`
	Street     *string   `json:"street,omitempty"`
	Number     *string   `json:"number,omitempty"`
	Complement *string   `json:"complement,omitempty"`
	District   *string   `json:"district,omitempty"`
	City       *string   `json:"city,omitempty"`
	State      *string   `json:"state,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
