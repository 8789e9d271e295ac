package models

import "time"

type Patient struct {
	ID uint `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// RUT chileno con dígito verificador (módulo 11).
	Rut string `json:"rut"`

	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Address   string `json:"address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
