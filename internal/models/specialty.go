package models

import "time"

type Specialty struct {
	ID uint `json:"id"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Color       string  `json:"color"`
	HasTerms    bool    `json:"has_terms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
