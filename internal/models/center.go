package models

import "time"

// CenterConfig es la ficha de la clínica administrada por el backend.
type CenterConfig struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	UpdatedAt time.Time `json:"updated_at"`
}
