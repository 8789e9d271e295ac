package gateway

import (
	"context"
	"net/http"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

func (c *Client) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	if err := c.do(ctx, http.MethodGet, "/services", nil, nil, &specialties); err != nil {
		return nil, err
	}
	return specialties, nil
}
