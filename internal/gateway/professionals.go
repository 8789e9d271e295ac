package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

func (c *Client) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	var pros []models.Professional
	if err := c.do(ctx, http.MethodGet, "/professionals", nil, nil, &pros); err != nil {
		return nil, err
	}
	return pros, nil
}

func (c *Client) GetProfessional(ctx context.Context, id uint) (*models.Professional, error) {
	var pro models.Professional
	path := fmt.Sprintf("/professionals/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &pro); err != nil {
		return nil, err
	}
	return &pro, nil
}

func (c *Client) UpdateSchedule(
	ctx context.Context,
	professionalID uint,
	schedule map[uint]models.WeeklySchedule,
) error {
	path := fmt.Sprintf("/professionals/%d/schedule", professionalID)
	body := map[string]any{"schedule": schedule}
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

func (c *Client) AssignSpecialties(
	ctx context.Context,
	professionalID uint,
	specialtyIDs []uint,
) error {
	path := fmt.Sprintf("/professionals/%d/specialties", professionalID)
	body := map[string]any{"specialty_ids": specialtyIDs}
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

func (c *Client) GetTerms(
	ctx context.Context,
	professionalID uint,
	specialtyID uint,
) (string, error) {
	var resp struct {
		Terms string `json:"terms"`
	}

	path := fmt.Sprintf("/professionals/%d/specialties/%d/terms", professionalID, specialtyID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Terms, nil
}

func (c *Client) UpdateTerms(
	ctx context.Context,
	professionalID uint,
	specialtyID uint,
	text string,
) error {
	path := fmt.Sprintf("/professionals/%d/specialties/%d/terms", professionalID, specialtyID)
	body := map[string]any{"terms": text}
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}
