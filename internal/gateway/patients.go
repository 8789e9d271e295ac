package gateway

import (
	"context"
	"net/http"
	nurl "net/url"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

func (c *Client) ListPatients(ctx context.Context, query string) ([]models.Patient, error) {
	var q nurl.Values
	if query != "" {
		q = nurl.Values{"query": []string{query}}
	}

	var patients []models.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", q, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) CreatePatient(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	var created models.Patient
	if err := c.do(ctx, http.MethodPost, "/patients", nil, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
