package gateway

import (
	"context"
	"net/http"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

func (c *Client) GetCenterConfig(ctx context.Context) (*models.CenterConfig, error) {
	var cfg models.CenterConfig
	if err := c.do(ctx, http.MethodGet, "/center-config", nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) UpdateCenterConfig(ctx context.Context, cfg *models.CenterConfig) error {
	return c.do(ctx, http.MethodPut, "/center-config", nil, cfg, nil)
}
