package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agendasalud/clinic-agenda/internal/config"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
)

// Client habla con la API clínica remota. Implementa el puerto
// appointment.Gateway. Sin reintentos: una falla se reporta y el usuario
// decide si vuelve a intentar.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	logger  *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.BackendURL,
		token:   cfg.BackendToken,
		logger:  logger,
	}
}

type upstreamErrorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query nurl.Values,
	body any,
	out any,
) error {

	url := c.baseURL + path
	if len(query) > 0 {
		url += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("clinic_api.request_failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb upstreamErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)

		message := eb.Message
		if message == "" {
			message = eb.Error
		}

		c.logger.Warn("clinic_api.rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", eb.Code),
		)

		return httperr.UpstreamError{
			StatusCode: resp.StatusCode,
			Code:       eb.Code,
			Message:    message,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}

	return nil
}
