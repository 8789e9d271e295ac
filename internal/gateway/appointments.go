package gateway

import (
	"context"
	"fmt"
	"net/http"
	nurl "net/url"
	"strconv"
	"time"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/models"
)

func (c *Client) ListAppointments(
	ctx context.Context,
	in domain.ListInput,
) ([]models.Appointment, error) {

	q := nurl.Values{
		"start": []string{in.Start.Format(time.RFC3339)},
		"end":   []string{in.End.Format(time.RFC3339)},
	}
	if in.ProfessionalID != 0 {
		q.Set("professional_id", strconv.FormatUint(uint64(in.ProfessionalID), 10))
	}

	var aps []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments/list", q, nil, &aps); err != nil {
		return nil, err
	}
	return aps, nil
}

func (c *Client) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	var created models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, ap, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAppointment(
	ctx context.Context,
	id uint,
	update domain.Update,
) (*models.Appointment, error) {

	var updated models.Appointment
	path := fmt.Sprintf("/appointments/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AvailableHours(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	q := nurl.Values{
		"professional_id": []string{strconv.FormatUint(uint64(in.ProfessionalID), 10)},
		"specialty_id":    []string{strconv.FormatUint(uint64(in.SpecialtyID), 10)},
		"date":            []string{in.Date.Format("2006-01-02")},
	}

	var resp struct {
		Slots []domain.TimeSlot `json:"slots"`
	}
	if err := c.do(ctx, http.MethodGet, "/available-hours", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Slots, nil
}
