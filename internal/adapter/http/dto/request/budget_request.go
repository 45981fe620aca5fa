package request

import (
	"errors"
	"strings"
	"time"

	"avflow/internal/domain/entities"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD payload field.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

type BudgetItemRequest struct {
	EquipmentID string  `json:"equipment_id" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	PricePerDay float64 `json:"price_per_day"`
}

// BudgetRequest is the creation payload. Status defaults to draft and the
// event date to the pickup date when omitted.
type BudgetRequest struct {
	ClientID   string              `json:"client_id" binding:"required"`
	Status     string              `json:"status"`
	PickupDate string              `json:"pickup_date" binding:"required"`
	EventDate  string              `json:"event_date"`
	ReturnDate string              `json:"return_date" binding:"required"`
	Items      []BudgetItemRequest `json:"items"`
	Discount   float64             `json:"discount"`
}

func (r BudgetRequest) ResolveStatus() entities.BudgetStatus {
	s := strings.ToLower(strings.TrimSpace(r.Status))
	if s == "" {
		return entities.BudgetStatusDraft
	}
	return entities.BudgetStatus(s)
}

// ResolveDates parses pickup, event and return dates, defaulting a blank
// event date to the pickup date.
func (r BudgetRequest) ResolveDates() (pickup, event, ret time.Time, err error) {
	pickup, err = ParseDate(r.PickupDate)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	ret, err = ParseDate(r.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	if strings.TrimSpace(r.EventDate) == "" {
		return pickup, pickup, ret, nil
	}
	event, err = ParseDate(r.EventDate)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	return pickup, event, ret, nil
}

// BudgetStatusRequest is the PATCH payload for status changes.
type BudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r BudgetStatusRequest) ResolveStatus() entities.BudgetStatus {
	return entities.BudgetStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
