package template

import (
	"context"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
)

// TemplateService manages reusable shift presets.
type TemplateService interface {
	Create(ctx context.Context, req SaveTemplateRequest) (TemplateResponse, error)
	Get(ctx context.Context, id string) (TemplateResponse, error)
	List(ctx context.Context, activeOnly bool) ([]TemplateResponse, error)
	Update(ctx context.Context, id string, req SaveTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, id string) error

	// Instantiate records a completed shift on the given date using the
	// template's start time, duration and type.
	Instantiate(ctx context.Context, id string, req InstantiateTemplateRequest) (shift.ShiftResponse, error)
}
