package template

import "context"

// TemplateRepository defines data access for shift templates.
type TemplateRepository interface {
	Create(ctx context.Context, t ShiftTemplate) (ShiftTemplate, error)
	GetByID(ctx context.Context, id string) (ShiftTemplate, error)
	List(ctx context.Context, activeOnly bool) ([]ShiftTemplate, error)
	Update(ctx context.Context, t ShiftTemplate) error
	Delete(ctx context.Context, id string) error
}
