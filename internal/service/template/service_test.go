package template

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/template"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

type memTemplateRepo struct {
	template.TemplateRepository
	templates map[string]template.ShiftTemplate
	nextID    int
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: make(map[string]template.ShiftTemplate)}
}

func (m *memTemplateRepo) Create(ctx context.Context, t template.ShiftTemplate) (template.ShiftTemplate, error) {
	m.nextID++
	t.ID = "tpl-" + strconv.Itoa(m.nextID)
	m.templates[t.ID] = t
	return t, nil
}

func (m *memTemplateRepo) GetByID(ctx context.Context, id string) (template.ShiftTemplate, error) {
	t, ok := m.templates[id]
	if !ok {
		return template.ShiftTemplate{}, template.ErrTemplateNotFound
	}
	return t, nil
}

func (m *memTemplateRepo) List(ctx context.Context, activeOnly bool) ([]template.ShiftTemplate, error) {
	var out []template.ShiftTemplate
	for _, t := range m.templates {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memTemplateRepo) Update(ctx context.Context, t template.ShiftTemplate) error {
	if _, ok := m.templates[t.ID]; !ok {
		return template.ErrTemplateNotFound
	}
	m.templates[t.ID] = t
	return nil
}

func (m *memTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.templates[id]; !ok {
		return template.ErrTemplateNotFound
	}
	delete(m.templates, id)
	return nil
}

type fakeShiftTypeRepo struct {
	shifttype.ShiftTypeRepository
	types map[string]shifttype.ShiftType
}

func (f *fakeShiftTypeRepo) GetByID(ctx context.Context, id string) (shifttype.ShiftType, error) {
	t, ok := f.types[id]
	if !ok {
		return shifttype.ShiftType{}, shifttype.ErrShiftTypeNotFound
	}
	return t, nil
}

type fakeShiftRepo struct {
	shift.ShiftRepository
	created []shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	s.ID = "shift-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, s)
	return s, nil
}

func strPtr(s string) *string       { return &s }
func boolPtr(b bool) *bool          { return &b }
func float64Ptr(f float64) *float64 { return &f }

func newTestService() (*TemplateServiceImpl, *memTemplateRepo) {
	svc, repo, _ := newTestServiceWithShifts()
	return svc, repo
}

func newTestServiceWithShifts() (*TemplateServiceImpl, *memTemplateRepo, *fakeShiftRepo) {
	repo := newMemTemplateRepo()
	types := &fakeShiftTypeRepo{types: map[string]shifttype.ShiftType{
		"t-early": {ID: "t-early", Name: "Early shift"},
	}}
	shifts := &fakeShiftRepo{}
	svc := NewTemplateService(repo, types, shifts)
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) }
	return svc, repo, shifts
}

func TestTemplateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults duration and active flag", func(t *testing.T) {
		svc, _ := newTestService()

		resp, err := svc.Create(ctx, template.SaveTemplateRequest{
			Name:               "Morning",
			DefaultStartHour:   6,
			DefaultStartMinute: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, "06:30", resp.DefaultStart)
		assert.InDelta(t, 8.0, resp.DefaultDurationHours, 1e-9)
		assert.True(t, resp.IsActive)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.Create(ctx, template.SaveTemplateRequest{DefaultStartHour: 6})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Empty(t, repo.templates)
	})

	t.Run("rejects an unknown shift type", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.Create(ctx, template.SaveTemplateRequest{
			Name:        "Night",
			ShiftTypeID: strPtr("missing"),
		})
		assert.ErrorIs(t, err, shifttype.ErrShiftTypeNotFound)
		assert.Empty(t, repo.templates)
	})
}

func TestTemplateService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, template.SaveTemplateRequest{Name: "Active", DefaultStartHour: 8})
	require.NoError(t, err)
	_, err = svc.Create(ctx, template.SaveTemplateRequest{
		Name:             "Retired",
		DefaultStartHour: 8,
		IsActive:         boolPtr(false),
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].Name)
}

func TestTemplateService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, template.SaveTemplateRequest{
		Name:                 "Morning",
		DefaultStartHour:     6,
		DefaultDurationHours: float64Ptr(7.5),
	})
	require.NoError(t, err)

	t.Run("patches provided fields only", func(t *testing.T) {
		resp, err := svc.Update(ctx, created.ID, template.SaveTemplateRequest{
			Name:             "Early morning",
			DefaultStartHour: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, "Early morning", resp.Name)
		assert.Equal(t, "05:00", resp.DefaultStart)
		assert.InDelta(t, 7.5, resp.DefaultDurationHours, 1e-9)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", template.SaveTemplateRequest{
			Name:             "X",
			DefaultStartHour: 5,
		})
		assert.ErrorIs(t, err, template.ErrTemplateNotFound)
	})
}

func TestTemplateService_Instantiate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to today", func(t *testing.T) {
		svc, _, shifts := newTestServiceWithShifts()

		created, err := svc.Create(ctx, template.SaveTemplateRequest{
			Name:                 "Morning",
			ShiftTypeID:          strPtr("t-early"),
			DefaultStartHour:     6,
			DefaultStartMinute:   30,
			DefaultDurationHours: float64Ptr(7.5),
		})
		require.NoError(t, err)

		resp, err := svc.Instantiate(ctx, created.ID, template.InstantiateTemplateRequest{})
		require.NoError(t, err)

		require.Len(t, shifts.created, 1)
		s := shifts.created[0]
		assert.Equal(t, time.Date(2026, 3, 4, 6, 30, 0, 0, time.UTC), s.StartTime)
		require.NotNil(t, s.EndTime)
		assert.Equal(t, time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC), *s.EndTime)
		require.NotNil(t, s.ShiftTypeID)
		assert.Equal(t, "t-early", *s.ShiftTypeID)
		assert.False(t, resp.Active)
	})

	t.Run("explicit date", func(t *testing.T) {
		svc, _, shifts := newTestServiceWithShifts()

		created, err := svc.Create(ctx, template.SaveTemplateRequest{Name: "Morning", DefaultStartHour: 8})
		require.NoError(t, err)

		_, err = svc.Instantiate(ctx, created.ID, template.InstantiateTemplateRequest{Date: strPtr("2026-03-10")})
		require.NoError(t, err)

		require.Len(t, shifts.created, 1)
		assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), shifts.created[0].StartTime)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _, shifts := newTestServiceWithShifts()

		created, err := svc.Create(ctx, template.SaveTemplateRequest{Name: "Morning", DefaultStartHour: 8})
		require.NoError(t, err)

		_, err = svc.Instantiate(ctx, created.ID, template.InstantiateTemplateRequest{Date: strPtr("10.03.2026")})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Empty(t, shifts.created)
	})

	t.Run("unknown template", func(t *testing.T) {
		svc, _, _ := newTestServiceWithShifts()

		_, err := svc.Instantiate(ctx, "missing", template.InstantiateTemplateRequest{})
		assert.ErrorIs(t, err, template.ErrTemplateNotFound)
	})
}

func TestTemplateService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Create(ctx, template.SaveTemplateRequest{Name: "Morning", DefaultStartHour: 6})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.templates)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), template.ErrTemplateNotFound)
}
