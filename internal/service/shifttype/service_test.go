package shifttype

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/validator"
)

type memShiftTypeRepo struct {
	shifttype.ShiftTypeRepository
	types  map[string]shifttype.ShiftType
	nextID int
}

func newMemShiftTypeRepo() *memShiftTypeRepo {
	return &memShiftTypeRepo{types: make(map[string]shifttype.ShiftType)}
}

func (m *memShiftTypeRepo) Create(ctx context.Context, t shifttype.ShiftType) (shifttype.ShiftType, error) {
	m.nextID++
	t.ID = "type-" + strconv.Itoa(m.nextID)
	m.types[t.ID] = t
	return t, nil
}

func (m *memShiftTypeRepo) GetByID(ctx context.Context, id string) (shifttype.ShiftType, error) {
	t, ok := m.types[id]
	if !ok {
		return shifttype.ShiftType{}, shifttype.ErrShiftTypeNotFound
	}
	return t, nil
}

func (m *memShiftTypeRepo) List(ctx context.Context) ([]shifttype.ShiftType, error) {
	out := make([]shifttype.ShiftType, 0, len(m.types))
	for _, t := range m.types {
		out = append(out, t)
	}
	return out, nil
}

func (m *memShiftTypeRepo) Update(ctx context.Context, t shifttype.ShiftType) error {
	if _, ok := m.types[t.ID]; !ok {
		return shifttype.ErrShiftTypeNotFound
	}
	m.types[t.ID] = t
	return nil
}

func float64Ptr(f float64) *float64 { return &f }

func TestShiftTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid type", func(t *testing.T) {
		svc := NewShiftTypeService(nil, newMemShiftTypeRepo(), nil)

		resp, err := svc.Create(ctx, shifttype.SaveShiftTypeRequest{
			Name:       "Night shift",
			ColorHex:   "#800080",
			HourlyRate: float64Ptr(28),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Night shift", resp.Name)
		assert.Equal(t, "#800080", resp.ColorHex)
		require.NotNil(t, resp.HourlyRate)
		assert.InDelta(t, 28.0, *resp.HourlyRate, 1e-9)
	})

	t.Run("invalid color falls back to the default", func(t *testing.T) {
		svc := NewShiftTypeService(nil, newMemShiftTypeRepo(), nil)

		resp, err := svc.Create(ctx, shifttype.SaveShiftTypeRequest{
			Name:     "Odd",
			ColorHex: "purple",
		})
		require.NoError(t, err)
		assert.Equal(t, shifttype.DefaultColorHex, resp.ColorHex)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		repo := newMemShiftTypeRepo()
		svc := NewShiftTypeService(nil, repo, nil)

		_, err := svc.Create(ctx, shifttype.SaveShiftTypeRequest{ColorHex: "#FFA500"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Empty(t, repo.types)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		svc := NewShiftTypeService(nil, newMemShiftTypeRepo(), nil)

		_, err := svc.Create(ctx, shifttype.SaveShiftTypeRequest{
			Name:       "Bad",
			HourlyRate: float64Ptr(-5),
		})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestShiftTypeService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newMemShiftTypeRepo()
	svc := NewShiftTypeService(nil, repo, nil)

	created, err := svc.Create(ctx, shifttype.SaveShiftTypeRequest{
		Name:       "Early shift",
		ColorHex:   "#FFA500",
		HourlyRate: float64Ptr(20),
	})
	require.NoError(t, err)

	t.Run("replaces all fields", func(t *testing.T) {
		resp, err := svc.Update(ctx, created.ID, shifttype.SaveShiftTypeRequest{
			Name:     "Early",
			ColorHex: "#FF8C00",
		})
		require.NoError(t, err)
		assert.Equal(t, "Early", resp.Name)
		assert.Equal(t, "#FF8C00", resp.ColorHex)
		assert.Nil(t, resp.HourlyRate)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", shifttype.SaveShiftTypeRequest{Name: "X"})
		assert.ErrorIs(t, err, shifttype.ErrShiftTypeNotFound)
	})
}

func TestShiftTypeService_Get(t *testing.T) {
	ctx := context.Background()
	repo := newMemShiftTypeRepo()
	svc := NewShiftTypeService(nil, repo, nil)

	created, err := svc.Create(ctx, shifttype.SaveShiftTypeRequest{Name: "Late shift", ColorHex: "#0000FF"})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Late shift", resp.Name)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, shifttype.ErrShiftTypeNotFound)
}

func TestShiftTypeService_Delete_UnknownID(t *testing.T) {
	svc := NewShiftTypeService(nil, newMemShiftTypeRepo(), nil)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, shifttype.ErrShiftTypeNotFound)
}
