package usecase

import (
	"errors"
	"testing"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReq() *ItemReq {
	return NewItemReq("Apple", domain.CategoryFruit, 199, 50, 10)
}

func TestValidateItemReq_Valid(t *testing.T) {
	assert.NoError(t, validateItemReq(validReq()))
}

func TestValidateItemReq_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *ItemReq)
		field  string
	}{
		{
			name:   "empty name",
			mutate: func(r *ItemReq) { r.Name = "" },
			field:  "name",
		},
		{
			name:   "blank name",
			mutate: func(r *ItemReq) { r.Name = "   " },
			field:  "name",
		},
		{
			name: "name too long",
			mutate: func(r *ItemReq) {
				for len(r.Name) <= 100 {
					r.Name += "a"
				}
			},
			field: "name",
		},
		{
			name:   "unknown category",
			mutate: func(r *ItemReq) { r.Category = "Fish" },
			field:  "category",
		},
		{
			name:   "zero price",
			mutate: func(r *ItemReq) { r.Price = 0 },
			field:  "price",
		},
		{
			name:   "negative price",
			mutate: func(r *ItemReq) { r.Price = -1 },
			field:  "price",
		},
		{
			name:   "zero cost",
			mutate: func(r *ItemReq) { r.Cost = 0 },
			field:  "cost",
		},
		{
			name:   "negative stock",
			mutate: func(r *ItemReq) { r.Stock = -1 },
			field:  "stock",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.mutate(req)

			err := validateItemReq(req)
			require.Error(t, err)
			assert.ErrorIs(t, err, e.ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tc.field, verr.Violations[0].Field)
		})
	}
}

func TestValidateItemReq_CollectsAllViolations(t *testing.T) {
	req := NewItemReq("", "Fish", 0, 0, -5)

	err := validateItemReq(req)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 5)
}

func TestClampStock(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		delta    int64
		expected int64
	}{
		{name: "increase", current: 10, delta: 5, expected: 15},
		{name: "decrease", current: 10, delta: -3, expected: 7},
		{name: "to zero", current: 10, delta: -10, expected: 0},
		{name: "below zero clamps", current: 10, delta: -15, expected: 0},
		{name: "zero delta", current: 7, delta: 0, expected: 7},
		{name: "from zero down", current: 0, delta: -1, expected: 0},
		{name: "from zero up", current: 0, delta: 4, expected: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, clampStock(tc.current, tc.delta))
		})
	}
}
