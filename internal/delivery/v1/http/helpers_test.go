package http

import (
	"net/http"
	"testing"

	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cents int64
		err   error
	}{
		{name: "integer", input: "6", cents: 600},
		{name: "two decimals", input: "5.99", cents: 599},
		{name: "one decimal", input: "1.5", cents: 150},
		{name: "sub-dollar", input: "0.99", cents: 99},
		{name: "smallest", input: "0.01", cents: 1},
		{name: "upper limit", input: "10000000", cents: 1_000_000_000},
		{name: "over limit", input: "10000000.01", err: e.ErrInvalidPrice},
		{name: "zero", input: "0", err: e.ErrInvalidPrice},
		{name: "negative", input: "-1.50", err: e.ErrInvalidPrice},
		{name: "garbage", input: "abc", err: e.ErrInvalidPrice},
		{name: "empty", input: "", err: e.ErrInvalidPrice},
		{name: "three decimals", input: "1.999", err: e.ErrPricePrecision},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cents, err := parseAmountToCents(tc.input, e.ErrInvalidPrice)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cents, cents)
		})
	}
}

func TestCentsToAmount(t *testing.T) {
	assert.Equal(t, "1.99", centsToAmount(199))
	assert.Equal(t, "0.05", centsToAmount(5))
	assert.Equal(t, "6.00", centsToAmount(600))
	assert.Equal(t, "0.00", centsToAmount(0))
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{err: e.ErrValidation, code: http.StatusBadRequest},
		{err: e.Wrap("op", e.ErrMissingFields), code: http.StatusBadRequest},
		{err: e.ErrInvalidDelta, code: http.StatusBadRequest},
		{err: e.ErrPricePrecision, code: http.StatusBadRequest},
		{err: e.Wrap("op", e.ErrItemNotFound), code: http.StatusNotFound},
		{err: e.ErrReportGeneration, code: http.StatusInternalServerError},
		{err: assert.AnError, code: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, tc.err)
		assert.NotEmpty(t, msg)
	}
}
