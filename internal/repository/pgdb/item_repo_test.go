package pgdb

import (
	"fmt"
	"testing"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderByCategoryMatchesEnum(t *testing.T) {
	for rank, c := range domain.Categories() {
		assert.Contains(t, orderByCategory, fmt.Sprintf("WHEN '%s' THEN %d", c, rank),
			"category %s must keep its declared rank in the ORDER BY clause", c)
	}

	// неизвестные значения уходят в конец, как в domain.Category.Rank
	assert.Contains(t, orderByCategory, fmt.Sprintf("ELSE %d", len(domain.Categories())))
}
