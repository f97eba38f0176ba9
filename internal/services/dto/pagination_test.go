package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	q := NormalizePage(0, -5)
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultPerPage, q.PerPage)

	q = NormalizePage(3, 25)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.PerPage)
	assert.Equal(t, 50, q.Offset())
}

func TestNewPaginatedCeilMath(t *testing.T) {
	q := PageQuery{Page: 1, PerPage: 10}

	assert.Equal(t, 0, NewPaginated(q, 0, nil).TotalPages)
	assert.Equal(t, 1, NewPaginated(q, 1, nil).TotalPages)
	assert.Equal(t, 1, NewPaginated(q, 10, nil).TotalPages)
	assert.Equal(t, 2, NewPaginated(q, 11, nil).TotalPages)
	assert.Equal(t, 3, NewPaginated(q, 21, nil).TotalPages)
}

func TestNewPaginatedCarriesQueryAndData(t *testing.T) {
	q := PageQuery{Page: 2, PerPage: 5}
	data := []string{"a", "b"}

	p := NewPaginated(q, 7, data)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 5, p.PerPage)
	assert.Equal(t, int64(7), p.TotalItems)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, data, p.Data)
}
