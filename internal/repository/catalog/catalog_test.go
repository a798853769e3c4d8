package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/shopsearch/internal/domain"
)

func TestDecode_PreservesOrder(t *testing.T) {
	products, err := Decode([]byte(`[
		{"id": 2, "title": "B", "category": "shoes", "price": 10, "rating": 4},
		{"id": 1, "title": "A", "category": "shoes", "price": 20, "rating": 3}
	]`))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID())
	assert.Equal(t, "1", products[1].ID())
}

func TestDecode_EmptyArray(t *testing.T) {
	products, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"not an array", `{"id": 1}`, false},
		{"malformed", `[{"id": 1,`, false},
		{"negative price", `[{"id": 1, "price": -5, "rating": 4}]`, true},
		{"rating out of range", `[{"id": 1, "price": 5, "rating": 7}]`, true},
		{"missing id", `[{"title": "x", "price": 5, "rating": 4}]`, true},
		{"duplicate id", `[{"id": 1, "price": 5, "rating": 4}, {"id": "1", "price": 6, "rating": 4}]`, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, domain.ErrInvalidProduct))
		})
	}
}

func TestDecode_ErrorNamesIndex(t *testing.T) {
	_, err := Decode([]byte(`[{"id": 1, "price": 1, "rating": 1}, {"id": 2, "price": -1, "rating": 1}]`))
	var pe *domain.ProductError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)
}

func TestFind(t *testing.T) {
	products, err := Decode([]byte(`[{"id": "a", "price": 1, "rating": 1}, {"id": "b", "price": 2, "rating": 2}]`))
	require.NoError(t, err)

	p, err := Find(products, "b")
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Price())

	_, err = Find(products, "zzz")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
