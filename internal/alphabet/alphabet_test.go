package alphabet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Symbol
	}{
		{"0", Zero},
		{"1", One},
		{"eps", Epsilon},
		{"ε", Epsilon},
		{" 1 ", One},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("2")
	require.Error(t, err)

	var symErr *UnknownSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, "2", symErr.Text)
}

func TestSymbol_IndexAndInput(t *testing.T) {
	assert.Equal(t, 0, Zero.Index())
	assert.Equal(t, 1, One.Index())
	assert.Equal(t, -1, Epsilon.Index())
	assert.True(t, One.IsInput())
	assert.False(t, Epsilon.IsInput())
	assert.Equal(t, "ε", Epsilon.String())
	assert.Len(t, Binary, Size)
}
