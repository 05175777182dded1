package predicates

import (
	"testing"

	"github.com/specialistvlad/automata/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(uint64) bool
		yes  []uint64
		no   []uint64
	}{
		{"mod4", Mod4Equals1, []uint64{1, 5, 9, 13}, []uint64{0, 2, 3, 4, 11}},
		{"third_from_last", ThirdFromLastIsOne, []uint64{4, 5, 6, 7, 12}, []uint64{0, 1, 3, 8, 11}},
		{"alternating", AlternatingBits, []uint64{0, 1, 2, 5, 10, 21}, []uint64{3, 4, 6, 7, 11}},
		{"ends_with_011", EndsWith011, []uint64{11, 19, 27}, []uint64{3, 10, 12}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range tc.yes {
				assert.True(t, tc.fn(n), "%d", n)
			}
			for _, n := range tc.no {
				assert.False(t, tc.fn(n), "%d", n)
			}
		})
	}
}

func TestModule_Register(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	assert.Equal(t, []string{"alternating_bits", "ends_with_011", "mod4_equals_1", "third_from_last_is_one"}, r.Names())
	p, ok := r.Predicate("mod4_equals_1")
	require.True(t, ok)
	assert.True(t, p.Fn(9))
}
