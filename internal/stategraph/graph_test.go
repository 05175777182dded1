package stategraph

import (
	"testing"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddState_RejectsDuplicateName(t *testing.T) {
	g := New()
	first, added := g.AddState("q0", false)
	require.True(t, added)

	again, added := g.AddState("q0", true)
	assert.False(t, added)
	assert.Equal(t, first, again)
	assert.False(t, g.IsFinal(first), "duplicate insert must not change the stored state")
	assert.Equal(t, 1, g.Len())
}

func TestAddEdge_DeduplicatesTargets(t *testing.T) {
	g := New()
	a, _ := g.AddState("a", false)
	b, _ := g.AddState("b", true)

	g.AddEdge(a, alphabet.One, b)
	g.AddEdge(a, alphabet.One, b)
	g.AddEdge(a, alphabet.One, a)

	assert.Equal(t, Set{a, b}, g.Targets(a, alphabet.One))
	assert.Empty(t, g.Targets(a, alphabet.Zero))
	assert.Equal(t, 2, g.EdgeCount(alphabet.One))
}

func TestSelfLoop(t *testing.T) {
	g := New()
	a, _ := g.AddState("a", false)
	g.AddEdge(a, alphabet.Zero, a)
	assert.Equal(t, Set{a}, g.Targets(a, alphabet.Zero))
}

func TestSymbols_Ascending(t *testing.T) {
	g := New()
	a, _ := g.AddState("a", false)
	g.AddEdge(a, alphabet.Epsilon, a)
	g.AddEdge(a, alphabet.One, a)
	g.AddEdge(a, alphabet.Zero, a)

	assert.Equal(t, []alphabet.Symbol{alphabet.Zero, alphabet.One, alphabet.Epsilon}, g.Symbols(a))
}

func TestSetName_SortsMemberNames(t *testing.T) {
	g := New()
	z, _ := g.AddState("z", false)
	a, _ := g.AddState("a", true)
	m, _ := g.AddState("m", false)

	assert.Equal(t, "{a,m,z}", g.SetName(NewSet(m, z, a)))
	assert.True(t, g.AnyFinal(NewSet(z, a)))
	assert.False(t, g.AnyFinal(NewSet(z, m)))
}

func TestLookup(t *testing.T) {
	g := New()
	id, _ := g.AddState("e1", true)

	got, ok := g.Lookup("e1")
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = g.Lookup("missing")
	assert.False(t, ok)
}
