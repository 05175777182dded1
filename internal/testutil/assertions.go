package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Verdict decides acceptance of one input.
type Verdict func(input string) (bool, error)

// RequireSameVerdicts fails the test at the first input on which want and
// got disagree, or on which either returns an error.
func RequireSameVerdicts(t *testing.T, inputs []string, want, got Verdict) {
	t.Helper()

	for _, input := range inputs {
		w, err := want(input)
		require.NoError(t, err, "reference verdict for %q", input)
		g, err := got(input)
		require.NoError(t, err, "verdict for %q", input)
		require.Equal(t, w, g, "verdicts differ on input %q", input)
	}
}
