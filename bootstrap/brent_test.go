package bootstrap

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrentFindsRoot(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 4 }
	root, err := brent(f, 0, 5, 1e-12, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-9)
}

func TestBrentTranscendental(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return math.Cos(x) - x }
	root, err := brent(f, 0, 1, 1e-12, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, root, 1e-9)
}

func TestBrentNoBracket(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x + 1 }
	_, err := brent(f, -1, 1, 1e-12, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoBracket))
}
