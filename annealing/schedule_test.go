package annealing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantTemperatureIsFixed(t *testing.T) {
	c := NewConstant(2.5)
	require.InDelta(t, 2.5, c.Temperature(0), 1e-12)
	require.InDelta(t, 2.5, c.Temperature(1000), 1e-12)
}

func TestLinearInterpolatesAcrossRange(t *testing.T) {
	l, err := NewLinear(10, 0, 100)
	require.NoError(t, err)
	require.InDelta(t, 10, l.Temperature(0), 1e-9)
	require.InDelta(t, 5, l.Temperature(50), 1e-9)
	require.InDelta(t, 0, l.Temperature(100), 1e-9)
	require.InDelta(t, 0, l.Temperature(150), 1e-9)
}

func TestLinearRejectsNonPositiveFinalStepOnSet(t *testing.T) {
	l, err := NewLinear(10, 0, 0)
	require.NoError(t, err)
	require.ErrorIs(t, l.SetFinalStep(0), ErrInvalidFinalStep)
	require.NoError(t, l.SetFinalStep(10))
	require.InDelta(t, 5, l.Temperature(5), 1e-9)
}
