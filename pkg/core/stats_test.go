package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	mean, err := Mean([]float64{1, 0, 0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.5, mean, 1e-12)
}

func TestMeanEmpty(t *testing.T) {
	_, err := Mean(nil)
	require.ErrorIs(t, err, ErrEmptySet)
}

func TestStdPopulation(t *testing.T) {
	std, err := Std([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	require.InDelta(t, 2.0, std, 1e-12)
}

func TestStdConstant(t *testing.T) {
	std, err := Std([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, std)
}

func TestStdEmpty(t *testing.T) {
	_, err := Std(nil)
	require.ErrorIs(t, err, ErrEmptySet)
}

func TestRound4(t *testing.T) {
	require.Equal(t, 0.6667, Round4(2.0/3.0))
	require.Equal(t, 0.1234, Round4(0.12344))
	require.Equal(t, 1.0, Round4(1.0))
}

func TestRound4Idempotent(t *testing.T) {
	rounded := Round4(0.123456789)
	require.Equal(t, rounded, Round4(rounded))
}
