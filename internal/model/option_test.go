package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionKind(t *testing.T) {
	for in, want := range map[string]OptionKind{
		"call": Call, "CALL": Call, " C ": Call,
		"put": Put, "Put": Put, "p": Put,
	} {
		got, err := ParseOptionKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOptionKind("butterfly")
	assert.Error(t, err)
}

func TestParseExerciseStyle(t *testing.T) {
	for in, want := range map[string]ExerciseStyle{
		"european": European, "EURO": European, "e": European,
		"american": American, "amer": American, "A": American,
	} {
		got, err := ParseExerciseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseExerciseStyle("bermudan")
	assert.Error(t, err)
}

func TestPayoff(t *testing.T) {
	assert.Equal(t, 10.0, Call.Payoff(110, 100))
	assert.Equal(t, 0.0, Call.Payoff(90, 100))
	assert.Equal(t, 0.0, Call.Payoff(100, 100))

	assert.Equal(t, 10.0, Put.Payoff(90, 100))
	assert.Equal(t, 0.0, Put.Payoff(110, 100))
	assert.Equal(t, 0.0, Put.Payoff(100, 100))
}
