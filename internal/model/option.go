package model

import (
	"fmt"
	"math"
	"strings"
)

// OptionKind is the contract type.
// Keep these values stable; they are intended for CSV/JSON output.
type OptionKind string

const (
	Call OptionKind = "CALL"
	Put  OptionKind = "PUT"
)

// ExerciseStyle determines when the holder may exercise.
type ExerciseStyle string

const (
	European ExerciseStyle = "EUROPEAN"
	American ExerciseStyle = "AMERICAN"
)

func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL", "C":
		return Call, nil
	case "PUT", "P":
		return Put, nil
	default:
		return "", fmt.Errorf("unknown option kind: %q", s)
	}
}

func ParseExerciseStyle(s string) (ExerciseStyle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EUROPEAN", "EURO", "E":
		return European, nil
	case "AMERICAN", "AMER", "A":
		return American, nil
	default:
		return "", fmt.Errorf("unknown exercise style: %q", s)
	}
}

// Payoff is the terminal payoff of the contract at stock price s.
// Total over all finite inputs; no error path.
func (k OptionKind) Payoff(s, strike float64) float64 {
	if k == Put {
		return math.Max(strike-s, 0)
	}
	return math.Max(s-strike, 0)
}
