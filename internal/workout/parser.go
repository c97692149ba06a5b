package workout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/2beens/gymsupervisor/internal/taxonomy"
)

const (
	minReps   = 1
	maxReps   = 100
	maxWeight = 2000
)

var (
	// explicit set notation: "135x5", "135 x 5", "20lb x 8", "100@10"
	setPairRegex = regexp.MustCompile(`(?i)\b(\d{1,4}(?:\.\d+)?)\s*(?:lb)?\s*[x@]\s*(\d{1,3})\b`)
	// bare numbers for the fallback pairing
	numberRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// SetPair is one parsed set: reps performed at a given weight.
type SetPair struct {
	Reps   int
	Weight float64
}

// ParseEntry splits a free-text message into a move label and its set
// pairs. The label is everything before the first digit; the remainder
// is scanned for "weight x reps" notations, falling back to pairing bare
// numbers as (weight, reps) only when no explicit notation matched.
// Out-of-bounds pairs are dropped, never clamped. Input without a digit,
// or with nothing but separators before the first digit, yields an empty
// label and no pairs.
func ParseEntry(text string) (label string, pairs []SetPair) {
	digitAt := strings.IndexFunc(text, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if digitAt == -1 {
		return "", nil
	}

	label = normalizeRawLabel(text[:digitAt])
	if label == "" {
		return "", nil
	}
	numbersPart := text[digitAt:]

	explicit := setPairRegex.FindAllStringSubmatch(numbersPart, -1)
	for _, m := range explicit {
		weight, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		reps, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if pair, ok := boundedPair(reps, weight); ok {
			pairs = append(pairs, pair)
		}
	}
	// an explicit match claims the input even when every pair got
	// dropped by the bounds check
	if len(explicit) > 0 {
		return label, pairs
	}

	// no explicit notation: pair consecutive bare numbers as (weight, reps),
	// a trailing odd number is dropped
	numbers := numberRegex.FindAllString(numbersPart, -1)
	for i := 0; i+1 < len(numbers); i += 2 {
		weight, err := strconv.ParseFloat(numbers[i], 64)
		if err != nil {
			continue
		}
		reps, err := strconv.Atoi(strings.SplitN(numbers[i+1], ".", 2)[0])
		if err != nil {
			continue
		}
		if pair, ok := boundedPair(reps, weight); ok {
			pairs = append(pairs, pair)
		}
	}

	return label, pairs
}

func boundedPair(reps int, weight float64) (SetPair, bool) {
	if reps < minReps || reps > maxReps {
		return SetPair{}, false
	}
	if weight <= 0 || weight > maxWeight {
		return SetPair{}, false
	}
	return SetPair{Reps: reps, Weight: weight}, true
}

func normalizeRawLabel(raw string) string {
	return taxonomy.NormalizeLabel(strings.Trim(raw, " :-,"))
}
