package workout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	m.Run()
	goleak.VerifyTestMain(m)
}

func TestParseEntry_ExplicitNotation(t *testing.T) {
	label, pairs := ParseEntry("bench press 20x8, 30x8")
	assert.Equal(t, "bench press", label)
	require.Len(t, pairs, 2)
	assert.Equal(t, SetPair{Reps: 8, Weight: 20}, pairs[0])
	assert.Equal(t, SetPair{Reps: 8, Weight: 30}, pairs[1])
}

func TestParseEntry_LbSuffixAndSpacing(t *testing.T) {
	label, pairs := ParseEntry("squat 135lb x5, 155 x 5")
	assert.Equal(t, "squat", label)
	require.Len(t, pairs, 2)
	assert.Equal(t, SetPair{Reps: 5, Weight: 135}, pairs[0])
	assert.Equal(t, SetPair{Reps: 5, Weight: 155}, pairs[1])
}

func TestParseEntry_AtNotation(t *testing.T) {
	label, pairs := ParseEntry("Deadlift 225@3")
	assert.Equal(t, "deadlift", label)
	require.Len(t, pairs, 1)
	assert.Equal(t, SetPair{Reps: 3, Weight: 225}, pairs[0])
}

func TestParseEntry_BareNumberFallback(t *testing.T) {
	label, pairs := ParseEntry("lat pulldown 20 8, 30 8")
	assert.Equal(t, "lat pulldown", label)
	require.Len(t, pairs, 2)
	assert.Equal(t, SetPair{Reps: 8, Weight: 20}, pairs[0])
	assert.Equal(t, SetPair{Reps: 8, Weight: 30}, pairs[1])
}

func TestParseEntry_FallbackDropsTrailingOddNumber(t *testing.T) {
	label, pairs := ParseEntry("leg press 100 10 120")
	assert.Equal(t, "leg press", label)
	require.Len(t, pairs, 1)
	assert.Equal(t, SetPair{Reps: 10, Weight: 100}, pairs[0])
}

func TestParseEntry_LabelSeparatorsTrimmed(t *testing.T) {
	for _, text := range []string{
		"Bench Press: 100x5",
		"bench press - 100x5",
		"bench  press , 100x5",
	} {
		label, pairs := ParseEntry(text)
		assert.Equal(t, "bench press", label, "input %q", text)
		require.Len(t, pairs, 1, "input %q", text)
		assert.Equal(t, SetPair{Reps: 5, Weight: 100}, pairs[0], "input %q", text)
	}
}

func TestParseEntry_DecimalWeight(t *testing.T) {
	label, pairs := ParseEntry("overhead press 22.5x10")
	assert.Equal(t, "overhead press", label)
	require.Len(t, pairs, 1)
	assert.Equal(t, SetPair{Reps: 10, Weight: 22.5}, pairs[0])
}

func TestParseEntry_BoundsDropNeverClamp(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"zero reps", "bench press 100x0"},
		{"too many reps", "bench press 100x101"},
		{"too heavy explicit", "leg press 2001x5"},
		{"too heavy fallback", "leg press 2000.5 5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, pairs := ParseEntry(c.text)
			assert.Empty(t, pairs)
		})
	}

	// boundary values survive
	_, pairs := ParseEntry("leg press 2000x100")
	require.Len(t, pairs, 1)
	assert.Equal(t, SetPair{Reps: 100, Weight: 2000}, pairs[0])
}

func TestParseEntry_OutOfBoundsPairDroppedOthersKept(t *testing.T) {
	label, pairs := ParseEntry("bench press 100x5, 100x0, 110x5")
	assert.Equal(t, "bench press", label)
	require.Len(t, pairs, 2)
	assert.Equal(t, SetPair{Reps: 5, Weight: 100}, pairs[0])
	assert.Equal(t, SetPair{Reps: 5, Weight: 110}, pairs[1])
}

func TestParseEntry_NoDigits(t *testing.T) {
	label, pairs := ParseEntry("just vibes today")
	assert.Empty(t, label)
	assert.Empty(t, pairs)

	gofakeit.Seed(100)
	for i := 0; i < 50; i++ {
		text := fmt.Sprintf("%s %s", gofakeit.Word(), gofakeit.Word())
		if strings.ContainsAny(text, "0123456789") {
			continue
		}
		label, pairs := ParseEntry(text)
		assert.Empty(t, label, "input %q", text)
		assert.Empty(t, pairs, "input %q", text)
	}
}

func TestParseEntry_EmptyAndWhitespace(t *testing.T) {
	for _, text := range []string{"", "   ", " : - , "} {
		label, pairs := ParseEntry(text)
		assert.Empty(t, label, "input %q", text)
		assert.Empty(t, pairs, "input %q", text)
	}
}

func TestParseEntry_DigitFirst(t *testing.T) {
	// sets without a move name are rejected wholesale
	for _, text := range []string{"100x5, 110x5", " - 100x5", ", : 20 8"} {
		label, pairs := ParseEntry(text)
		assert.Empty(t, label, "input %q", text)
		assert.Empty(t, pairs, "input %q", text)
	}
}

func TestParseEntry_ExplicitMatchSuppressesFallback(t *testing.T) {
	// once the explicit notation matches, bare numbers are never paired,
	// even when every explicit pair falls outside the bounds
	label, pairs := ParseEntry("bench press 5000x5, 100 8")
	assert.Equal(t, "bench press", label)
	assert.Empty(t, pairs)

	// in-bounds explicit pair alongside bare numbers: only the explicit
	// pair survives
	label, pairs = ParseEntry("bench press 100x5, 30 8")
	assert.Equal(t, "bench press", label)
	require.Len(t, pairs, 1)
	assert.Equal(t, SetPair{Reps: 5, Weight: 100}, pairs[0])
}
