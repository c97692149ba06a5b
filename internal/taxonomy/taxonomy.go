package taxonomy

import (
	"regexp"
	"strings"
)

// BodyArea is the muscle-group category a move maps to, used for
// training-balance reporting.
type BodyArea string

const (
	BodyAreaChest     BodyArea = "chest"
	BodyAreaBack      BodyArea = "back"
	BodyAreaShoulders BodyArea = "shoulders"
	BodyAreaLegs      BodyArea = "legs"
	BodyAreaArms      BodyArea = "arms"
	BodyAreaCore      BodyArea = "core"
	BodyAreaFullBody  BodyArea = "full_body"
	BodyAreaCardio    BodyArea = "cardio"

	// BodyAreaUnmapped is the sentinel for moves not present in the taxonomy.
	BodyAreaUnmapped BodyArea = "unmapped"
)

func (ba BodyArea) String() string {
	return string(ba)
}

func (ba BodyArea) IsValid() bool {
	switch ba {
	case BodyAreaChest, BodyAreaBack, BodyAreaShoulders, BodyAreaLegs,
		BodyAreaArms, BodyAreaCore, BodyAreaFullBody, BodyAreaCardio,
		BodyAreaUnmapped:
		return true
	default:
		return false
	}
}

var (
	whitespaceRegex      = regexp.MustCompile(`\s+`)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeLabel lowercases the value and collapses inner whitespace,
// producing the display form of a move name.
func NormalizeLabel(value string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), " ")
}

// NormalizeKey lowercases the value and strips all non-alphanumeric
// characters, producing the canonical lookup key of a move name.
func NormalizeKey(value string) string {
	return nonAlphanumericRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "")
}

// Move is one taxonomy row: canonical key, display label and body area.
type Move struct {
	Key   string
	Label string
	Area  BodyArea
}

// Table is the in-memory move taxonomy, keyed by normalized move key.
// It is built once from the static seed and is immutable afterwards.
type Table struct {
	moves map[string]Move
}

// NewTable builds the taxonomy table from the static seed.
func NewTable() *Table {
	t := &Table{
		moves: make(map[string]Move, len(moveSeed)),
	}
	for _, seeded := range moveSeed {
		key := NormalizeKey(seeded.name)
		if key == "" {
			continue
		}
		t.moves[key] = Move{
			Key:   key,
			Label: NormalizeLabel(seeded.name),
			Area:  BodyArea(NormalizeLabel(string(seeded.area))),
		}
	}
	return t
}

// Moves returns all seeded moves in unspecified order.
func (t *Table) Moves() []Move {
	moves := make([]Move, 0, len(t.moves))
	for _, m := range t.moves {
		moves = append(moves, m)
	}
	return moves
}

// Lookup returns the body area for an exact normalized-key match of the
// given workout type, or BodyAreaUnmapped. No fuzzy matching.
func (t *Table) Lookup(workoutType string) BodyArea {
	key := NormalizeKey(workoutType)
	if key == "" {
		return BodyAreaUnmapped
	}
	if m, ok := t.moves[key]; ok {
		return m.Area
	}
	return BodyAreaUnmapped
}

// DisplayLabel returns the canonical display label for a move key, or the
// key itself when the move is not in the taxonomy.
func (t *Table) DisplayLabel(moveKey string) string {
	if m, ok := t.moves[moveKey]; ok {
		return m.Label
	}
	return moveKey
}
