// Package draft accumulates workout set entries across multiple messages
// before they are persisted as one workout. Drafts live in memory only;
// a restart discards them.
package draft

import (
	"errors"
	"sync"

	"github.com/2beens/gymsupervisor/internal/workout"
)

var (
	ErrNoActiveDraft = errors.New("no active draft")
	ErrNoSetsParsed  = errors.New("no sets parsed from message")
)

// Batch is one parsed message within a draft: the raw text it came from,
// the move label and the sets it contributed.
type Batch struct {
	Text        string
	WorkoutType string
	Pairs       []workout.SetPair
}

type draft struct {
	batches []Batch
}

// Manager tracks at most one draft per chat. All methods are safe for
// concurrent use.
type Manager struct {
	mu     sync.Mutex
	drafts map[int64]*draft
}

func NewManager() *Manager {
	return &Manager{
		drafts: make(map[int64]*draft),
	}
}

// Start opens a fresh draft for the chat, discarding any existing one.
func (m *Manager) Start(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[chatID] = &draft{}
}

// Active reports whether the chat has an open draft.
func (m *Manager) Active(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.drafts[chatID]
	return ok
}

// Append parses the message and adds its sets to the chat's draft. It
// returns the parsed move label, the number of sets the message added
// and the draft's new total set count. The message is not added when
// nothing parseable is in it.
func (m *Manager) Append(chatID int64, text string) (label string, added, total int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[chatID]
	if !ok {
		return "", 0, 0, ErrNoActiveDraft
	}

	label, pairs := workout.ParseEntry(text)
	if label == "" || len(pairs) == 0 {
		return label, 0, d.setCount(), ErrNoSetsParsed
	}

	d.batches = append(d.batches, Batch{
		Text:        text,
		WorkoutType: label,
		Pairs:       pairs,
	})
	return label, len(pairs), d.setCount(), nil
}

// Undo removes the last appended batch and returns it.
func (m *Manager) Undo(chatID int64) (*Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[chatID]
	if !ok {
		return nil, ErrNoActiveDraft
	}
	if len(d.batches) == 0 {
		return nil, ErrNoSetsParsed
	}

	last := d.batches[len(d.batches)-1]
	d.batches = d.batches[:len(d.batches)-1]
	return &last, nil
}

// Cancel drops the chat's draft.
func (m *Manager) Cancel(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, chatID)
}

// Entries flattens the draft into loggable entries plus the combined
// note built from the raw messages. The draft stays open; the caller
// clears it with Cancel once the entries are persisted.
func (m *Manager) Entries(chatID int64) (entries []workout.LogEntry, note string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[chatID]
	if !ok {
		return nil, "", ErrNoActiveDraft
	}

	texts := make([]string, 0, len(d.batches))
	for _, b := range d.batches {
		texts = append(texts, b.Text)
		for _, p := range b.Pairs {
			entries = append(entries, workout.LogEntry{
				WorkoutType: b.WorkoutType,
				Reps:        p.Reps,
				Weight:      p.Weight,
			})
		}
	}
	return entries, workout.JoinNote(texts), nil
}

// SetCount returns the draft's total number of sets, zero when no draft
// is open.
func (m *Manager) SetCount(chatID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[chatID]
	if !ok {
		return 0
	}
	return d.setCount()
}

func (d *draft) setCount() int {
	count := 0
	for _, b := range d.batches {
		count += len(b.Pairs)
	}
	return count
}
