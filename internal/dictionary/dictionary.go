// Package dictionary holds the in-memory word store the game draws from.
package dictionary

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"hangman/internal/types"
)

// DefaultCapacity is the maximum number of entries a dictionary holds unless
// told otherwise.
const DefaultCapacity = 1000

// MaskPlaceholder marks an unrevealed letter; stored words may not contain it.
const MaskPlaceholder = '_'

// Dictionary is an ordered, bounded collection of unique words.
// It is not safe for concurrent use.
type Dictionary struct {
	entries  []types.WordEntry
	capacity int
	rng      *rand.Rand
}

// New returns an empty dictionary. A capacity <= 0 falls back to
// DefaultCapacity and a nil rng is replaced with one seeded from the runtime.
func New(capacity int, rng *rand.Rand) *Dictionary {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Dictionary{
		entries:  make([]types.WordEntry, 0, min(capacity, 64)),
		capacity: capacity,
		rng:      rng,
	}
}

func (d *Dictionary) Len() int      { return len(d.entries) }
func (d *Dictionary) Capacity() int { return d.capacity }
func (d *Dictionary) Full() bool    { return len(d.entries) >= d.capacity }

// Entries returns a copy of the entries in insertion order.
func (d *Dictionary) Entries() []types.WordEntry {
	return slices.Clone(d.entries)
}

// Index returns the position of word, or -1.
func (d *Dictionary) Index(word string) int {
	_, idx, ok := lo.FindIndexOf(d.entries, func(e types.WordEntry) bool {
		return e.Word == word
	})
	if !ok {
		return -1
	}
	return idx
}

// Lookup finds the entry for word using an exact, case-sensitive match.
func (d *Dictionary) Lookup(word string) (types.WordEntry, bool) {
	return lo.Find(d.entries, func(e types.WordEntry) bool {
		return e.Word == word
	})
}

func (d *Dictionary) Definition(word string) (string, bool) {
	e, ok := d.Lookup(word)
	return e.Definition, ok
}

func (d *Dictionary) PartOfSpeech(word string) (string, bool) {
	e, ok := d.Lookup(word)
	return e.PartOfSpeech, ok
}

// CountWithPrefix counts words starting with prefix. The empty prefix matches
// every entry.
func (d *Dictionary) CountWithPrefix(prefix string) int {
	return lo.CountBy(d.entries, func(e types.WordEntry) bool {
		return strings.HasPrefix(e.Word, prefix)
	})
}

// Add appends a new entry. It fails when the dictionary is full, the word is
// already present or the word is not a single token.
func (d *Dictionary) Add(word, definition, pos string) error {
	if err := validateWord(word); err != nil {
		return err
	}
	if d.Full() {
		return fmt.Errorf("add %q: %w (capacity %d)", word, ErrCapacityExceeded, d.capacity)
	}
	if d.Index(word) >= 0 {
		return fmt.Errorf("add %q: %w", word, ErrDuplicateWord)
	}
	d.entries = append(d.entries, types.WordEntry{
		Word:         word,
		PartOfSpeech: pos,
		Definition:   definition,
	})
	return nil
}

// Edit replaces the definition and part of speech of an existing word in place.
func (d *Dictionary) Edit(word, definition, pos string) error {
	idx := d.Index(word)
	if idx < 0 {
		return fmt.Errorf("edit %q: %w", word, ErrNotFound)
	}
	d.entries[idx].Definition = definition
	d.entries[idx].PartOfSpeech = pos
	return nil
}

// Remove deletes word, shifting later entries one position earlier.
func (d *Dictionary) Remove(word string) error {
	idx := d.Index(word)
	if idx < 0 {
		return fmt.Errorf("remove %q: %w", word, ErrNotFound)
	}
	d.entries = slices.Delete(d.entries, idx, idx+1)
	return nil
}

// RandomWord picks an entry uniformly at random.
func (d *Dictionary) RandomWord() (types.WordEntry, error) {
	if len(d.entries) == 0 {
		return types.WordEntry{}, ErrEmptyDictionary
	}
	return d.entries[d.rng.IntN(len(d.entries))], nil
}

func validateWord(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	if strings.ContainsFunc(word, unicode.IsSpace) {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidWord, word)
	}
	if strings.ContainsRune(word, MaskPlaceholder) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidWord, word, MaskPlaceholder)
	}
	return nil
}
