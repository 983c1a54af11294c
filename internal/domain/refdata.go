package domain

import (
	"errors"
	"fmt"
)

// ReferenceData holds the four static tables the calculations resolve
// against. Build it once at startup and treat it as read-only; every method
// is safe for concurrent use.
type ReferenceData struct {
	CharValues       map[rune]int
	LuckyPoints      []LuckyPoint
	LuckyPointGroups []LuckyPointGroup
	Advice           []LuckyNumberAdvice
}

// Validate checks the invariants the calculations rely on: character values
// within 1–9 and lucky points keyed 1–9.
func (r *ReferenceData) Validate() error {
	if r == nil {
		return errors.New("reference data is nil")
	}
	if len(r.CharValues) == 0 {
		return errors.New("character table is empty")
	}
	for ch, v := range r.CharValues {
		if v < 1 || v > 9 {
			return fmt.Errorf("character %q: value %d out of range 1-9", ch, v)
		}
	}
	for _, lp := range r.LuckyPoints {
		if lp.Point < 1 || lp.Point > 9 {
			return fmt.Errorf("lucky point %d out of range 1-9", lp.Point)
		}
	}
	for _, a := range r.Advice {
		if !a.Day.Valid() {
			return fmt.Errorf("advice day %d out of range 0-7", a.Day)
		}
	}
	return nil
}

// ValueOf resolves a single character to its numeric value. A table entry
// takes precedence over the digit fallback, under which '0' resolves to 0.
func (r *ReferenceData) ValueOf(ch rune) (int, error) {
	if v, ok := r.CharValues[ch]; ok {
		return v, nil
	}
	if IsDigit(ch) {
		return int(ch - '0'), nil
	}
	return 0, newError(KindInvalidCharacter, "invalid Thai character: %q", ch)
}
