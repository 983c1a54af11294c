// Package domain computes numerological advice for Thai licence plates,
// calendar dates and weekdays.
//
// # Plate Format
//
// A Thai plate is read as two groups:
//
//	"<lead><consonants>" "<digits>"  →  e.g. "กข" "1234"
//
// The first group holds at most three characters. Its lead character may be
// an ASCII digit or a Thai consonant (ก U+0E01 through ฮ U+0E2E); every
// following character must be a consonant. The second group is one to four
// ASCII digits.
//
// # Character Values
//
// Every consonant maps to a value 1–9 through the reference character table.
// Digits resolve to their face value unless the table carries an entry for
// them, in which case the table entry wins.
//
// # Sums
//
// Two reductions are used and they are deliberately kept apart:
//
//	Lucky bucket:  n mod 9, with 0 remapped to 9. Selects a lucky point.
//	Display sum:   one pass of decimal digit summing when n > 9 (28 → 10).
//
// They agree on the bucket but not on the shown value once the digit pass
// yields another two-digit number. See [LuckyBucket] and [DisplaySum].
//
// # Plate Advice
//
//	first sum   = Σ value(first group)
//	second raw  = Σ value(second group)
//	lucky point = bucket(second raw)
//	total       = first sum + second raw  →  lucky point group (may be absent)
//
// # Weekday Advice
//
// Advice is keyed by weekday 0 (Sunday) through 6 (Saturday) plus 7 for
// Wednesday night, which Thai tradition treats as a separate birth day. A
// calendar date can only ever resolve to 0–6.
package domain
