package domain

import (
	"regexp"
	"unicode/utf8"
)

const (
	thaiConsonantFirst = 'ก' // U+0E01
	thaiConsonantLast  = 'ฮ' // U+0E2E

	maxFirstPartLen = 3
)

// secondPartRe accepts one to four ASCII digits and nothing else.
var secondPartRe = regexp.MustCompile(`^[0-9]{1,4}$`)

// IsThaiConsonant reports whether ch lies in the Thai consonant block ก–ฮ.
func IsThaiConsonant(ch rune) bool {
	return ch >= thaiConsonantFirst && ch <= thaiConsonantLast
}

// IsDigit reports whether ch is an ASCII digit.
func IsDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// IsValidFirstPartLeadChar reports whether ch may open the first plate group.
func IsValidFirstPartLeadChar(ch rune) bool {
	return IsDigit(ch) || IsThaiConsonant(ch)
}

// ValidateFirstPart checks the character group of a plate. Digits are only
// allowed in the lead position. An empty group fails the lead check.
func ValidateFirstPart(s string) error {
	if utf8.RuneCountInString(s) > maxFirstPartLen {
		return ErrTooLong
	}

	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !IsValidFirstPartLeadChar(first) {
		return ErrInvalidLeadCharacter
	}

	for _, ch := range s[size:] {
		if !IsThaiConsonant(ch) {
			return ErrInvalidCharacter
		}
	}
	return nil
}

// ValidateSecondPart checks the digit group of a plate.
func ValidateSecondPart(s string) error {
	if !secondPartRe.MatchString(s) {
		return ErrInvalidSecondPart
	}
	return nil
}
