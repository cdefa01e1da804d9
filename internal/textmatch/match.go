// Package textmatch provides case-insensitive whole-word phrase matching
// and token-set similarity over short clinical texts.
//
// All functions are pure and safe for concurrent use.
package textmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Occurs reports whether phrase appears in text as a whole word or phrase,
// ignoring case. A match never begins or ends inside a run of letters or
// digits, so "or" does not occur in "doctor".
func Occurs(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return find(strings.ToLower(text), strings.ToLower(phrase), 0) >= 0
}

// OccursAny reports whether phrase occurs in any of texts.
func OccursAny(phrase string, texts ...string) bool {
	for _, t := range texts {
		if Occurs(t, phrase) {
			return true
		}
	}
	return false
}

// AnyOccurs reports whether any of phrases occurs in text.
func AnyOccurs(text string, phrases []string) bool {
	_, ok := FirstMatch(phrases, text)
	return ok
}

// CountMatches maps each phrase present in text to 1. Absent phrases are
// omitted; the result is never nil.
func CountMatches(text string, phrases []string) map[string]int {
	out := make(map[string]int)
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if p == "" {
			continue
		}
		if find(lower, strings.ToLower(p), 0) >= 0 {
			out[p] = 1
		}
	}
	return out
}

// FirstMatch returns the first phrase, in slice order, that occurs in any
// of texts.
func FirstMatch(phrases []string, texts ...string) (string, bool) {
	lowered := lowerAll(texts)
	for _, p := range phrases {
		if p == "" {
			continue
		}
		lp := strings.ToLower(p)
		for _, t := range lowered {
			if find(t, lp, 0) >= 0 {
				return p, true
			}
		}
	}
	return "", false
}

// MatchAll returns every phrase, in slice order, that occurs in any of
// texts.
func MatchAll(phrases []string, texts ...string) []string {
	lowered := lowerAll(texts)
	var out []string
	for _, p := range phrases {
		if p == "" {
			continue
		}
		lp := strings.ToLower(p)
		for _, t := range lowered {
			if find(t, lp, 0) >= 0 {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Frequency counts non-overlapping whole-word occurrences of phrase in text.
func Frequency(text, phrase string) int {
	if phrase == "" {
		return 0
	}
	lower := strings.ToLower(text)
	lp := strings.ToLower(phrase)
	n := 0
	for from := 0; ; {
		i := find(lower, lp, from)
		if i < 0 {
			return n
		}
		n++
		from = i + len(lp)
	}
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// find returns the byte offset of the first boundary-delimited occurrence of
// phrase in text at or after from, or -1. Both arguments must already be
// lowercased.
func find(text, phrase string, from int) int {
	for from <= len(text)-len(phrase) {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return start
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return -1
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lowerAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = strings.ToLower(t)
	}
	return out
}
