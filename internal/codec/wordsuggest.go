package codec

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxTypoDistance is the maximum Levenshtein distance to consider a
// suggestion plausible; words farther than this are treated as unrelated.
const MaxTypoDistance = 2

var (
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	numberedListRegex = regexp.MustCompile(`(?m)^\s*\d+[.):]\s*`)
	bulletListRegex   = regexp.MustCompile(`(?m)^\s*[-*•]\s*`)
)

// TypoInfo describes one word in user-supplied mnemonic input that isn't in
// the dictionary, plus the closest dictionary word if one is close enough.
type TypoInfo struct {
	Index      int
	Word       string
	Suggestion string
	Distance   int
}

// NormalizeMnemonicInput strips list formatting a user might paste a
// mnemonic in with (numbered lists, bullets, commas) before word-splitting.
func NormalizeMnemonicInput(input string) string {
	input = strings.ToLower(input)
	input = numberedListRegex.ReplaceAllString(input, " ")
	input = bulletListRegex.ReplaceAllString(input, " ")
	input = strings.ReplaceAll(input, ",", " ")
	input = whitespaceRegex.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// IsValidWord reports whether word (case-insensitive) is in the dictionary.
func IsValidWord(word string) bool {
	_, ok := wordIndex[strings.ToLower(word)]
	return ok
}

// SuggestWord finds the closest dictionary word to input by Levenshtein
// distance, or "" if nothing is within MaxTypoDistance.
func SuggestWord(input string) string {
	input = strings.ToLower(input)

	minDist := math.MaxInt
	var suggestion string
	for _, word := range wordList {
		dist := levenshtein.ComputeDistance(input, word)
		if dist == 0 {
			return word
		}
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
	}
	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

// DetectTypos scans normalized mnemonic-style input for words absent from
// the dictionary and suggests the closest match for each.
func DetectTypos(input string) []TypoInfo {
	if input == "" {
		return nil
	}

	words := strings.Fields(NormalizeMnemonicInput(input))
	var typos []TypoInfo
	for i, word := range words {
		if IsValidWord(word) {
			continue
		}
		suggestion := SuggestWord(word)
		distance := 0
		if suggestion != "" {
			distance = levenshtein.ComputeDistance(word, suggestion)
		}
		typos = append(typos, TypoInfo{Index: i, Word: word, Suggestion: suggestion, Distance: distance})
	}
	return typos
}

// FormatTypoSuggestions renders DetectTypos output as human-readable lines.
func FormatTypoSuggestions(typos []TypoInfo) string {
	if len(typos) == 0 {
		return ""
	}

	var b strings.Builder
	for i, typo := range typos {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("Word ")
		b.WriteString(strconv.Itoa(typo.Index + 1))
		b.WriteString(": '")
		b.WriteString(typo.Word)
		b.WriteByte('\'')
		if typo.Suggestion != "" {
			b.WriteString(" - did you mean '")
			b.WriteString(typo.Suggestion)
			b.WriteString("'?")
		} else {
			b.WriteString(" is not a recognized word")
		}
	}
	return b.String()
}
