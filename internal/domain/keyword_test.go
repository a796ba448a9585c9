package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		topN     int
		expected []string
	}{
		{
			name:     "frequency first, ties by first occurrence",
			text:     "Communication communication COMMUNICATION system analysis",
			topN:     DefaultTopN,
			expected: []string{"communication", "system", "analysis"},
		},
		{
			name:     "short words only",
			text:     "cat dog run",
			topN:     DefaultTopN,
			expected: []string{},
		},
		{
			name:     "empty text",
			text:     "",
			topN:     DefaultTopN,
			expected: []string{},
		},
		{
			name:     "digits and punctuation split tokens",
			text:     "net2work networks! 12345 mod-el, alpha_bravo",
			topN:     DefaultTopN,
			expected: []string{"networks", "alpha", "bravo"},
		},
		{
			name:     "long runs inside words still count",
			text:     "x1abcdef2y",
			topN:     DefaultTopN,
			expected: []string{"abcdef"},
		},
		{
			name:     "truncates to topN",
			text:     "alpha alpha alpha bravo bravo charlie delta",
			topN:     2,
			expected: []string{"alpha", "bravo"},
		},
		{
			name:     "higher count overtakes earlier word",
			text:     "first second second third third third",
			topN:     DefaultTopN,
			expected: []string{"third", "second", "first"},
		},
		{
			name:     "non-positive topN",
			text:     "alpha bravo",
			topN:     0,
			expected: []string{},
		},
		{
			name:     "non-ASCII letters are separators",
			text:     "café naïveté résumé stories",
			topN:     DefaultTopN,
			expected: []string{"stories"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.text, tt.topN))
		})
	}
}

func TestExtractKeywords_Properties(t *testing.T) {
	texts := []string{
		"The quick brown foxes jumped over lazy doggies while other foxes watched the doggies",
		"Distributed systems coordinate; systems fail; coordinate again and again",
		"aaaaa bbbbb aaaaa ccccc bbbbb aaaaa ddddd eeeee fffff ggggg",
	}

	for _, text := range texts {
		for _, topN := range []int{1, 3, 5, 10} {
			keywords := ExtractKeywords(text, topN)

			assert.LessOrEqual(t, len(keywords), topN)

			seen := make(map[string]bool)
			for _, kw := range keywords {
				assert.False(t, seen[kw], "duplicate keyword %q", kw)
				seen[kw] = true
				assert.GreaterOrEqual(t, len(kw), MinKeywordLength)
				assert.Regexp(t, `^[a-z]+$`, kw)
			}

			counts := countOccurrences(text)
			for i := 1; i < len(keywords); i++ {
				assert.GreaterOrEqual(t, counts[keywords[i-1]], counts[keywords[i]])
			}
		}
	}
}

func countOccurrences(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range keywordPattern.FindAllString(strings.ToLower(text), -1) {
		counts[w]++
	}
	return counts
}
