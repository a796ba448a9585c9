package domain

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultTopN is the number of keywords extracted when the caller does not ask for a count.
	DefaultTopN = 5

	// MinKeywordLength is the shortest alphabetic run that counts as a keyword.
	MinKeywordLength = 5
)

var keywordPattern = regexp.MustCompile(`[A-Za-z]{5,}`)

type keywordCount struct {
	word  string
	count int
}

// ExtractKeywords returns up to topN of the most frequent lowercase alphabetic
// tokens of at least MinKeywordLength letters. Ties keep first-occurrence order.
// A topN of zero or less returns no keywords.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	words := keywordPattern.FindAllString(strings.ToLower(text), -1)

	index := make(map[string]int, len(words))
	counts := make([]keywordCount, 0, len(words))
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, keywordCount{word: w, count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	if len(counts) > topN {
		counts = counts[:topN]
	}

	keywords := make([]string, 0, len(counts))
	for _, c := range counts {
		keywords = append(keywords, c.word)
	}
	return keywords
}
