package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// FallbackKeyword stands in for keywords when none could be extracted.
	FallbackKeyword = "topic"

	// AssignmentCount and MCQCount are the fixed sizes of a generation result.
	AssignmentCount = 2
	MCQCount        = 3

	distractorsPerQuestion = 3

	assignmentTemplateSignificance = "Explain the significance of %s in the context of the provided topic."
	assignmentTemplateInfluence    = "Discuss how %s influences the broader themes presented in the text."
	mcqQuestionTemplate            = "What is a key concept mentioned in the text related to '%s'?"

	FillerQuestion = "Which of the following best relates to the topic discussed?"
	FillerAnswer   = "Concept A"
)

// FillerOptions are the options of the placeholder question used when fewer
// than MCQCount keywords are available.
var FillerOptions = []string{"Concept A", "Concept B", "Concept C", "Concept D"}

// DistractorPool holds the generic incorrect options sampled for every question.
var DistractorPool = []string{"communication", "analysis", "structure", "model", "system", "framework"}

// MCQItem is a single multiple-choice question.
type MCQItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// NewFillerMCQ returns the fixed placeholder question.
func NewFillerMCQ() MCQItem {
	options := make([]string, len(FillerOptions))
	copy(options, FillerOptions)
	return MCQItem{
		Question: FillerQuestion,
		Options:  options,
		Answer:   FillerAnswer,
	}
}

// IsFiller reports whether the item is the fixed placeholder question.
func (m MCQItem) IsFiller() bool {
	if m.Question != FillerQuestion || m.Answer != FillerAnswer || len(m.Options) != len(FillerOptions) {
		return false
	}
	for i, o := range m.Options {
		if o != FillerOptions[i] {
			return false
		}
	}
	return true
}

// GenerateAssignmentQuestions fills the two essay templates. The second one
// uses the second keyword when there is one and falls back to the first.
func GenerateAssignmentQuestions(keywords []string) []string {
	if len(keywords) == 0 {
		keywords = []string{FallbackKeyword}
	}

	second := keywords[0]
	if len(keywords) > 1 {
		second = keywords[1]
	}

	return []string{
		fmt.Sprintf(assignmentTemplateSignificance, keywords[0]),
		fmt.Sprintf(assignmentTemplateInfluence, second),
	}
}

// GenerateMCQs builds exactly MCQCount questions from the leading keywords,
// padding with the filler question when there are not enough of them.
func GenerateMCQs(rng Randomizer, keywords []string) []MCQItem {
	if len(keywords) == 0 {
		keywords = []string{FallbackKeyword}
	}

	pool := make([]string, len(DistractorPool))
	copy(pool, DistractorPool)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	mcqs := make([]MCQItem, 0, MCQCount)
	for _, kw := range keywords[:min(MCQCount, len(keywords))] {
		correct := Capitalize(kw)

		options := sampleDistractors(rng, pool, distractorsPerQuestion)
		options = append(options, correct)
		rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

		mcqs = append(mcqs, MCQItem{
			Question: fmt.Sprintf(mcqQuestionTemplate, kw),
			Options:  options,
			Answer:   correct,
		})
	}

	for len(mcqs) < MCQCount {
		mcqs = append(mcqs, NewFillerMCQ())
	}
	return mcqs[:MCQCount]
}

// sampleDistractors draws k entries from pool without replacement.
func sampleDistractors(rng Randomizer, pool []string, k int) []string {
	picked := make([]string, 0, k+1)
	for _, i := range rng.Perm(len(pool))[:k] {
		picked = append(picked, pool[i])
	}
	return picked
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
