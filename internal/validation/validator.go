package validation

import (
	"fmt"
	"quiz-forge/internal/domain"
	"unicode/utf8"
)

// Limits bounds what a single request may ask for.
type Limits struct {
	MaxTopN       int
	MaxTextLength int
	MaxBatchSize  int
}

// Validator provides request validation functionality
type Validator struct {
	limits Limits
}

// NewValidator creates a new validator instance
func NewValidator(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// ValidateTextRequest validates the text and keyword count of a generation or
// extraction request. Blank text is allowed here; callers decide how to treat it.
// A topN of zero means "use the default".
func (v *Validator) ValidateTextRequest(text string, topN int) domain.ValidationErrors {
	return v.validateText("", text, topN)
}

// ValidateBatchRequest validates every document of a batch request.
func (v *Validator) ValidateBatchRequest(texts []string, topNs []int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(texts) == 0 {
		errors = append(errors, domain.NewMissingFieldError("documents"))
		return errors
	}
	if v.limits.MaxBatchSize > 0 && len(texts) > v.limits.MaxBatchSize {
		errors = append(errors, domain.NewOutOfRangeError("documents", len(texts), 1, v.limits.MaxBatchSize))
		return errors
	}

	for i, text := range texts {
		topN := 0
		if i < len(topNs) {
			topN = topNs[i]
		}
		prefix := fmt.Sprintf("documents[%d].", i)
		errors = append(errors, v.validateText(prefix, text, topN)...)
	}

	return errors
}

func (v *Validator) validateText(prefix, text string, topN int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if v.limits.MaxTextLength > 0 {
		if n := utf8.RuneCountInString(text); n > v.limits.MaxTextLength {
			errors = append(errors, domain.NewOutOfRangeError(prefix+"text", n, 0, v.limits.MaxTextLength))
		}
	}

	if topN < 0 || (v.limits.MaxTopN > 0 && topN > v.limits.MaxTopN) {
		errors = append(errors, domain.NewOutOfRangeError(prefix+"top_n", topN, 1, v.limits.MaxTopN))
	}

	return errors
}
