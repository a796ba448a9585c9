package render

import (
	"fmt"
	"io"

	"quiz-forge/internal/dto"
)

const divider = "---"

// Text writes a generation result as plain text: the warning alone for skipped
// input, otherwise numbered assignment questions followed by numbered
// multiple-choice items with their options and answer.
func Text(w io.Writer, resp *dto.GenerateResponse) error {
	ew := &errWriter{w: w}

	if resp.Skipped() {
		ew.printf("Warning: %s\n", resp.Warning)
		return ew.err
	}

	ew.printf("Assignment Questions\n")
	for i, q := range resp.Assignments {
		ew.printf("%d. %s\n", i+1, q)
	}

	ew.printf("\nMultiple-Choice Quiz Questions\n")
	for i, item := range resp.MCQs {
		ew.printf("%d. %s\n", i+1, item.Question)
		for _, opt := range item.Options {
			ew.printf("- %s\n", opt)
		}
		ew.printf("Answer: %s\n", item.Answer)
		ew.printf("%s\n", divider)
	}

	return ew.err
}

// Keywords writes one keyword per line.
func Keywords(w io.Writer, keywords []string) error {
	ew := &errWriter{w: w}
	for _, kw := range keywords {
		ew.printf("%s\n", kw)
	}
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
