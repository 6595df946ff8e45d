package scoring

import (
	"fmt"
	"strings"
)

// Minimum word counts per writing task.
const (
	Task1MinWords = 150
	Task2MinWords = 250
)

// MinWords returns the minimum word count for a writing task number.
// Unknown task numbers fall back to the task 2 minimum.
func MinWords(taskNumber int) int {
	if taskNumber == 1 {
		return Task1MinWords
	}
	return Task2MinWords
}

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ErrTooShort reports a writing submission below the task minimum.
// Submission is blocked before any evaluation request is made.
type ErrTooShort struct {
	TaskNumber int
	Words      int
	Min        int
}

func (e *ErrTooShort) Error() string {
	return fmt.Sprintf("%d more words needed", e.Min-e.Words)
}

// CheckWordCount validates the essay length for the given task. Returns
// *ErrTooShort when the text is under the minimum.
func CheckWordCount(taskNumber int, text string) error {
	words := WordCount(text)
	min := MinWords(taskNumber)
	if words < min {
		return &ErrTooShort{TaskNumber: taskNumber, Words: words, Min: min}
	}
	return nil
}
