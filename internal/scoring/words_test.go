package scoring

import (
	"errors"
	"strings"
	"testing"
)

func essay(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestCheckWordCount_Task1Short(t *testing.T) {
	err := CheckWordCount(1, essay(140))
	if err == nil {
		t.Fatal("expected error for 140-word task 1 essay")
	}
	var short *ErrTooShort
	if !errors.As(err, &short) {
		t.Fatalf("expected *ErrTooShort, got %T", err)
	}
	if short.Min-short.Words != 10 {
		t.Errorf("shortfall = %d, want 10", short.Min-short.Words)
	}
	if err.Error() != "10 more words needed" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCheckWordCount_AtMinimum(t *testing.T) {
	if err := CheckWordCount(1, essay(150)); err != nil {
		t.Errorf("150 words on task 1 should pass: %v", err)
	}
	if err := CheckWordCount(2, essay(250)); err != nil {
		t.Errorf("250 words on task 2 should pass: %v", err)
	}
}

func TestCheckWordCount_Task2Short(t *testing.T) {
	err := CheckWordCount(2, essay(249))
	if err == nil {
		t.Fatal("expected error for 249-word task 2 essay")
	}
	if err.Error() != "1 more words needed" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one  two\nthree\tfour", 4},
	}
	for _, c := range cases {
		if got := WordCount(c.in); got != c.want {
			t.Errorf("WordCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
