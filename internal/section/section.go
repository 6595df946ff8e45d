// Package section defines the test-section progression order and the single
// authoritative transition table. No other package encodes section ordering:
// HTTP guards, the session service, and scoring all consult this one.
package section

import "fmt"

// Section identifies one stage of a test session.
type Section string

const (
	Listening Section = "listening"
	Reading   Section = "reading"
	Writing   Section = "writing"
	Speaking  Section = "speaking"
	Completed Section = "completed"
)

// order is the fixed progression. A session only ever moves forward
// through this list.
var order = [...]Section{Listening, Reading, Writing, Speaking, Completed}

// All returns the answerable sections in progression order (Completed is a
// terminal marker, not a section a candidate sits).
func All() []Section {
	return []Section{Listening, Reading, Writing, Speaking}
}

// Parse converts a wire string into a Section.
func Parse(s string) (Section, error) {
	switch Section(s) {
	case Listening, Reading, Writing, Speaking, Completed:
		return Section(s), nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Index returns the position of s in the progression, or -1 if s is not a
// valid section.
func Index(s Section) int {
	for i, sec := range order {
		if sec == s {
			return i
		}
	}
	return -1
}

// Next returns the section that follows s. ok is false when s is Completed
// (terminal) or not a valid section.
func Next(s Section) (next Section, ok bool) {
	i := Index(s)
	if i < 0 || i == len(order)-1 {
		return "", false
	}
	return order[i+1], true
}

// Before reports whether a comes strictly before b in the progression.
func Before(a, b Section) bool {
	ia, ib := Index(a), Index(b)
	return ia >= 0 && ib >= 0 && ia < ib
}

// CanEnter reports whether a candidate whose session is at current may
// work on target. Only the current section is enterable; everything
// before has been sat already and everything after is not yet unlocked.
func CanEnter(target, current Section) bool {
	if target == Completed {
		return current == Completed
	}
	return target == current
}

// Answerable reports whether s is a section that accepts answer records.
func Answerable(s Section) bool {
	return s != Completed && Index(s) >= 0
}
