package section

import "testing"

func TestNext_Order(t *testing.T) {
	steps := []struct {
		from Section
		to   Section
	}{
		{Listening, Reading},
		{Reading, Writing},
		{Writing, Speaking},
		{Speaking, Completed},
	}
	for _, s := range steps {
		next, ok := Next(s.from)
		if !ok {
			t.Fatalf("Next(%s): not ok", s.from)
		}
		if next != s.to {
			t.Errorf("Next(%s) = %s, want %s", s.from, next, s.to)
		}
	}
}

func TestNext_Terminal(t *testing.T) {
	if _, ok := Next(Completed); ok {
		t.Error("Next(Completed) should not advance")
	}
	if _, ok := Next(Section("bogus")); ok {
		t.Error("Next of invalid section should not advance")
	}
}

func TestNext_NeverRegresses(t *testing.T) {
	// Walking Next from listening must visit each section exactly once
	// with strictly increasing indexes.
	cur := Listening
	seen := map[Section]bool{cur: true}
	for {
		next, ok := Next(cur)
		if !ok {
			break
		}
		if !Before(cur, next) {
			t.Fatalf("Next(%s) = %s does not move forward", cur, next)
		}
		if seen[next] {
			t.Fatalf("section %s visited twice", next)
		}
		seen[next] = true
		cur = next
	}
	if cur != Completed {
		t.Errorf("progression ended at %s, want completed", cur)
	}
}

func TestCanEnter(t *testing.T) {
	cases := []struct {
		target  Section
		current Section
		want    bool
	}{
		{Listening, Listening, true},
		{Reading, Listening, false},  // not yet unlocked
		{Listening, Speaking, false}, // already sat
		{Reading, Speaking, false},
		{Speaking, Speaking, true},
		{Completed, Speaking, false},
		{Completed, Completed, true},
	}
	for _, c := range cases {
		if got := CanEnter(c.target, c.current); got != c.want {
			t.Errorf("CanEnter(%s, %s) = %v, want %v", c.target, c.current, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("writing"); err != nil {
		t.Errorf("Parse(writing): %v", err)
	}
	if _, err := Parse("grammar"); err == nil {
		t.Error("Parse(grammar) should fail")
	}
}

func TestAnswerable(t *testing.T) {
	for _, s := range All() {
		if !Answerable(s) {
			t.Errorf("%s should be answerable", s)
		}
	}
	if Answerable(Completed) {
		t.Error("completed should not be answerable")
	}
}
