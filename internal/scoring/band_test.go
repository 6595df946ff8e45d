package scoring

import "testing"

func TestRoundHalf(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{6.0, 6.0},
		{6.1, 6.0},
		{6.25, 6.5}, // tie rounds up
		{6.4, 6.5},
		{6.5, 6.5},
		{6.75, 7.0}, // tie rounds up
		{6.875, 7.0},
		{-1.0, 0.0},
		{9.3, 9.0},
	}
	for _, c := range cases {
		if got := RoundHalf(c.in); got != c.want {
			t.Errorf("RoundHalf(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOverall(t *testing.T) {
	cases := []struct {
		l, r, w, s float64
		want       float64
	}{
		{6.5, 6.5, 5.0, 7.0, 6.5}, // mean 6.25 → 6.5
		{4.0, 3.5, 4.0, 4.0, 4.0}, // mean 3.875 → 4.0
		{6.5, 6.5, 5.5, 6.0, 6.0}, // mean 6.125 → 6.0
		{9.0, 9.0, 9.0, 9.0, 9.0},
		{0.0, 0.0, 0.0, 0.0, 0.0},
	}
	for _, c := range cases {
		if got := Overall(c.l, c.r, c.w, c.s); got != c.want {
			t.Errorf("Overall(%v,%v,%v,%v) = %v, want %v", c.l, c.r, c.w, c.s, got, c.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, v := range []float64{0, 0.5, 6.5, 9} {
		if !Valid(v) {
			t.Errorf("Valid(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{-0.5, 9.5, 6.25, 7.1} {
		if Valid(v) {
			t.Errorf("Valid(%v) = true, want false", v)
		}
	}
}

func TestCriteriaBand(t *testing.T) {
	criteria := map[string]float64{
		"task_achievement":         7.0,
		"coherence_and_cohesion":   6.0,
		"lexical_resource":         6.0,
		"grammatical_range":        6.0,
	}
	if got := CriteriaBand(criteria); got != 6.5 { // mean 6.25 → 6.5
		t.Errorf("CriteriaBand = %v, want 6.5", got)
	}
	if got := CriteriaBand(nil); got != 0 {
		t.Errorf("CriteriaBand(nil) = %v, want 0", got)
	}
}

func TestConversionTables(t *testing.T) {
	cases := []struct {
		name    string
		convert func(int) float64
		raw     int
		want    float64
	}{
		{"listening perfect", ListeningBand, 40, 9.0},
		{"listening 30", ListeningBand, 30, 7.0},
		{"listening 29", ListeningBand, 29, 6.5},
		{"listening 0", ListeningBand, 0, 0.0},
		{"listening negative", ListeningBand, -3, 0.0},
		{"reading perfect", ReadingBand, 40, 9.0},
		{"reading 30", ReadingBand, 30, 7.0},
		{"reading 29", ReadingBand, 29, 6.5},
		{"reading 15", ReadingBand, 15, 5.0},
	}
	for _, c := range cases {
		if got := c.convert(c.raw); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDescriptor(t *testing.T) {
	if got := Descriptor(7.0); got != "Good user" {
		t.Errorf("Descriptor(7.0) = %q", got)
	}
	if got := Descriptor(6.5); got != "Competent user" {
		t.Errorf("Descriptor(6.5) = %q", got)
	}
	if got := Descriptor(0); got != "Did not attempt the test" {
		t.Errorf("Descriptor(0) = %q", got)
	}
}
