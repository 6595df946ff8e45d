package scoring

import "math"

// descriptors maps whole bands to the official skill-level labels.
var descriptors = map[int]string{
	9: "Expert user",
	8: "Very good user",
	7: "Good user",
	6: "Competent user",
	5: "Modest user",
	4: "Limited user",
	3: "Extremely limited user",
	2: "Intermittent user",
	1: "Non-user",
	0: "Did not attempt the test",
}

// Descriptor returns the skill-level label for a band score. Half bands
// take the descriptor of the whole band below them.
func Descriptor(band float64) string {
	whole := int(math.Floor(Clamp(band)))
	return descriptors[whole]
}
