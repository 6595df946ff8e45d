package scoring

// Raw-score to band conversion for the objective sections. Listening and
// academic reading both have 40 questions; the tables follow the published
// conversion for the academic module.

// conversionStep maps a minimum raw score to the band it earns.
type conversionStep struct {
	minRaw int
	band   float64
}

var listeningTable = []conversionStep{
	{39, 9.0}, {37, 8.5}, {35, 8.0}, {32, 7.5}, {30, 7.0},
	{26, 6.5}, {23, 6.0}, {18, 5.5}, {16, 5.0}, {13, 4.5},
	{10, 4.0}, {8, 3.5}, {6, 3.0}, {4, 2.5}, {2, 2.0}, {1, 1.0}, {0, 0.0},
}

var readingTable = []conversionStep{
	{39, 9.0}, {37, 8.5}, {35, 8.0}, {33, 7.5}, {30, 7.0},
	{27, 6.5}, {23, 6.0}, {19, 5.5}, {15, 5.0}, {13, 4.5},
	{10, 4.0}, {8, 3.5}, {6, 3.0}, {4, 2.5}, {2, 2.0}, {1, 1.0}, {0, 0.0},
}

// ListeningBand converts a raw correct count (out of 40) to a band.
func ListeningBand(correct int) float64 {
	return convert(listeningTable, correct)
}

// ReadingBand converts a raw correct count (out of 40) to a band.
func ReadingBand(correct int) float64 {
	return convert(readingTable, correct)
}

func convert(table []conversionStep, correct int) float64 {
	if correct < 0 {
		return 0.0
	}
	for _, step := range table {
		if correct >= step.minRaw {
			return step.band
		}
	}
	return 0.0
}
