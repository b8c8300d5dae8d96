package diversity

// SampleSeries is an ordered mapping from sample ID to alpha diversity
// score. IDs and Scores are positionally aligned and follow the row order of
// the input counts matrix.
type SampleSeries struct {
	IDs    []string
	Scores []float64
}

// Len returns the number of samples in the series.
func (s *SampleSeries) Len() int { return len(s.IDs) }

// Score returns the score for the given sample ID. The second return value
// is false when the ID is not part of the series.
func (s *SampleSeries) Score(id string) (float64, bool) {
	for i, sid := range s.IDs {
		if sid == id {
			return s.Scores[i], true
		}
	}
	return 0, false
}
