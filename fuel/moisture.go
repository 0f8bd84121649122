package fuel

// MoistureState holds the four Nelson timelag moisture fractions for a
// single cell or discrete element, plus the weighted average.
type MoistureState struct {
	OneHour      float64
	TenHour      float64
	HundredHour  float64
	ThousandHour float64
}

// WeightedAverage combines the four timelag classes using the fuel
// model's size-class distribution.
func (s MoistureState) WeightedAverage(m Model) float64 {
	w := m.Timelag.SizeClassWeights()
	total := w[0] + w[1] + w[2] + w[3]
	if total <= 0 {
		return s.OneHour
	}
	sum := s.OneHour*w[0] + s.TenHour*w[1] + s.HundredHour*w[2] + s.ThousandHour*w[3]
	return sum / total
}

// Uniform returns a MoistureState with every class set to the same
// fraction, a convenient starting point for newly ignited or freshly
// initialised cells.
func Uniform(fraction float64) MoistureState {
	return MoistureState{
		OneHour:      fraction,
		TenHour:      fraction,
		HundredHour:  fraction,
		ThousandHour: fraction,
	}
}
