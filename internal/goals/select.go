package goals

import "math/rand/v2"

// Fallback is returned by Pick when there are no candidates.
const Fallback = "Review and update your goals"

// Picker chooses one candidate uniformly at random.
type Picker struct {
	intN func(n int) int
}

// NewPicker returns a Picker backed by the process-wide random source.
func NewPicker() *Picker {
	return &Picker{intN: rand.IntN}
}

// NewPickerWithSource returns a Picker using src (for testing).
func NewPickerWithSource(src rand.Source) *Picker {
	return &Picker{intN: rand.New(src).IntN}
}

// Pick returns one candidate and its index, or Fallback and -1 when
// candidates is empty. Duplicates are weighted by their count.
func (p *Picker) Pick(candidates []string) (string, int) {
	if len(candidates) == 0 {
		return Fallback, -1
	}
	i := p.intN(len(candidates))
	return candidates[i], i
}
