package domain

import "math"

// Progress summarizes completion of a task list.
type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// ComputeProgress counts done tasks. Percent is 100*completed/total rounded
// half to even, and 0 for an empty list.
func ComputeProgress(states []TaskState) Progress {
	p := Progress{Total: len(states)}
	for _, s := range states {
		if s.Done {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.RoundToEven(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// Fraction returns Completed/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}
