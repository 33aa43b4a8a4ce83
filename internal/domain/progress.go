package domain

import "math"

// Progress is a done/total counter with a rounded percentage, used for both
// trip completion (completed stops) and packing (packed items).
type Progress struct {
	Done       int `json:"done"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// progressOf guards the zero-total case: an empty list is 0%, not NaN.
func progressOf(done, total int) Progress {
	p := Progress{Done: done, Total: total}
	if total > 0 {
		p.Percentage = int(math.Round(100 * float64(done) / float64(total)))
	}
	return p
}
