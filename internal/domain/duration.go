package domain

import "fmt"

// DurationQuery selects entries by minutes spent: either an exact value
// or an inclusive range.
type DurationQuery struct {
	Low   int64
	High  int64
	Exact bool
}

// ExactDuration matches entries that took exactly the given minutes.
func ExactDuration(minutes int64) DurationQuery {
	return DurationQuery{Low: minutes, High: minutes, Exact: true}
}

// DurationRange matches entries whose minutes fall within [low, high].
func DurationRange(low, high int64) DurationQuery {
	return DurationQuery{Low: low, High: high}
}

// Matches reports whether the given minutes satisfy the query.
func (q DurationQuery) Matches(minutes int64) bool {
	if q.Exact {
		return minutes == q.Low
	}
	return q.Low <= minutes && minutes <= q.High
}

func (q DurationQuery) String() string {
	if q.Exact {
		return fmt.Sprintf("%d minutes", q.Low)
	}
	return fmt.Sprintf("%d - %d minutes", q.Low, q.High)
}
