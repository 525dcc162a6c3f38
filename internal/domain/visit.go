package domain

import "time"

// Visit records the most recent page view of an anonymous visitor.
type Visit struct {
	VisitorID string
	LastVisit time.Time
}

// SameDay reports whether the visit happened on the calendar day of t, in
// t's location.
func (v Visit) SameDay(t time.Time) bool {
	y1, m1, d1 := v.LastVisit.In(t.Location()).Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
