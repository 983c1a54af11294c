package domain

import "slices"

// LookupLuckyPoint returns the lucky point for the bucket of rawSum. A
// missing bucket means the reference table is incomplete.
func (r *ReferenceData) LookupLuckyPoint(rawSum int) (LuckyPoint, error) {
	bucket := LuckyBucket(rawSum)
	for _, lp := range r.LuckyPoints {
		if lp.Point == bucket {
			return lp, nil
		}
	}
	return LuckyPoint{}, newError(KindDataIntegrity, "invalid point: %d (bucket %d missing from lucky point table)", rawSum, bucket)
}

// LookupLuckyPointGroup returns a copy of the first group containing rawSum.
// No match is a normal outcome reported as (nil, false).
func (r *ReferenceData) LookupLuckyPointGroup(rawSum int) (*LuckyPointGroup, bool) {
	for i := range r.LuckyPointGroups {
		if r.LuckyPointGroups[i].Contains(rawSum) {
			g := r.LuckyPointGroups[i]
			g.Points = slices.Clone(g.Points)
			return &g, true
		}
	}
	return nil, false
}

// LookupAdviceByWeekday returns a copy of the advice record for day. The
// caller may modify it without touching the table.
func (r *ReferenceData) LookupAdviceByWeekday(day WeekDay) (LuckyNumberAdvice, error) {
	for _, a := range r.Advice {
		if a.Day == day {
			a.LuckyNum = slices.Clone(a.LuckyNum)
			a.AvoidNum = slices.Clone(a.AvoidNum)
			a.AvoidChar = slices.Clone(a.AvoidChar)
			return a, nil
		}
	}
	return LuckyNumberAdvice{}, newError(KindNoAdviceFound, "no advice found for the given day: %d (%s)", int(day), day)
}
