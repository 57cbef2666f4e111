package model

import "time"

// AllPeriods selects every year or every month when used as the Year or
// Month of a FilterState.
const AllPeriods = 0

// DateRange is an optional custom date window. A nil bound means the
// corresponding side is open. End is inclusive of its whole calendar day.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Active reports whether either bound of the range is set.
func (r DateRange) Active() bool {
	return r.Start != nil || r.End != nil
}

// FilterState describes the active dashboard filter. When DateRange is
// active it takes precedence and Year/Month are ignored; otherwise Year
// and Month apply independently, with AllPeriods meaning no restriction.
type FilterState struct {
	DateRange DateRange
	Year      int
	Month     int // 1-12, or AllPeriods
}

// NewFilterState returns the default filter: the given calendar year,
// all months, no custom range.
func NewFilterState(year int) FilterState {
	return FilterState{Year: year}
}

// Matches reports whether a transaction dated on day falls inside the
// filter. Custom-range bounds override the year/month selectors.
func (f FilterState) Matches(day time.Time) bool {
	if f.DateRange.Active() {
		if f.DateRange.Start != nil && day.Before(*f.DateRange.Start) {
			return false
		}
		if f.DateRange.End != nil {
			// The end date covers its whole calendar day.
			inclusiveEnd := f.DateRange.End.AddDate(0, 0, 1)
			if !day.Before(inclusiveEnd) {
				return false
			}
		}
		return true
	}
	if f.Year != AllPeriods && day.Year() != f.Year {
		return false
	}
	if f.Month != AllPeriods && int(day.Month()) != f.Month {
		return false
	}
	return true
}
