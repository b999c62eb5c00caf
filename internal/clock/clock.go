package clock

import "time"

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// System is the wall clock in UTC.
func System() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Date formats t as YYYY-MM-DD in UTC.
func Date(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Month formats t as YYYY-MM in UTC.
func Month(t time.Time) string {
	return t.UTC().Format("2006-01")
}

var dayCodes = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// DayCode returns the three letter weekday code (MON..SUN) of t in UTC.
func DayCode(t time.Time) string {
	return dayCodes[t.UTC().Weekday()]
}
