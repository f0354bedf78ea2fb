package models

// DayActivity is one slot of the weekly activity chart: a weekday name and
// the number of sign-ins that fell on it.
type DayActivity struct {
	Day    string `json:"day"`
	Logins int    `json:"logins"`
}

// WeeklyActivity is the full dashboard payload: the fixed Sunday-first
// 7-slot chart plus the motivational message derived from it.
type WeeklyActivity struct {
	Days       []DayActivity `json:"days"`
	Motivation string        `json:"motivation"`
}
