package dateutil

import (
	"time"
)

// StartOfMonth truncates a date to the first day of its calendar month in
// UTC, so repeated AddMonths steps advance by exactly one month.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds a specified number of calendar months to a date.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthsUntilAge returns the number of months from the current age until a
// target age, assuming whole-year ages.
func MonthsUntilAge(currentAge, targetAge int) int {
	return (targetAge - currentAge) * 12
}
