package workoutlog

import "time"

func ISOToday(now time.Time) string {
	return now.Format(dateKeyLayout)
}

// DaysDiff returns the calendar-day difference between now and the
// given date key, positive for past dates.
func DaysDiff(dateKey string, now time.Time) (int, error) {
	day, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(day).Hours() / 24), nil
}

// HumanDayLabel renders a date key for display: Today, Yesterday, the
// weekday name within the last week, a full date beyond that.
func HumanDayLabel(dateKey string, now time.Time) string {
	diff, err := DaysDiff(dateKey, now)
	if err != nil {
		return dateKey
	}
	day, _ := time.Parse(dateKeyLayout, dateKey)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Yesterday"
	case diff < 7:
		return day.Weekday().String()
	default:
		return day.Format("January 2, 2006")
	}
}
