package domain

import (
	"regexp"
	"time"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateWindow интервал проживания [CheckIn, CheckOut).
// Обе даты хранятся как полночь UTC, без времени суток.
type DateWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// IsISODate проверяет, что строка строго в формате YYYY-MM-DD
func IsISODate(s string) bool {
	return isoDateRe.MatchString(s)
}

// ParseDate разбирает YYYY-MM-DD как полночь UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// TruncateToUTCDate возвращает полночь UTC календарной даты момента t (в UTC)
func TruncateToUTCDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// Nights количество ночей: ceil((CheckOut - CheckIn) в сутках).
// Считается по Unix секундам, а не через time.Duration, который ограничен ~292 годами.
func (w DateWindow) Nights() int {
	diff := w.CheckOut.Unix() - w.CheckIn.Unix()
	nights := diff / secondsPerDay
	if diff%secondsPerDay > 0 {
		nights++
	}
	return int(nights)
}

// Overlaps проверяет пересечение полуоткрытых интервалов [a,b) и [c,d): a < d && c < b.
// Выезд в день X и заезд в день X не конфликтуют.
func (w DateWindow) Overlaps(other DateWindow) bool {
	return w.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(w.CheckOut)
}

// CheckInString дата заезда в формате YYYY-MM-DD
func (w DateWindow) CheckInString() string {
	return w.CheckIn.Format(DateFormat)
}

// CheckOutString дата выезда в формате YYYY-MM-DD
func (w DateWindow) CheckOutString() string {
	return w.CheckOut.Format(DateFormat)
}
