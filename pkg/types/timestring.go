package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	minutesPerDay  = hoursPerDay * minutesPerHour

	layout = "15:04"
)

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDay = errors.New("time string is out of day bounds")
)

// TimeString время суток в формате "HH:MM" (24 часа, с ведущим нулём).
//
// Значение "00:00" неоднозначно: как время начала это полночь начала суток,
// как время окончания интервала - конец суток (час 24). Для окончания
// интервалов используйте EndHour/EndMinutes.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" (формат postgres time)
func NewTimeStringFromString(s string) (TimeString, error) {
	// postgres допускает 24:00:00 как конец суток
	if s == "24:00" || s == "24:00:00" {
		return "00:00", nil
	}
	h, m, err := parseParts(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// FromHour форматирует час в "HH:00". Час 24 сворачивается в "00:00"
func FromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour%hoursPerDay))
}

// FromMinutes форматирует количество минут от начала суток в "HH:MM".
// 1440 (конец суток) сворачивается в "00:00"
func FromMinutes(minutes int) TimeString {
	minutes %= minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour))
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, _, err := parseParts(string(t))
	return err
}

// Hour возвращает часовую часть времени
func (t TimeString) Hour() (int, error) {
	h, _, err := parseParts(string(t))
	return h, err
}

// EndHour возвращает часовую часть времени окончания интервала: "00:00" трактуется как 24
func (t TimeString) EndHour() (int, error) {
	h, m, err := parseParts(string(t))
	if err != nil {
		return 0, err
	}
	if h == 0 && m == 0 {
		return hoursPerDay, nil
	}
	return h, nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	h, m, err := parseParts(string(t))
	if err != nil {
		return 0, err
	}
	return h*minutesPerHour + m, nil
}

// EndMinutes как Minutes, но "00:00" трактуется как конец суток (1440)
func (t TimeString) EndMinutes() (int, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	if minutes == 0 {
		return minutesPerDay, nil
	}
	return minutes, nil
}

// AddMinutes прибавляет минуты. Возвращает ErrOutOfDay, если результат выходит за сутки
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	result := current + minutes
	if result < 0 || result >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrOutOfDay, t, minutes)
	}
	return FromMinutes(result), nil
}

// IsBefore возвращает true, если t строго раньше other. Некорректные значения не сравниваются
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// OnDate возвращает момент времени t в указанную дату
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(minutes) * time.Minute), nil
}

// Scan реализует sql.Scanner (postgres отдаёт time как "HH:MM:SS")
func (t *TimeString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func parseParts(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, ErrInvalidFormat
	}
	for _, p := range parts {
		if len(p) != 2 {
			return 0, 0, ErrInvalidFormat
		}
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h >= hoursPerDay {
		return 0, 0, ErrInvalidFormat
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m >= minutesPerHour {
		return 0, 0, ErrInvalidFormat
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec >= minutesPerHour {
			return 0, 0, ErrInvalidFormat
		}
	}
	return h, m, nil
}
