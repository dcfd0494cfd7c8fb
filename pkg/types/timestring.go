package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Формати часу, які приймає бекенд: "HH:MM" та "HH:MM:SS"
const (
	timeFormatShort = "15:04"
	timeFormatLong  = "15:04:05"
)

// TimeString час доби у форматі "HH:MM"
// Значення нормалізується при створенні: секунди відкидаються
type TimeString string

// NewTimeString створює TimeString з time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormatShort))
}

// NewTimeStringFromString парсить "HH:MM" або "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeFormatShort, s); err == nil {
		return NewTimeString(t), nil
	}
	t, err := time.Parse(timeFormatLong, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid time %q: expected HH:MM or HH:MM:SS", s)
	}
	return NewTimeString(t), nil
}

// String повертає час у форматі "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

func (ts TimeString) parse() (time.Time, error) {
	return time.Parse(timeFormatShort, string(ts))
}

// IsBefore повертає true, якщо ts строго раніше за other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter повертає true, якщо ts строго пізніше за other
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// AddMinutes повертає час зі зсувом на minutes хвилин
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// UnmarshalJSON приймає обидва формати часу від бекенда
func (ts *TimeString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*ts = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalJSON серіалізує час як "HH:MM"
func (ts TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(ts))
}
