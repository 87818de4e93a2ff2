package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamps is embedded by every stored entity. Both fields are set at
// construction; no update endpoints exist, so UpdatedAt never changes.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTimestamps stamps a freshly created entity.
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}

const dateLayout = "2006-01-02"

// Date is a calendar date, serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string in %s format", dateLayout)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected %s", s, dateLayout)
	}
	d.Time = t
	return nil
}

// NewDate builds a Date from year, month, day (UTC).
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ISBN is stored as a string but also accepts a bare JSON number, since
// clients send both "9783161484100" and 9783161484100.
type ISBN string

func (i *ISBN) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = ISBN(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("isbn must be a string or an integer")
	}
	*i = ISBN(n.String())
	return nil
}

// Rating is a review score: either a numeric score or free text.
type Rating struct {
	Numeric bool   `json:"-"`
	Value   int    `json:"-"`
	Text    string `json:"-"`
}

// NumericRating builds a numeric rating.
func NumericRating(n int) Rating { return Rating{Numeric: true, Value: n} }

// TextRating builds a free-text rating.
func TextRating(s string) Rating { return Rating{Text: s} }

func (r Rating) MarshalJSON() ([]byte, error) {
	if r.Numeric {
		return json.Marshal(r.Value)
	}
	return json.Marshal(r.Text)
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		r.Numeric = false
		return json.Unmarshal(b, &r.Text)
	}
	if err := json.Unmarshal(b, &r.Value); err != nil {
		return fmt.Errorf("rating must be an integer or a string")
	}
	r.Numeric = true
	return nil
}

// Mark records a position within a book or movie: a number, free text, or
// unset. Unset round-trips as JSON null.
type Mark struct {
	Defined bool   `json:"-"`
	Numeric bool   `json:"-"`
	Value   int    `json:"-"`
	Text    string `json:"-"`
}

// NumericMark builds a numeric position.
func NumericMark(n int) Mark { return Mark{Defined: true, Numeric: true, Value: n} }

// TextMark builds a free-text position.
func TextMark(s string) Mark { return Mark{Defined: true, Text: s} }

func (m Mark) MarshalJSON() ([]byte, error) {
	switch {
	case !m.Defined:
		return []byte("null"), nil
	case m.Numeric:
		return json.Marshal(m.Value)
	default:
		return json.Marshal(m.Text)
	}
}

func (m *Mark) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		m.Defined = true
		return json.Unmarshal(b, &m.Text)
	}
	if err := json.Unmarshal(b, &m.Value); err != nil {
		return fmt.Errorf("position must be an integer, a string, or null")
	}
	m.Defined = true
	m.Numeric = true
	return nil
}

// Status tracks how far along a reader or viewer is.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
	StatusDropped    Status = "dropped"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold, StatusDropped:
		return true
	}
	return false
}
