package parse

import (
	"fmt"
	"time"
)

// Notification is the author assigned to lines that carry no "Name: " prefix
// (group events, encryption notices and other system lines).
const Notification = "group_notification"

// MediaOmitted is the exact placeholder WhatsApp writes in place of a
// redacted attachment. Compared for equality, never as a pattern.
const MediaOmitted = "<Media omitted>"

// Message is one parsed transcript record. The derived fields are computed
// once at construction and never recomputed; consumers treat the record set
// as read-only.
type Message struct {
	Timestamp time.Time
	Author    string // display name, or Notification
	Body      string // text with the author prefix stripped

	Year       int
	MonthNum   int
	Month      string // "January" .. "December"
	Day        int
	DayName    string // "Monday" .. "Sunday"
	Hour       int
	Minute     int
	Date       string // "2006-01-02", for daily grouping
	HourBucket string // "15-16"; 23 -> "23-00", 0 -> "00-1"
}

// NewMessage constructs a record and computes the derived fields. Exposed
// for consumers that rehydrate records from storage.
func NewMessage(ts time.Time, author, body string) Message {
	return Message{
		Timestamp:  ts,
		Author:     author,
		Body:       body,
		Year:       ts.Year(),
		MonthNum:   int(ts.Month()),
		Month:      ts.Month().String(),
		Day:        ts.Day(),
		DayName:    ts.Weekday().String(),
		Hour:       ts.Hour(),
		Minute:     ts.Minute(),
		Date:       ts.Format("2006-01-02"),
		HourBucket: hourBucket(ts.Hour()),
	}
}

func hourBucket(hour int) string {
	switch hour {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	default:
		return fmt.Sprintf("%d-%d", hour, hour+1)
	}
}
