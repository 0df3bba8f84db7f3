package analysis

import (
	"sort"
	"strconv"

	"github.com/Akash7367/chatlens/internal/parse"
)

// MonthCount is one point of the monthly timeline.
type MonthCount struct {
	Year     int
	MonthNum int
	Month    string
	Label    string // "January-2023"
	Count    int
}

// DayCount is one point of the daily timeline.
type DayCount struct {
	Date  string // "2006-01-02"
	Count int
}

// MonthlyTimeline groups messages by (year, month) in chronological order.
func MonthlyTimeline(msgs []parse.Message) []MonthCount {
	type key struct {
		year, month int
	}
	counts := make(map[key]int)
	names := make(map[key]string)
	for _, m := range msgs {
		k := key{m.Year, m.MonthNum}
		counts[k]++
		names[k] = m.Month
	}

	out := make([]MonthCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, MonthCount{
			Year:     k.year,
			MonthNum: k.month,
			Month:    names[k],
			Label:    names[k] + "-" + strconv.Itoa(k.year),
			Count:    n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].MonthNum < out[j].MonthNum
	})
	return out
}

// DailyTimeline groups messages by calendar date in chronological order.
func DailyTimeline(msgs []parse.Message) []DayCount {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Date]++
	}
	out := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DayCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

