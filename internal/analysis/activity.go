package analysis

import (
	"sort"
	"strconv"

	"github.com/Akash7367/chatlens/internal/parse"
)

// LabelCount is a generic frequency-table row.
type LabelCount struct {
	Label string
	Count int
}

func sortByCountDesc(rows []LabelCount) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
}

// weekdays in display order for the heatmap rows.
var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekActivity counts messages per weekday, most active first.
func WeekActivity(msgs []parse.Message) []LabelCount {
	return countByDesc(msgs, func(m parse.Message) string { return m.DayName })
}

// MonthActivity counts messages per month name, most active first.
func MonthActivity(msgs []parse.Message) []LabelCount {
	return countByDesc(msgs, func(m parse.Message) string { return m.Month })
}

// countByDesc builds a frequency table ordered by count descending, ties in
// first-seen order.
func countByDesc(msgs []parse.Message, key func(parse.Message) string) []LabelCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range msgs {
		k := key(m)
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]LabelCount, 0, len(order))
	for _, k := range order {
		out = append(out, LabelCount{Label: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Heatmap is the weekday x hour-bucket activity grid. Rows follow weekdays
// Monday..Sunday, columns follow the 24 hour buckets in clock order, and
// cells with no activity are zero.
type Heatmap struct {
	Days    []string
	Buckets []string
	Counts  [][]int // Counts[day][bucket]
}

// ActivityHeatmap builds the full zero-filled grid.
func ActivityHeatmap(msgs []parse.Message) Heatmap {
	h := Heatmap{
		Days:    weekdays,
		Buckets: hourBuckets(),
		Counts:  make([][]int, len(weekdays)),
	}
	dayIdx := make(map[string]int, len(h.Days))
	for i, d := range h.Days {
		dayIdx[d] = i
		h.Counts[i] = make([]int, len(h.Buckets))
	}
	bucketIdx := make(map[string]int, len(h.Buckets))
	for i, b := range h.Buckets {
		bucketIdx[b] = i
	}
	for _, m := range msgs {
		h.Counts[dayIdx[m.DayName]][bucketIdx[m.HourBucket]]++
	}
	return h
}

func hourBuckets() []string {
	buckets := make([]string, 24)
	for hour := 0; hour < 24; hour++ {
		buckets[hour] = hourBucketLabel(hour)
	}
	return buckets
}

func hourBucketLabel(hour int) string {
	// mirror the labels the parser derives
	switch hour {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	default:
		return strconv.Itoa(hour) + "-" + strconv.Itoa(hour+1)
	}
}
