package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash7367/chatlens/internal/parse"
)

func TestWeekActivity(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "thu 1"), // Thursday
		msg(t, "2023-01-26 16:30", "Bob", "thu 2"),
		msg(t, "2023-01-27 10:00", "Alice", "fri 1"), // Friday
	}

	rows := WeekActivity(msgs)
	require.Len(t, rows, 2)
	assert.Equal(t, LabelCount{Label: "Thursday", Count: 2}, rows[0])
	assert.Equal(t, LabelCount{Label: "Friday", Count: 1}, rows[1])
}

func TestMonthActivity(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-02-01 10:00", "Alice", "feb"),
		msg(t, "2023-01-26 15:30", "Alice", "jan"),
		msg(t, "2023-02-02 10:00", "Bob", "feb"),
	}

	rows := MonthActivity(msgs)
	require.Len(t, rows, 2)
	assert.Equal(t, LabelCount{Label: "February", Count: 2}, rows[0])
	assert.Equal(t, LabelCount{Label: "January", Count: 1}, rows[1])
}

func TestActivityHeatmap(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2023-01-26 15:30", "Alice", "a"), // Thursday 15-16
		msg(t, "2023-01-26 15:45", "Bob", "b"),   // Thursday 15-16
		msg(t, "2023-01-26 23:05", "Alice", "c"), // Thursday 23-00
		msg(t, "2023-01-29 00:10", "Alice", "d"), // Sunday 00-1
	}

	h := ActivityHeatmap(msgs)
	require.Len(t, h.Days, 7)
	require.Len(t, h.Buckets, 24)
	assert.Equal(t, "Monday", h.Days[0])
	assert.Equal(t, "00-1", h.Buckets[0])
	assert.Equal(t, "23-00", h.Buckets[23])

	cell := func(day, bucket string) int {
		t.Helper()
		di, bi := -1, -1
		for i, d := range h.Days {
			if d == day {
				di = i
			}
		}
		for i, b := range h.Buckets {
			if b == bucket {
				bi = i
			}
		}
		require.GreaterOrEqual(t, di, 0)
		require.GreaterOrEqual(t, bi, 0)
		return h.Counts[di][bi]
	}

	assert.Equal(t, 2, cell("Thursday", "15-16"))
	assert.Equal(t, 1, cell("Thursday", "23-00"))
	assert.Equal(t, 1, cell("Sunday", "00-1"))
	assert.Equal(t, 0, cell("Monday", "9-10"), "zero-filled")
}

func TestActivityHeatmapEmpty(t *testing.T) {
	h := ActivityHeatmap(nil)
	require.Len(t, h.Counts, 7)
	for _, row := range h.Counts {
		require.Len(t, row, 24)
		for _, n := range row {
			assert.Zero(t, n)
		}
	}
}
