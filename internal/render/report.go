package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Akash7367/chatlens/internal/analysis"
	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/Akash7367/chatlens/internal/wordlist"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleSection = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleWarn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// heatShades map activity quintiles to block characters.
var heatShades = []string{"·", "░", "▒", "▓", "█"}

// ReportOptions selects what a report renders and how wide it may be.
type ReportOptions struct {
	Title    string
	User     string // author filter, Overall for the whole chat
	Stop     wordlist.Set
	Flagged  []string
	TopWords int
	TopUsers int
	Width    int // 0 = 80
}

// Report renders every analytics view over the record set as ANSI text.
// Total over the empty set: all sections degrade to "(no data)".
func Report(all []parse.Message, opts ReportOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	user := opts.User
	if user == "" {
		user = analysis.Overall
	}
	msgs := analysis.FilterUser(all, user)

	var b strings.Builder
	title := opts.Title
	if title == "" {
		title = "Chat Analysis"
	}
	fmt.Fprintf(&b, "%s\n%s\n\n",
		styleTitle.Render(title+" — "+user),
		styleDim.Render(strings.Repeat("=", min(width, 60))))

	writeStats(&b, msgs)
	writeTimelines(&b, msgs, width)
	writeActivity(&b, msgs, width)
	writeHeatmap(&b, msgs)
	if user == analysis.Overall {
		writeBusyUsers(&b, msgs, opts.TopUsers, width)
	}
	writeLexical(&b, msgs, opts.Stop, opts.TopWords, width)
	writeSentiment(&b, msgs, width)
	writeToxicity(&b, msgs, opts.Flagged)

	return b.String()
}

func section(b *strings.Builder, name string) {
	fmt.Fprintf(b, "%s\n", styleSection.Render("== "+name+" =="))
}

func noData(b *strings.Builder) {
	fmt.Fprintf(b, "  %s\n\n", styleDim.Render("(no data)"))
}

func writeStats(b *strings.Builder, msgs []parse.Message) {
	s := analysis.ComputeStats(msgs)
	section(b, "Top Statistics")
	fmt.Fprintf(b, "  Messages: %-8d Words: %-8d Media: %-6d Links: %d\n\n",
		s.Messages, s.Words, s.Media, s.Links)
}

// barChart renders label rows with bars proportional to the max count.
func barChart(b *strings.Builder, rows []analysis.LabelCount, width int) {
	if len(rows) == 0 {
		noData(b)
		return
	}
	maxCount := 0
	labelW := 0
	for _, r := range rows {
		if r.Count > maxCount {
			maxCount = r.Count
		}
		if w := runewidth.StringWidth(r.Label); w > labelW {
			labelW = w
		}
	}
	barW := width - labelW - 12
	if barW < 10 {
		barW = 10
	}
	for _, r := range rows {
		n := 0
		if maxCount > 0 {
			n = r.Count * barW / maxCount
		}
		if n == 0 && r.Count > 0 {
			n = 1
		}
		fmt.Fprintf(b, "  %s %s %d\n",
			runewidth.FillRight(r.Label, labelW),
			styleBar.Render(strings.Repeat("▇", n)),
			r.Count)
	}
	b.WriteString("\n")
}

func writeTimelines(b *strings.Builder, msgs []parse.Message, width int) {
	section(b, "Monthly Timeline")
	monthly := analysis.MonthlyTimeline(msgs)
	rows := make([]analysis.LabelCount, 0, len(monthly))
	for _, m := range monthly {
		rows = append(rows, analysis.LabelCount{Label: m.Label, Count: m.Count})
	}
	barChart(b, rows, width)

	section(b, "Daily Timeline")
	daily := analysis.DailyTimeline(msgs)
	if len(daily) == 0 {
		noData(b)
		return
	}
	// the full daily series can be thousands of points; show the busiest
	// day plus the most recent 14
	busiest := daily[0]
	for _, d := range daily {
		if d.Count > busiest.Count {
			busiest = d
		}
	}
	fmt.Fprintf(b, "  %d active days, busiest %s (%d messages)\n",
		len(daily), busiest.Date, busiest.Count)
	tail := daily
	if len(tail) > 14 {
		tail = tail[len(tail)-14:]
	}
	rows = rows[:0]
	for _, d := range tail {
		rows = append(rows, analysis.LabelCount{Label: d.Date, Count: d.Count})
	}
	barChart(b, rows, width)
}

func writeActivity(b *strings.Builder, msgs []parse.Message, width int) {
	section(b, "Most Busy Day")
	barChart(b, analysis.WeekActivity(msgs), width)
	section(b, "Most Busy Month")
	barChart(b, analysis.MonthActivity(msgs), width)
}

func writeHeatmap(b *strings.Builder, msgs []parse.Message) {
	section(b, "Weekly Activity Heatmap")
	h := analysis.ActivityHeatmap(msgs)
	maxCount := 0
	for _, row := range h.Counts {
		for _, n := range row {
			if n > maxCount {
				maxCount = n
			}
		}
	}
	if maxCount == 0 {
		noData(b)
		return
	}
	fmt.Fprintf(b, "  %s %s\n", strings.Repeat(" ", 9), styleDim.Render("hour 0 ──────────────────────▶ 23"))
	for i, day := range h.Days {
		var cells strings.Builder
		for _, n := range h.Counts[i] {
			idx := 0
			if n > 0 {
				idx = 1 + n*(len(heatShades)-2)/maxCount
				if idx >= len(heatShades) {
					idx = len(heatShades) - 1
				}
			}
			cells.WriteString(heatShades[idx])
		}
		fmt.Fprintf(b, "  %s %s\n", runewidth.FillRight(day, 9), styleBar.Render(cells.String()))
	}
	b.WriteString("\n")
}

func writeBusyUsers(b *strings.Builder, msgs []parse.Message, topN, width int) {
	section(b, "Most Busy Users")
	top, all := analysis.BusyUsers(msgs, topN)
	if len(top) == 0 {
		noData(b)
		return
	}
	rows := make([]analysis.LabelCount, 0, len(top))
	for _, u := range top {
		rows = append(rows, analysis.LabelCount{Label: u.User, Count: u.Count})
	}
	barChart(b, rows, width)
	for _, u := range all {
		fmt.Fprintf(b, "  %s %6.2f%%\n", runewidth.FillRight(u.User, 24), u.Percent)
	}
	b.WriteString("\n")
}

func writeLexical(b *strings.Builder, msgs []parse.Message, stop wordlist.Set, topN, width int) {
	section(b, "Most Common Words")
	barChart(b, asLabelCounts(analysis.CommonWords(msgs, stop, topN)), width)

	section(b, "Emoji")
	emojis := analysis.EmojiCounts(msgs)
	if len(emojis) == 0 {
		noData(b)
		return
	}
	if len(emojis) > 10 {
		emojis = emojis[:10]
	}
	for _, e := range emojis {
		fmt.Fprintf(b, "  %s  %d\n", e.Word, e.Count)
	}
	b.WriteString("\n")
}

func asLabelCounts(words []analysis.WordCount) []analysis.LabelCount {
	rows := make([]analysis.LabelCount, 0, len(words))
	for _, w := range words {
		rows = append(rows, analysis.LabelCount{Label: w.Word, Count: w.Count})
	}
	return rows
}

func writeSentiment(b *strings.Builder, msgs []parse.Message, width int) {
	section(b, "Sentiment")
	res := analysis.Sentiment(msgs)
	if len(res.Counts) == 0 {
		noData(b)
		return
	}
	total := len(res.Messages)
	for _, c := range res.Counts {
		pct := float64(c.Count) / float64(total) * 100
		fmt.Fprintf(b, "  %s %5d  %5.1f%%\n", runewidth.FillRight(c.Label, 9), c.Count, pct)
	}
	b.WriteString("\n")
}

func writeToxicity(b *strings.Builder, msgs []parse.Message, flagged []string) {
	section(b, "Toxicity")
	tox := analysis.Toxicity(msgs, flagged)
	if len(tox) == 0 {
		fmt.Fprintf(b, "  %s\n\n", styleDim.Render("No flagged messages."))
		return
	}
	for _, ut := range tox {
		fmt.Fprintf(b, "  %s score %s (%d hits)\n",
			runewidth.FillRight(ut.User, 24),
			styleWarn.Render(fmt.Sprintf("%.1f/10", ut.Score)),
			ut.Count)
		// audit display: cap the quoted evidence per author
		shown := ut.Messages
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, fm := range shown {
			fmt.Fprintf(b, "    %s %s %s\n",
				styleDim.Render(fm.Date.Format("2006-01-02 15:04")),
				fm.Message,
				styleDim.Render("["+strings.Join(fm.Words, ", ")+"]"))
		}
	}
	b.WriteString("\n")
}
