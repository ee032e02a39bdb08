package stats

import (
	"io"
	"strings"
	"time"

	"github.com/lixenwraith/vi-tetris/core"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// WriteReport prints the batch summary and histograms as aligned tables
func (b *Batch) WriteReport(w io.Writer, used time.Duration) error {
	p := message.NewPrinter(lang)
	s := b.Summarize()

	keys := []string{"Games", "Game overs", "Capped", "Score mean", "Score std", "Score median", "Score max", "Rows total", "Pieces mean", "Ticks mean", "Used"}
	values := map[string]string{
		"Games":        p.Sprintf("%d", s.Games),
		"Game overs":   p.Sprintf("%d", s.GameOvers),
		"Capped":       p.Sprintf("%d", s.Capped),
		"Score mean":   p.Sprintf("%.3f", s.ScoreMean),
		"Score std":    p.Sprintf("%.3f", s.ScoreStdDev),
		"Score median": p.Sprintf("%.1f", s.ScoreMedian),
		"Score max":    p.Sprintf("%d", s.ScoreMax),
		"Rows total":   p.Sprintf("%d", s.TotalRows),
		"Pieces mean":  p.Sprintf("%.1f", s.PiecesMean),
		"Ticks mean":   p.Sprintf("%.1f", s.TicksMean),
		"Used":         used.Round(time.Millisecond).String(),
	}
	if _, err := io.WriteString(w, formatTable("Autoplay", keys, values)); err != nil {
		return err
	}

	shapeKeys := make([]string, 0, core.ShapeCount)
	shapeValues := make(map[string]string, core.ShapeCount)
	for id := core.ShapeId(0); id < core.ShapeCount; id++ {
		k := "Shape " + string(id.Letter())
		shapeKeys = append(shapeKeys, k)
		shapeValues[k] = p.Sprintf("%d", b.ShapeCount(id))
	}
	if _, err := io.WriteString(w, formatTable("Locked pieces", shapeKeys, shapeValues)); err != nil {
		return err
	}

	clearKeys := make([]string, 0, 4)
	clearValues := make(map[string]string, 4)
	for rows := 1; rows <= core.MaskSize; rows++ {
		k := p.Sprintf("%d row(s)", rows)
		clearKeys = append(clearKeys, k)
		clearValues[k] = p.Sprintf("%d", b.ClearCount(rows))
	}
	_, err := io.WriteString(w, formatTable("Clears per lock", clearKeys, clearValues))
	return err
}

// formatTable renders a two-column box; widths are display widths
func formatTable(title string, keys []string, values map[string]string) string {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(values[k]))
	}
	keyW += 2
	valW += 2
	inner := keyW + valW + 1
	if tw := runewidth.StringWidth(title) + 2; tw > inner {
		valW += tw - inner
		inner = tw
	}

	var sb strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"

	sb.WriteString(top)
	left := (inner - runewidth.StringWidth(title)) / 2
	sb.WriteString("|" + pad(left) + title + pad(inner-left-runewidth.StringWidth(title)) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		v := values[k]
		sb.WriteString("| " + k + pad(keyW-2-runewidth.StringWidth(k)) + " | " + pad(valW-2-runewidth.StringWidth(v)) + v + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func pad(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
