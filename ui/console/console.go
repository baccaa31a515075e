package console

import (
	"fmt"
	"io"
	"strings"

	"carddrawer/internal/engine"
	"carddrawer/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders a drawer report to the writer in a compact format.
func Print(w io.Writer, r output.Report) {
	title := strings.ToUpper(r.Title)
	if title == "" {
		title = "CARD DRAWER"
	}
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", title, colorReset)

	for _, sec := range r.Sections {
		// Section Header
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			// Compact Label (max 20 chars)
			label := it.Label
			if len([]rune(label)) > 20 {
				label = string([]rune(label)[:17]) + "..."
			}

			valStr := ""
			switch {
			case it.Unit != "":
				valStr = fmt.Sprintf("%.1f%s", it.Value, it.Unit)
			case it.Note != "":
				valStr = it.Note
			default:
				valStr = fmt.Sprintf("%.1f", it.Value)
			}

			statusMarker := ""
			switch it.Status {
			case engine.StatusHealthy:
				statusMarker = fmt.Sprintf(" %s✓%s", colorFor(it.Status), colorReset)
			case engine.StatusWarning:
				statusMarker = fmt.Sprintf(" %s!%s", colorFor(it.Status), colorReset)
			case engine.StatusCritical:
				statusMarker = fmt.Sprintf(" %sX%s", colorFor(it.Status), colorReset)
			case output.StatusShown:
				statusMarker = fmt.Sprintf(" %s●%s", colorFor(it.Status), colorReset)
			case output.StatusHidden:
				statusMarker = fmt.Sprintf(" %s○%s", colorFor(it.Status), colorReset)
			case output.StatusMoving:
				statusMarker = fmt.Sprintf(" %s~%s", colorFor(it.Status), colorReset)
			}

			// Curves trail the value.
			curve := ""
			if it.Unit != "" && it.Note != "" {
				curve = "  " + it.Note
			}

			dots := strings.Repeat("·", 22-len([]rune(label)))
			fmt.Fprintf(w, "  %s%s %10s%s%s\n", label, colorCyan+dots+colorReset, valStr, statusMarker, curve)
		}
	}

	// Single-line Summary
	summary := fmt.Sprintf("%s | selected: %d", r.Phase, r.Selected)
	if r.Health != "" {
		summary += " | checks: " + r.Health
	}
	if r.Frames > 0 {
		summary += fmt.Sprintf(" | settled in %d frames", r.Frames)
	}
	fmt.Fprintf(w, "%s─ Summary%s: %s\n\n", colorCyan, colorReset, summary)
}

func colorFor(status string) string {
	switch status {
	case engine.StatusWarning, output.StatusMoving:
		return colorYellow
	case engine.StatusCritical, output.StatusHidden:
		return colorRed
	default:
		return colorGreen
	}
}
