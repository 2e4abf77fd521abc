package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderAlert draws a modal-style alert box.
func RenderAlert(title, message string) string {
	body := alertTitleStyle.Render(title) + "\n" + labelStyle.Render(message)
	return alertBoxStyle.Render(body)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	labelStyle      = lipgloss.NewStyle().Foreground(ColorInk)
	valueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	alertBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorError).Padding(0, 1)
)
