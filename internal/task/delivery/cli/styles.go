package cli

import (
	"charm.land/lipgloss/v2"

	"taskie/pkg/taskie"
)

type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	success  lipgloss.Style
	severity map[taskie.Severity]lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain,
			subtle:  plain,
			success: plain,
			severity: map[taskie.Severity]lipgloss.Style{
				taskie.SeverityLow:    plain,
				taskie.SeverityMedium: plain,
				taskie.SeverityHigh:   plain,
			},
		}
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		severity: map[taskie.Severity]lipgloss.Style{
			taskie.SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			taskie.SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			taskie.SeverityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func (s styles) badge(sev taskie.Severity) string {
	return s.severity[sev].Render("[" + string(sev) + "]")
}
