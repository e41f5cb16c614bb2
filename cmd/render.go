package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vgn96186/Guru-sub000/internal/agenda"
	"github.com/vgn96186/Guru-sub000/internal/studyplan"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	topicStyle   = lipgloss.NewStyle().Bold(true)
	nemesisStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	restStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
)

func renderAgenda(a *agenda.Agenda) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Session (%s, %d min)", a.Mode, a.DurationMinutes)))
	b.WriteString("\n")
	if a.FocusNote != "" {
		b.WriteString(subtleStyle.Render(a.FocusNote))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range a.Items {
		name := topicStyle.Render(item.Topic.Name)
		if item.Topic.Nemesis {
			name = nemesisStyle.Render(item.Topic.Name + " (nemesis)")
		}
		types := make([]string, len(item.ContentTypes))
		for j, ct := range item.ContentTypes {
			types[j] = string(ct)
		}
		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, name,
			subtleStyle.Render(fmt.Sprintf("[%s] ~%d min", strings.Join(types, ", "), item.EstimatedMinutes))))
	}

	if a.Message != "" {
		b.WriteString("\n")
		b.WriteString(a.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func renderPlanSummary(p *studyplan.Plan) string {
	var b strings.Builder
	s := p.Summary

	verdict := restStyle.Render("on track")
	if !s.Feasible {
		verdict = warnStyle.Render(fmt.Sprintf("behind: %d topics will not fit", s.TotalTopicsLeft))
	}
	b.WriteString(titleStyle.Render("Study plan"))
	b.WriteString(fmt.Sprintf("\n%d days simulated, %d rest days, %.1f h/day needed. %s\n",
		s.TotalDays, s.RestDays, s.RequiredHoursPerDay, verdict))
	return b.String()
}

func renderDay(d studyplan.DailyPlan) string {
	var b strings.Builder
	b.WriteString(topicStyle.Render(d.Date.Format("Mon Jan 2")))
	if d.IsRestDay {
		b.WriteString(restStyle.Render("  rest day"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")
	for _, item := range d.Items {
		b.WriteString(fmt.Sprintf("  %-9s %s %s\n", item.Action, item.TopicName,
			subtleStyle.Render(fmt.Sprintf("(%d min)", item.DurationMinutes))))
	}
	return b.String()
}
