package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gcosta/fightlog/internal/evolution"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateInsights:
		content = m.viewInsights()
	case StateSecrets:
		content = m.viewSecrets()
	case StateProfile:
		content = m.viewProfile()
	case StateCheckin, StateAddSecret:
		content = m.form.View()
	case StateConfirmWrap:
		content = m.viewConfirmWrap()
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Insights", "Secrets", "Profile"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	today := m.store.Today()

	header := headerStyle.Render(today.Date)
	if m.store.HasCheckedInToday() {
		header += positiveStyle.Render("  checked in")
	} else {
		header += warningStyle.Render("  press c to check in")
	}
	header += fmt.Sprintf("  ·  completion %.0f%%", m.store.CompletionRate()*100)

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.dashboard.View()))
}

func (m Model) viewInsights() string {
	today := m.store.Today()
	history := m.store.History()
	athlete := m.store.Athlete()

	comparison := evolution.Compare(today, m.store.CompletionRate(), history)
	trends := evolution.AnalyzeTrends(history)
	improvements, problems := evolution.Evaluate(evolution.Snapshot{
		Today:      today,
		Streak:     athlete.CurrentStreak,
		Comparison: comparison,
		Trends:     trends,
	})

	var b strings.Builder
	b.WriteString(headerStyle.Render("FIGHT INTELLIGENCE") + "\n\n")

	if comparison == nil {
		b.WriteString("No archived days yet — comparisons unlock after the first wrap.\n")
	} else {
		b.WriteString(fmt.Sprintf("vs yesterday: sleep %+0.1fh · energy %+0.0f · completion %+0.0f%%\n",
			comparison.SleepDiff, comparison.EnergyDiff, comparison.CompletionDiff*100))
	}
	if trends != nil {
		b.WriteString(fmt.Sprintf("last %d days: sleep %.1fh (%s) · energy %.0f (%s) · completion %.0f%% (%s)\n",
			trends.Window,
			trends.AvgSleepHours, trends.Sleep,
			trends.AvgEnergy, trends.Energy,
			trends.AvgCompletion*100, trends.Completion))
	}

	if len(problems) > 0 {
		b.WriteString("\n")
		for _, p := range problems {
			b.WriteString(dangerStyle.Render("▌ "+p.Title) + "  " + p.Message + "\n")
		}
	}
	if len(improvements) > 0 {
		b.WriteString("\n")
		for _, i := range improvements {
			b.WriteString(positiveStyle.Render("▌ "+i.Title) + "  " + i.Message + "\n")
		}
	}

	if goals := evolution.AdaptiveGoals(trends); len(goals) > 0 {
		b.WriteString("\n" + headerStyle.Render("GOALS") + "\n")
		for _, g := range goals {
			mark := dangerStyle.Render("✗")
			if g.Met {
				mark = positiveStyle.Render("✓")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", mark, g.Message))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewSecrets() string {
	header := headerStyle.Render(strings.ToUpper(string(m.secretsModel.Category()))) +
		statusStyle.Render("  (n: next discipline)")
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.secretsModel.View()))
}

func (m Model) viewProfile() string {
	athlete := m.store.Athlete()
	settings := m.store.Settings()

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(athlete.Name)) + "\n\n")
	b.WriteString(fmt.Sprintf("%d years · %s · %s\n", athlete.Age, athlete.Category, athlete.Level))
	b.WriteString(fmt.Sprintf("Record: %dW-%dL-%dD\n\n", athlete.Wins, athlete.Losses, athlete.Draws))
	b.WriteString(fmt.Sprintf("Current streak:      %d days\n", athlete.CurrentStreak))
	b.WriteString(fmt.Sprintf("Best streak:         %d days\n", athlete.BestStreak))
	b.WriteString(fmt.Sprintf("Total training days: %d\n\n", athlete.TotalTrainingDays))
	b.WriteString(statusStyle.Render(fmt.Sprintf("timezone %s · archive on rollover %v",
		settings.Timezone, settings.ArchiveOnRollover)))

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmWrap() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			warningStyle.Render(fmt.Sprintf("Archive today at %.0f%% completion?", m.store.CompletionRate()*100)),
			"This applies the streak rule and cannot be undone.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
