package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gcosta/fightlog/internal/constants"
	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/tui/components/dashboard"
	"github.com/gcosta/fightlog/internal/tui/components/secretlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.dashboard.SetSize(msg.Width-h, msg.Height-v-6)
		m.secretsModel.SetSize(msg.Width-h, msg.Height-v-6)
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	switch m.state {
	case StateCheckin:
		return m.updateCheckin(msg)
	case StateAddSecret:
		return m.updateAddSecret(msg)
	case StateConfirmWrap:
		return m.updateConfirmWrap(msg)
	}

	if handled, model, cmd := m.handleComponentMsgs(msg); handled {
		return model, cmd
	}

	var cmd tea.Cmd
	switch m.state {
	case StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case StateSecrets:
		m.secretsModel, cmd = m.secretsModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Forms own the keyboard while open, except for ctrl+c.
	inForm := m.state == StateCheckin || m.state == StateAddSecret
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return true, tea.Quit
	case "q":
		if inForm || m.state == StateConfirmWrap {
			return false, nil
		}
		m.quitting = true
		return true, tea.Quit
	case "tab":
		if inForm {
			return false, nil
		}
		m.state = nextView(m.state)
		return true, nil
	case "shift+tab":
		if inForm {
			return false, nil
		}
		m.state = previousView(m.state)
		return true, nil
	case "?":
		if inForm {
			return false, nil
		}
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}
	return false, nil
}

func nextView(state SessionState) SessionState {
	switch state {
	case StateDashboard:
		return StateInsights
	case StateInsights:
		return StateSecrets
	case StateSecrets:
		return StateProfile
	case StateProfile:
		return StateDashboard
	}
	return state
}

func previousView(state SessionState) SessionState {
	switch state {
	case StateDashboard:
		return StateProfile
	case StateInsights:
		return StateDashboard
	case StateSecrets:
		return StateInsights
	case StateProfile:
		return StateSecrets
	}
	return state
}

func (m Model) handleComponentMsgs(msg tea.Msg) (bool, tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboard.ToggleActivityMsg:
		m.store.ToggleActivity(msg.ID)
		m.refreshDashboard()
		m.status = fmt.Sprintf("Completion: %.0f%%", m.store.CompletionRate()*100)
		return true, m, nil

	case dashboard.StartCheckinMsg:
		today := m.store.Today()
		m.checkinForm = &CheckinFormModel{
			WakeUpTime:    today.WakeUpTime,
			SleepQuality:  today.SleepQuality,
			HadDreams:     today.HadDreams,
			WokeUpAtNight: today.WokeUpAtNight,
			Mood:          today.Mood,
			Pain:          today.Pain,
			Notes:         today.Notes,
		}
		m.form = NewCheckinForm(m.checkinForm)
		m.previousState = m.state
		m.state = StateCheckin
		return true, m, m.form.Init()

	case dashboard.WrapDayMsg:
		m.previousState = m.state
		m.state = StateConfirmWrap
		return true, m, nil

	case secretlist.AddSecretMsg:
		m.secretForm = &SecretFormModel{Category: msg.Category}
		m.form = NewSecretForm(m.secretForm)
		m.previousState = m.state
		m.state = StateAddSecret
		return true, m, m.form.Init()

	case secretlist.ToggleFavoriteMsg:
		if _, err := m.store.ToggleSecretFavorite(msg.Category, msg.ID); err == nil {
			m.refreshSecrets(msg.Category)
		}
		return true, m, nil

	case secretlist.DeleteSecretMsg:
		if err := m.store.DeleteSecret(msg.Category, msg.ID); err == nil {
			m.refreshSecrets(msg.Category)
			m.status = "Secret deleted."
		}
		return true, m, nil

	case secretlist.NextCategoryMsg:
		m.refreshSecrets(nextCategory(m.secretsModel.Category()))
		return true, m, nil
	}
	return false, m, nil
}

func nextCategory(current models.Category) models.Category {
	categories := models.Categories()
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}
	return categories[0]
}

func (m Model) updateCheckin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.checkinForm
		today := m.store.Today()
		sleepHours := parseFloatOr(fm.SleepHours, today.SleepHours)
		energy := parseIntOr(fm.Energy, today.Energy)
		weight := parseFloatOr(fm.Weight, today.Weight)
		heartRate := parseIntOr(fm.HeartRate, today.HeartRate)

		m.store.UpdateToday(models.DayPatch{
			WakeUpTime:    &fm.WakeUpTime,
			SleepQuality:  &fm.SleepQuality,
			SleepHours:    &sleepHours,
			Mood:          &fm.Mood,
			Energy:        &energy,
			Pain:          &fm.Pain,
			HadDreams:     &fm.HadDreams,
			WokeUpAtNight: &fm.WokeUpAtNight,
			Notes:         &fm.Notes,
			Weight:        &weight,
			HeartRate:     &heartRate,
		})
		m.store.CompleteCheckIn()
		m.status = "✓ Checked in. Time to work."
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateAddSecret(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.secretForm
		_, err := m.store.AddSecret(fm.Category, models.SecretInput{
			Title:     fm.Title,
			Technique: fm.Technique,
			Situation: fm.Situation,
			Details:   fm.Details,
			Reminder:  fm.Reminder,
			Favorite:  fm.Favorite,
		})
		if err == nil {
			m.refreshSecrets(fm.Category)
			m.status = "✓ Secret added."
			m.state = m.previousState
		} else {
			// Stay in form state on error to allow retry
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateConfirmWrap(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			entry := m.store.SaveDayToHistory()
			athlete := m.store.Athlete()
			if entry.CompletionRate >= constants.StreakThreshold {
				m.status = fmt.Sprintf("Day archived at %.0f%%. 🔥 Streak: %d days.",
					entry.CompletionRate*100, athlete.CurrentStreak)
			} else {
				m.status = fmt.Sprintf("Day archived at %.0f%%. Streak reset.", entry.CompletionRate*100)
			}
			m.state = m.previousState
		case "n", "esc", "q":
			m.state = m.previousState
		}
	}
	return m, nil
}
