// Package dashboard renders today's schedule as a toggleable checklist.
package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gcosta/fightlog/internal/models"
)

type ToggleActivityMsg struct {
	ID string
}

type StartCheckinMsg struct{}

type WrapDayMsg struct{}

type Item struct {
	Activity models.ScheduledActivity
	Done     bool
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s  %s", mark, i.Activity.Time, i.Activity.Title)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · %s intensity", i.Activity.Type, i.Activity.Intensity)
	if i.Activity.Location != "" {
		desc += " · " + i.Activity.Location
	}
	return desc
}

func (i Item) FilterValue() string { return i.Activity.Title }

type KeyMap struct {
	Toggle  key.Binding
	Checkin key.Binding
	Wrap    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle done"),
		),
		Checkin: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check in"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap day"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(activities []models.ScheduledActivity, completed []string, width, height int) Model {
	l := list.New(buildItems(activities, completed), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Checkin, keys.Wrap}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Checkin, keys.Wrap}
	}

	return Model{list: l, keys: keys}
}

func buildItems(activities []models.ScheduledActivity, completed []string) []list.Item {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	items := make([]list.Item, len(activities))
	for i, a := range activities {
		items[i] = Item{Activity: a, Done: done[a.ID]}
	}
	return items
}

func (m *Model) SetActivities(activities []models.ScheduledActivity, completed []string) {
	m.list.SetItems(buildItems(activities, completed))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleActivityMsg{ID: i.Activity.ID} }
			}
		case key.Matches(msg, m.keys.Checkin):
			return m, func() tea.Msg { return StartCheckinMsg{} }
		case key.Matches(msg, m.keys.Wrap):
			return m, func() tea.Msg { return WrapDayMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
