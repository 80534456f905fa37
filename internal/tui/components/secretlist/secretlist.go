// Package secretlist renders one discipline notebook of the secrets library.
package secretlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gcosta/fightlog/internal/models"
)

type AddSecretMsg struct {
	Category models.Category
}

type ToggleFavoriteMsg struct {
	Category models.Category
	ID       string
}

type DeleteSecretMsg struct {
	Category models.Category
	ID       string
}

type NextCategoryMsg struct{}

type Item struct {
	Secret models.Secret
}

func (i Item) Title() string {
	title := i.Secret.Title
	if i.Secret.Favorite {
		title = "★ " + title
	}
	return title
}

func (i Item) Description() string {
	desc := i.Secret.Technique
	if i.Secret.Reminder != "" {
		desc += " · " + i.Secret.Reminder
	}
	return desc
}

func (i Item) FilterValue() string { return i.Secret.Title + " " + i.Secret.Technique }

type KeyMap struct {
	Add      key.Binding
	Favorite key.Binding
	Delete   key.Binding
	Next     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next discipline"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	category models.Category
}

func New(category models.Category, secrets []models.Secret, width, height int) Model {
	l := list.New(buildItems(secrets), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Favorite, keys.Delete, keys.Next}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Favorite, keys.Delete, keys.Next}
	}

	return Model{list: l, keys: keys, category: category}
}

func buildItems(secrets []models.Secret) []list.Item {
	items := make([]list.Item, len(secrets))
	for i, s := range secrets {
		items[i] = Item{Secret: s}
	}
	return items
}

func (m *Model) SetSecrets(category models.Category, secrets []models.Secret) {
	m.category = category
	m.list.SetItems(buildItems(secrets))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Category() models.Category {
	return m.category
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
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddSecretMsg{Category: m.category} }
		case key.Matches(msg, m.keys.Favorite):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleFavoriteMsg{Category: m.category, ID: i.Secret.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteSecretMsg{Category: m.category, ID: i.Secret.ID} }
			}
		case key.Matches(msg, m.keys.Next):
			return m, func() tea.Msg { return NextCategoryMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
