package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/store"
	"github.com/gcosta/fightlog/internal/tui/components/dashboard"
	"github.com/gcosta/fightlog/internal/tui/components/secretlist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateInsights
	StateSecrets
	StateProfile
	StateCheckin
	StateAddSecret
	StateConfirmWrap
)

// CheckinFormModel backs the check-in wizard inputs. Numeric fields are
// strings because huh inputs are text; they are parsed on submit.
type CheckinFormModel struct {
	WakeUpTime    string
	SleepQuality  models.SleepQuality
	SleepHours    string
	HadDreams     bool
	WokeUpAtNight bool
	Mood          models.Mood
	Energy        string
	Pain          models.PainLevel
	Weight        string
	HeartRate     string
	Notes         string
}

type SecretFormModel struct {
	Category  models.Category
	Title     string
	Technique string
	Situation string
	Details   string
	Reminder  string
	Favorite  bool
}

type Model struct {
	store         *store.Store
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	dashboard     dashboard.Model
	secretsModel  secretlist.Model
	form          *huh.Form
	checkinForm   *CheckinFormModel
	secretForm    *SecretFormModel
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(s *store.Store) Model {
	m := Model{
		store:        s,
		state:        StateDashboard,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		dashboard:    dashboard.New(s.TodayActivities(), s.Today().CompletedActivities, 0, 0),
		secretsModel: newSecretsList(s, models.CategoryJiuJitsu),
	}
	if !s.HasCheckedInToday() {
		m.status = "Not checked in yet — press c on the dashboard."
	}
	return m
}

func newSecretsList(s *store.Store, category models.Category) secretlist.Model {
	secrets, _ := s.SecretsFor(category)
	return secretlist.New(category, secrets, 0, 0)
}

func (m *Model) refreshDashboard() {
	m.dashboard.SetActivities(m.store.TodayActivities(), m.store.Today().CompletedActivities)
}

func (m *Model) refreshSecrets(category models.Category) {
	secrets, _ := m.store.SecretsFor(category)
	m.secretsModel.SetSecrets(category, secrets)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
