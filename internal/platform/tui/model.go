package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-snake/internal/audio"
	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/records"
	"github.com/vovakirdan/retro-snake/internal/storage"
)

// History is the run log finished rounds are appended to.
// *storage.Store satisfies it.
type History interface {
	SaveRun(r storage.Run) (int64, error)
	TopRuns(mapID string, limit int) ([]storage.Run, error)
}

// Options configures a game session.
type Options struct {
	MapID      string
	Mode       snake.GameMode
	Seed       int64 // 0 = random based on time
	PlayerName string
	Width      int
	Height     int
	AutoStart  bool // Skip the title screen
	BackExits  bool // Esc on the title screen leaves the program
}

// Services are the collaborators of a session. Any of them may be nil.
type Services struct {
	Player  *audio.Player
	Book    *records.Book
	History History
	Logger  *log.Logger
}

type view int

const (
	viewGame view = iota
	viewNameEntry
	viewScores
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// Model is the Bubble Tea model that drives the snake engine.
type Model struct {
	engine    *snake.Engine
	state     snake.GameState
	screen    *core.Screen
	keyMapper *KeyMapper
	opts      Options

	player  *audio.Player
	book    *records.Book
	history History
	logger  *log.Logger
	now     func() time.Time

	view       view
	nameInput  textinput.Model
	scoreboard ScoreboardModel
	playerName string
	notice     string

	tickGen    int // Bumped whenever the running tick chain must stop
	roundStart time.Time
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for a game session.
func NewModel(opts Options, svc Services) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = snake.ScreenWidth, snake.ScreenHeight+1
	}
	if svc.Logger == nil {
		svc.Logger = log.New(io.Discard)
	}
	if svc.Player == nil {
		svc.Player = audio.NewPlayer(audio.Config{}, svc.Logger)
	}

	input := textinput.New()
	input.Placeholder = records.DefaultPlayerName
	input.CharLimit = 16
	input.Width = 20

	engine := snake.NewEngine(opts.Seed)
	now := time.Now
	return Model{
		engine:     engine,
		state:      engine.NewState(opts.MapID, opts.Mode, now()),
		screen:     core.NewScreen(opts.Width, max(opts.Height-1, 1)),
		keyMapper:  NewKeyMapper(),
		opts:       opts,
		player:     svc.Player,
		book:       svc.Book,
		history:    svc.History,
		logger:     svc.Logger,
		now:        now,
		nameInput:  input,
		playerName: opts.PlayerName,
	}
}

// startMsg starts the first round without waiting for Enter.
type startMsg struct{}

// Init starts the first round when AutoStart is set.
func (m Model) Init() tea.Cmd {
	if m.opts.AutoStart {
		return func() tea.Msg { return startMsg{} }
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.scoreboard = m.scoreboard.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case startMsg:
		return m.apply(core.ActionStart)

	case tea.KeyMsg:
		switch m.view {
		case viewNameEntry:
			return m.handleNameKey(msg)
		case viewScores:
			return m.handleScoresKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.view == viewNameEntry {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the game view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionMute:
		muted := m.player.ToggleMute()
		m.logger.Debug("mute toggled", "muted", muted)
		return m, nil
	case core.ActionScores:
		if m.state.Status == snake.StatusMenu || m.state.Status == snake.StatusGameOver {
			m.openScores()
		}
		return m, nil
	case core.ActionBack:
		if m.state.Status == snake.StatusMenu && m.opts.BackExits {
			m.back = true
			return m, tea.Quit
		}
	}

	return m.apply(action)
}

// apply runs action against the engine and reacts to the resulting transition.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	now := m.now()
	prev := m.state
	m.state = applyAction(m.engine, m.state, action, now)
	cmd := m.transition(prev, now)
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.state.Status != snake.StatusPlaying {
		return m, nil
	}

	now := m.now()
	prev := m.state
	m.state = m.engine.Tick(m.state, now)
	cmd := m.transition(prev, now)

	// Continue ticking at the interval the new state asks for
	if m.state.Status == snake.StatusPlaying {
		cmd = tickCmd(snake.TickInterval(m.state, now), m.tickGen)
	}
	return m, cmd
}

// transition starts or stops the tick chain and notifies collaborators
// after the state moved from prev to m.state.
func (m *Model) transition(prev snake.GameState, now time.Time) tea.Cmd {
	m.player.Observe(prev, m.state)
	if prev.Status != m.state.Status {
		m.logger.Debug("status changed", "from", prev.Status, "to", m.state.Status)
	}

	playing := m.state.Status == snake.StatusPlaying
	wasPlaying := prev.Status == snake.StatusPlaying
	switch {
	case playing && !wasPlaying:
		if prev.Status != snake.StatusPaused {
			m.roundStart = now
			m.notice = ""
			m.logger.Info("round started", "map", m.state.Round.MapID, "mode", m.state.Round.Mode)
		}
		m.tickGen++
		return tickCmd(snake.TickInterval(m.state, now), m.tickGen)

	case wasPlaying && !playing:
		m.tickGen++
		if m.state.Status == snake.StatusGameOver {
			return m.finishRound(now)
		}
	}
	return nil
}

// finishRound persists a finished round. Storage failures are logged and
// never interrupt the game.
func (m *Model) finishRound(now time.Time) tea.Cmd {
	s := m.state
	m.logger.Info("round over", "map", s.Round.MapID, "mode", s.Round.Mode, "score", s.Score, "level", s.Level)
	m.logger.Debug("final state", "state", snake.DebugString(s))

	if m.history != nil {
		run := storage.Run{
			MapID:    s.Round.MapID,
			Mode:     string(s.Round.Mode),
			Score:    s.Score,
			Level:    s.Level,
			Duration: now.Sub(m.roundStart),
		}
		if _, err := m.history.SaveRun(run); err != nil {
			m.logger.Warn("cannot save run", "error", err)
		}
	}

	if m.book == nil {
		return nil
	}

	if s.Round.MapID == snake.DailyMapID {
		rec, err := m.book.RecordDailyRun(s.Round.Date, s.Score, s.Level)
		if err != nil {
			m.logger.Warn("cannot save daily record", "date", s.Round.Date, "error", err)
		} else {
			m.notice = fmt.Sprintf("Daily best %d after %d attempts", rec.Score, rec.Attempts)
		}
	}

	entries, err := m.book.Highscores()
	if err != nil {
		m.logger.Warn("cannot read highscores", "error", err)
		return nil
	}
	if !records.IsHighscore(entries, s.Score) {
		return nil
	}

	m.view = viewNameEntry
	m.nameInput.SetValue(m.playerName)
	m.nameInput.CursorEnd()
	return m.nameInput.Focus()
}

// handleNameKey processes input while a highscore name is entered.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.nameInput.Blur()
		m.view = viewGame
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		_, rank, err := m.book.AddHighscore(name, m.state)
		switch {
		case err != nil:
			m.logger.Warn("cannot save highscore", "error", err)
			m.notice = "Highscore could not be saved"
		case rank > 0:
			m.notice = fmt.Sprintf("New highscore! Rank #%d", rank)
		}
		if name != "" {
			m.playerName = name
		}
		m.nameInput.Blur()
		m.view = viewGame
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// openScores switches to the embedded scoreboard.
func (m *Model) openScores() {
	m.scoreboard = NewScoreboardModel(m.book, m.history, m.screen.Width(), m.screen.Height()+1)
	m.scoreboard.embedded = true
	m.view = viewScores
}

// handleScoresKey forwards input to the scoreboard until it is closed.
func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	m.scoreboard = updated.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
		return m, nil
	}
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scoreboard.View()
	}

	snake.Render(m.screen, m.state, m.now())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	switch {
	case m.view == viewNameEntry:
		b.WriteString(noticeStyle.Render("New highscore! Name: "))
		b.WriteString(m.nameInput.View())
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	default:
		b.WriteString(footerStyle.Render(m.footer()))
	}
	return b.String()
}

// footer lists the keys that do something in the current status.
func (m Model) footer() string {
	var keys string
	switch m.state.Status {
	case snake.StatusPlaying:
		keys = "Arrows/WASD: Move  P: Pause  Esc: Menu"
	case snake.StatusPaused:
		keys = "P: Resume  Esc: Menu"
	default:
		keys = "Enter: Start  Tab: Map  G: Mode  H: Scores"
	}
	keys += "  N: Mute  Q: Quit"
	if m.player.Muted() {
		keys += "  [muted]"
	}
	return keys
}

// State returns the current game state.
func (m Model) State() snake.GameState {
	return m.state
}

// WantsBack returns true if the user left through Esc on the title screen.
func (m Model) WantsBack() bool {
	return m.back
}

// applyAction maps an input action to an engine command. Actions that make
// no sense in the current status leave the state unchanged.
func applyAction(e *snake.Engine, s snake.GameState, a core.Action, now time.Time) snake.GameState {
	if dir, ok := directionFor(a); ok {
		if s.Status != snake.StatusPlaying {
			return s
		}
		return snake.SetDirection(s, dir)
	}

	switch a {
	case core.ActionPause:
		return snake.TogglePause(s)
	case core.ActionStart:
		switch s.Status {
		case snake.StatusMenu, snake.StatusGameOver:
			return e.Start(s, now)
		case snake.StatusPaused:
			return snake.TogglePause(s)
		}
	case core.ActionBack:
		if s.Status != snake.StatusMenu {
			return e.Reset(s, now)
		}
	case core.ActionNextMap, core.ActionPrevMap:
		if s.Status == snake.StatusPlaying {
			return s
		}
		step := 1
		if a == core.ActionPrevMap {
			step = -1
		}
		return snake.SelectMap(s, cycleMapID(s.MapID, step))
	case core.ActionNextMode:
		if s.Status == snake.StatusPlaying {
			return s
		}
		return snake.SelectMode(s, nextMode(s.Mode))
	}
	return s
}

// cycleMapID returns the map id step places away from id, wrapping around.
func cycleMapID(id string, step int) string {
	ids := snake.MapIDs()
	i := 0
	for j, candidate := range ids {
		if candidate == id {
			i = j
			break
		}
	}
	return ids[((i+step)%len(ids)+len(ids))%len(ids)]
}

// nextMode returns the mode after m in catalog order.
func nextMode(m snake.GameMode) snake.GameMode {
	modes := snake.Modes()
	for i, info := range modes {
		if info.ID == m {
			return modes[(i+1)%len(modes)].ID
		}
	}
	return modes[0].ID
}

// Result reports how a session ended.
type Result struct {
	Back  bool // Left via Esc on the title screen
	State snake.GameState
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options, svc Services) (Result, error) {
	model := NewModel(opts, svc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Back: m.WantsBack(), State: m.State()}, nil
}
