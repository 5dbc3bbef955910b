package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/ghclient"
	"github.com/hal/devprofile/internal/history"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
	"github.com/hal/devprofile/internal/prefs"
	"github.com/hal/devprofile/internal/search"
)

// mode represents which screen the TUI is showing.
type mode int

const (
	modeInput mode = iota
	modeLoading
	modeResults
	modeError
	modeHistory
)

// Searcher is the slice of the search engine the TUI needs.
type Searcher interface {
	Search(ctx context.Context, handle string) (*search.Result, error)
}

var _ Searcher = (*search.Engine)(nil)

// resultMsg carries a finished lookup back into the model. The seq field
// identifies which search initiated it.
type resultMsg struct {
	seq    int
	handle string
	result *search.Result
	err    error
}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// Model is the Bubble Tea model for the interactive profile viewer.
type Model struct {
	searcher Searcher
	history  *history.Store
	prefs    *prefs.Store

	mode    mode
	input   textinput.Model
	spinner spinner.Model

	// seq is incremented every time a search is initiated. A resultMsg
	// whose seq does not match is from a superseded search and must not
	// touch displayed state, regardless of arrival order.
	seq int

	handle  string // handle of the displayed (or in-flight) search
	result  *search.Result
	visible []model.Repository
	filter  model.FilterSpec
	langs   []string
	langIdx int // -1 = all languages
	cursor  int

	theme  model.Theme
	styles styleSet

	recent        []string
	historyCursor int

	limit        int
	err          error
	statusMsg    string
	windowWidth  int
	windowHeight int
	quitting     bool
}

// ModelOption is a functional option for configuring a Model.
type ModelOption func(*Model)

// WithInitialHandle starts the TUI with a search already in flight.
func WithInitialHandle(handle string) ModelOption {
	return func(m *Model) {
		m.handle = handle
	}
}

// WithDisplayLimit caps how many repositories the result list shows.
func WithDisplayLimit(n int) ModelOption {
	return func(m *Model) {
		if n > 0 {
			m.limit = n
		}
	}
}

// NewModel creates a new TUI model.
func NewModel(searcher Searcher, hist *history.Store, prefStore *prefs.Store, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Placeholder = "GitHub handle"
	ti.CharLimit = constants.MaxHandleLength
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		searcher: searcher,
		history:  hist,
		prefs:    prefStore,
		mode:     modeInput,
		input:    ti,
		spinner:  s,
		langIdx:  -1,
		limit:    constants.DefaultDisplayLimit,
		filter:   model.FilterSpec{}.Normalize(),
	}

	if prefStore != nil {
		m.theme = prefStore.Theme()
	} else {
		m.theme = model.ThemeLight
	}
	m.styles = newStyles(m.theme)
	if hist != nil {
		m.recent = hist.Load()
	}

	for _, opt := range opts {
		opt(&m)
	}

	// An initial handle starts with a search already in flight; Init
	// cannot mutate the model, so the state is armed here.
	if m.handle != "" {
		m.seq = 1
		m.mode = modeLoading
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.mode == modeLoading {
		cmds = append(cmds, searchCmd(m.searcher, m.seq, m.handle))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		return m.commitResult(msg)

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	if m.mode == modeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startSearch initiates a lookup for handle. It bumps the sequence number
// so that any result still in flight from an earlier search is ignored
// when it lands.
func (m Model) startSearch(handle string) (Model, tea.Cmd) {
	m.seq++
	m.handle = handle
	m.mode = modeLoading
	m.err = nil
	return m, searchCmd(m.searcher, m.seq, handle)
}

func searchCmd(s Searcher, seq int, handle string) tea.Cmd {
	return func() tea.Msg {
		result, err := s.Search(context.Background(), handle)
		return resultMsg{seq: seq, handle: handle, result: result, err: err}
	}
}

// commitResult folds a finished lookup into displayed state. Only the
// most recently initiated search may commit.
func (m Model) commitResult(msg resultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		log.Debug("dropping superseded result", "handle", msg.handle, "seq", msg.seq, "current", m.seq)
		return m, nil
	}

	if msg.err != nil {
		m.err = msg.err
		m.mode = modeError
		return m, nil
	}

	m.result = msg.result
	m.handle = msg.handle
	m.filter = model.FilterSpec{}.Normalize()
	m.langs = search.Languages(msg.result.Repos)
	m.langIdx = -1
	m.cursor = 0
	m.applyFilter()
	m.mode = modeResults

	if m.history != nil {
		if err := m.history.Record(msg.handle); err != nil {
			log.Warn("failed to record history", "error", err)
		}
		m.recent = m.history.Load()
	}
	if m.prefs != nil {
		if err := m.prefs.SetLastHandle(msg.handle); err != nil {
			log.Warn("failed to save last handle", "error", err)
		}
	}

	return m, nil
}

// applyFilter recomputes the visible repository list from the committed
// result and the current filter spec.
func (m *Model) applyFilter() {
	if m.result == nil {
		m.visible = nil
		return
	}
	m.visible = search.Apply(m.result.Repos, m.filter, m.limit)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings first.
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+t":
		return m.toggleTheme()
	}

	switch m.mode {
	case modeInput:
		return m.handleInputKey(msg)
	case modeLoading:
		return m.handleLoadingKey(msg)
	case modeResults:
		return m.handleResultsKey(msg)
	case modeError:
		return m.handleErrorKey(msg)
	case modeHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		handle := m.input.Value()
		if err := search.ValidateHandle(handle); err != nil {
			m.err = err
			m.mode = modeError
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.startSearch(handle)
		return m, cmd

	case "tab":
		if len(m.recent) > 0 {
			m.mode = modeHistory
			m.historyCursor = 0
		}
		return m, nil

	case "esc":
		if m.result != nil {
			m.mode = modeResults
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleLoadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "/":
		// A new search may be typed while the old one is still in
		// flight; its result will be dropped by the seq guard.
		m.mode = modeInput
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	if cmd := m.historyShortcut(msg.String()); cmd != nil {
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.mode = modeInput
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
		return m, nil

	case "l":
		return m.cycleLanguage()

	case "s":
		return m.cycleSortKey()

	case "o":
		m.filter.Order = m.filter.Order.Flip()
		m.applyFilter()
		return m, nil

	case "h":
		if len(m.recent) > 0 {
			m.mode = modeHistory
			m.historyCursor = 0
		}
		return m, nil

	case "r":
		var cmd tea.Cmd
		m, cmd = m.startSearch(m.handle)
		return m, cmd

	case "enter":
		return m.openSelected()
	}

	if cmd := m.historyShortcut(msg.String()); cmd != nil {
		return m, cmd
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter", "/":
		m.mode = modeInput
		m.input.SetValue("")
		m.input.Focus()
		m.err = nil
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "h":
		if m.result != nil {
			m.mode = modeResults
		} else {
			m.mode = modeInput
		}
		return m, nil

	case "j", "down":
		if m.historyCursor < len(m.recent)-1 {
			m.historyCursor++
		}
		return m, nil

	case "k", "up":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
		return m, nil

	case "enter":
		if len(m.recent) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.startSearch(m.recent[m.historyCursor])
		return m, cmd
	}

	if cmd := m.historyShortcut(msg.String()); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// historyShortcut maps the number keys 1-5 to re-running a recent search.
// It returns nil when the key is not a usable shortcut.
func (m *Model) historyShortcut(key string) tea.Cmd {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > constants.HistorySize || n > len(m.recent) {
		return nil
	}
	var cmd tea.Cmd
	*m, cmd = m.startSearch(m.recent[n-1])
	return cmd
}

func (m Model) cycleLanguage() (tea.Model, tea.Cmd) {
	if len(m.langs) == 0 {
		return m, nil
	}
	m.langIdx++
	if m.langIdx >= len(m.langs) {
		m.langIdx = -1
		m.filter.Language = ""
	} else {
		m.filter.Language = m.langs[m.langIdx]
	}
	m.cursor = 0
	m.applyFilter()
	return m, nil
}

func (m Model) cycleSortKey() (tea.Model, tea.Cmd) {
	keys := model.AllSortKeys
	for i, k := range keys {
		if k == m.filter.SortBy {
			m.filter.SortBy = keys[(i+1)%len(keys)]
			break
		}
	}
	m.cursor = 0
	m.applyFilter()
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == model.ThemeDark {
		m.theme = model.ThemeLight
	} else {
		m.theme = model.ThemeDark
	}
	m.styles = newStyles(m.theme)
	if m.prefs != nil {
		if err := m.prefs.SetTheme(m.theme); err != nil {
			log.Warn("failed to save theme", "error", err)
		}
	}
	m.statusMsg = fmt.Sprintf("Theme: %s", m.theme)
	return m, clearStatusAfter(2 * time.Second)
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	url := m.visible[m.cursor].HTMLURL
	if url == "" {
		return m, nil
	}
	return m, openURL(url)
}

// errorMessage maps the error taxonomy to a line a user can act on.
func errorMessage(err error) string {
	var invalid *search.InvalidHandleError
	if errors.As(err, &invalid) {
		return fmt.Sprintf("Invalid handle %q: %s", invalid.Handle, invalid.Reason)
	}
	var notFound *ghclient.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("No GitHub user named %q", notFound.Handle)
	}
	if errors.Is(err, ghclient.ErrRateLimited) {
		return "GitHub API rate limit reached. Try again later or set a token."
	}
	var upstream *ghclient.UpstreamError
	if errors.As(err, &upstream) {
		return fmt.Sprintf("GitHub returned HTTP %d. Try again shortly.", upstream.StatusCode)
	}
	var unreachable *ghclient.UnreachableError
	if errors.As(err, &unreachable) {
		return "Could not reach GitHub. Check your network connection."
	}
	return err.Error()
}

// clearStatusAfter returns a command that clears the status after a delay.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// openURL opens a URL in the default browser.
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd

		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "linux":
			cmd = exec.Command("xdg-open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			return nil
		}

		_ = cmd.Start()
		return nil
	}
}
