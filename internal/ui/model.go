package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pricegrip/internal/config"
	"pricegrip/internal/domain"
	"pricegrip/internal/eventbus"
	"pricegrip/internal/sanitize"
	"pricegrip/internal/ui/input"
	inputtypes "pricegrip/internal/ui/input/types"
	"pricegrip/internal/ui/state"
	"pricegrip/internal/ui/views"
)

// HintPlaceholder replaces the search placeholder for a moment after startup
const HintPlaceholder = `Try searching for "RTX 4070" or "iPhone 15"...`

const (
	stepInterval  = 800 * time.Millisecond
	noticeExit    = 300 * time.Millisecond
	hintDelay     = 2 * time.Second
	hintDuration  = 3 * time.Second
	defaultError  = 5 * time.Second
	defaultNotice = 3 * time.Second
)

// Controller is the part of the query controller the model drives
type Controller interface {
	OnSearchSubmit(ctx context.Context, queryText string)
	OnFilterControlChange(filter domain.FilterState)
	OnReset() domain.FilterState
	OnCopyLink(link string)
	Cancel()
}

// Options configures a Model
type Options struct {
	InitialQuery string
	Logger       *slog.Logger
	Opener       LinkOpener
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	ctrl   Controller
	config *config.Config
	state  *state.AppState // centralized state
	log    *slog.Logger

	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager
	opener       LinkOpener

	initialQuery string
	quitting     bool
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, ctrl Controller, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opener := opts.Opener
	if opener == nil {
		opener = NewBrowserOpener()
	}

	return &Model{
		ctx:          ctx,
		ctrl:         ctrl,
		config:       cfg,
		state:        state.NewAppState(),
		log:          logger.With("component", "ui"),
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(cfg.UISettings.Currency),
		inputHandler: input.New(),
		pager:        NewPager(cfg.UISettings.Currency),
		opener:       opener,
		initialQuery: opts.InitialQuery,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if strings.TrimSpace(m.initialQuery) != "" {
		return m.submitSearch(m.initialQuery)
	}

	// Start with the search field focused
	cmds := []tea.Cmd{m.inputHandler.ChangeMode(inputtypes.ModeSearch, "", m)}
	if m.config.UISettings.ShowHints {
		cmds = append(cmds, tea.Tick(hintDelay, func(time.Time) tea.Msg { return hintShowMsg{} }))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case EventMsg:
		cmd := m.handleEvent(msg.Event)
		m.updateViewportHeight()
		return m, cmd

	case searchDoneMsg:
		m.log.Debug("search call returned", "query", msg.query)
		return m, nil

	case stepMsg:
		if m.state.Searching && msg.generation == m.state.Status.Generation && m.state.StepIndex <= len(views.LoadingSteps) {
			m.state.StepIndex++
			return m, stepTick(msg.generation)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dismissErrorMsg:
		if msg.id == m.state.ErrorID {
			m.state.ErrorMessage = ""
			m.updateViewportHeight()
		}
		return m, nil

	case noticeLeavingMsg:
		if msg.id != m.state.NoticeID || m.state.Notice == "" {
			return m, nil
		}
		m.state.NoticeLeaving = true
		id := msg.id
		return m, tea.Tick(noticeExit, func(time.Time) tea.Msg { return dismissNoticeMsg{id: id} })

	case dismissNoticeMsg:
		if msg.id == m.state.NoticeID {
			m.state.Notice = ""
			m.state.NoticeLeaving = false
		}
		return m, nil

	case hintShowMsg:
		if m.state.Query == "" && m.currentText() == "" {
			m.state.ShowHint = true
			m.inputHandler.SetPlaceholder(HintPlaceholder)
			return m, tea.Tick(hintDuration, func(time.Time) tea.Msg { return hintHideMsg{} })
		}
		return m, nil

	case hintHideMsg:
		m.state.ShowHint = false
		m.inputHandler.SetPlaceholder(input.DefaultPlaceholder)
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.log.Warn("open link failed", "error", msg.err)
			return m, m.notify("Failed to open link", domain.SeverityError)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", "error", msg.err)
			return m, m.notify("Failed to open pager", domain.SeverityError)
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	vs := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Query:           m.state.Query,
		Placeholder:     m.inputHandler.Placeholder(),
		Searching:       m.state.Searching,
		Status:          m.state.Status,
		StepIndex:       m.state.StepIndex,
		HasResults:      m.state.HasResults,
		Page:            m.state.Page,
		SelectedIndex:   m.state.SelectedIndex,
		ViewportOffset:  m.state.ViewportOffset,
		ViewportHeight:  m.state.ViewportHeight,
		Trending:        m.state.Trending,
		TrendingVisible: m.state.TrendingVisible,
		Store:           m.state.Store,
		Sort:            m.state.Sort,
		MinText:         m.state.MinText,
		MaxText:         m.state.MaxText,
		ErrorMessage:    m.state.ErrorMessage,
		Notice:          m.state.Notice,
		NoticeSeverity:  m.state.NoticeSeverity,
		NoticeLeaving:   m.state.NoticeLeaving,
		ShowHelp:        m.state.ShowHelp,
		HelpModel:       m.help,
	}
	if m.state.Searching {
		vs.SpinnerView = m.spinner.View()
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputMode = m.inputHandler.CurrentMode().String()
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.TextInput = ti.View()
	}
	return vs
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	before := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, m)

	after := m.inputHandler.CurrentMode()
	if after != before && (after == inputtypes.ModeMinPrice || after == inputtypes.ModeMaxPrice) {
		m.state.EditBase = m.FieldText(after)
	}

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		switch a.Mode {
		case inputtypes.ModeMinPrice:
			m.state.MinText = a.Text
			m.applyFilter()
		case inputtypes.ModeMaxPrice:
			m.state.MaxText = a.Text
			m.applyFilter()
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			return m.submitSearch(a.Text)
		case inputtypes.ModeMinPrice, inputtypes.ModeMaxPrice:
			m.state.EditBase = ""
		}

	case inputtypes.CancelTextAction:
		switch a.Mode {
		case inputtypes.ModeMinPrice:
			m.state.MinText = m.state.EditBase
			m.applyFilter()
		case inputtypes.ModeMaxPrice:
			m.state.MaxText = m.state.EditBase
			m.applyFilter()
		}
		m.state.EditBase = ""

	case inputtypes.PickTrendingAction:
		if a.Index < 0 || a.Index >= len(m.state.Trending) {
			return nil
		}
		return m.submitSearch(m.state.Trending[a.Index].ProductName)

	case inputtypes.CycleStoreAction:
		m.state.CycleStore(a.Delta)
		m.applyFilter()

	case inputtypes.CycleSortAction:
		m.state.CycleSort(a.Delta)
		m.applyFilter()

	case inputtypes.ResetFiltersAction:
		m.state.ApplyFilter(m.ctrl.OnReset())

	case inputtypes.OpenLinkAction:
		link := m.SelectedLink()
		if link == "" {
			return nil
		}
		opener := m.opener
		return func() tea.Msg {
			return linkOpenedMsg{err: opener.Open(link)}
		}

	case inputtypes.CopyLinkAction:
		product, ok := m.state.SelectedProduct()
		if !ok {
			return nil
		}
		// the clipboard gets the link as delivered; only opening is restricted
		link := product.Link
		ctrl := m.ctrl
		return func() tea.Msg {
			ctrl.OnCopyLink(link)
			return nil
		}

	case inputtypes.OpenPagerAction:
		page := m.state.Page
		pager := m.pager
		return func() tea.Msg {
			return pagerMsg{err: pager.Show(page)}
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		m.ctrl.Cancel()
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchStartedEvent:
		m.state.Searching = true
		m.state.Status = e.Status
		m.state.StepIndex = 0
		m.state.ErrorMessage = ""
		return tea.Batch(m.spinner.Tick, stepTick(e.Status.Generation))

	case eventbus.ResultsReadyEvent:
		m.state.Searching = false
		m.state.HasResults = true
		m.state.SetPage(e.Page, true)

	case eventbus.ViewUpdatedEvent:
		m.state.SetPage(e.Page, false)

	case eventbus.SearchFailedEvent:
		m.state.Searching = false
		m.state.ErrorID++
		m.state.ErrorMessage = e.Message
		id := m.state.ErrorID
		return tea.Tick(m.errorTimeout(), func(time.Time) tea.Msg { return dismissErrorMsg{id: id} })

	case eventbus.TrendingLoadedEvent:
		m.state.Trending = e.Terms
		m.state.TrendingVisible = len(e.Terms) > 0
		m.state.TrendingLoaded = true

	case eventbus.TrendingUnavailableEvent:
		m.state.TrendingVisible = false
		m.state.TrendingLoaded = true

	case eventbus.NotificationEvent:
		return m.notify(e.Message, e.Severity)
	}
	return nil
}

// submitSearch runs the search on a command goroutine; the display events
// come back through the bus. text reaches the controller untrimmed.
func (m *Model) submitSearch(text string) tea.Cmd {
	query := strings.TrimSpace(text)
	if query != "" {
		m.state.Query = query
		m.state.ShowHint = false
	}
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctrl.OnSearchSubmit(ctx, text)
		return searchDoneMsg{query: query}
	}
}

func (m *Model) applyFilter() {
	m.ctrl.OnFilterControlChange(m.state.Filter())
}

func (m *Model) notify(message string, severity domain.Severity) tea.Cmd {
	m.state.NoticeID++
	m.state.Notice = message
	m.state.NoticeSeverity = severity
	m.state.NoticeLeaving = false
	id := m.state.NoticeID
	return tea.Tick(m.noticeTimeout(), func(time.Time) tea.Msg { return noticeLeavingMsg{id: id} })
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.Move(-1)
	case "down":
		m.state.Move(1)
	case "pageup":
		m.state.Move(-m.state.ViewportHeight)
	case "pagedown":
		m.state.Move(m.state.ViewportHeight)
	case "home":
		m.state.MoveTo(0)
	case "end":
		m.state.MoveTo(len(m.state.Page.Products) - 1)
	}
}

// updateViewportHeight calculates how many product cards fit on screen
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	available := m.height - views.ReservedLines(m.buildViewState())
	cards := (available + 1) / views.CardHeight
	if cards < 1 {
		cards = 1
	}
	m.state.ViewportHeight = cards
	m.state.EnsureSelectedVisible()
}

func (m *Model) currentText() string {
	if ti := m.inputHandler.TextInput(); ti != nil {
		return ti.Value()
	}
	return ""
}

func (m *Model) errorTimeout() time.Duration {
	if d := m.config.UISettings.ErrorTimeout.Duration; d > 0 {
		return d
	}
	return defaultError
}

func (m *Model) noticeTimeout() time.Duration {
	if d := m.config.UISettings.NotificationTimeout.Duration; d > 0 {
		return d
	}
	return defaultNotice
}

func stepTick(generation uint64) tea.Cmd {
	return tea.Tick(stepInterval, func(time.Time) tea.Msg {
		return stepMsg{generation: generation}
	})
}

// Input context

func (m *Model) HasResults() bool {
	return len(m.state.Page.Products) > 0
}

func (m *Model) SelectedLink() string {
	product, ok := m.state.SelectedProduct()
	if !ok {
		return ""
	}
	return sanitize.Link(product.Link)
}

func (m *Model) TrendingCount() int {
	if !m.state.TrendingVisible {
		return 0
	}
	return len(m.state.Trending)
}

func (m *Model) Searching() bool {
	return m.state.Searching
}

func (m *Model) ShowingHelp() bool {
	return m.state.ShowHelp
}

func (m *Model) FieldText(mode inputtypes.Mode) string {
	switch mode {
	case inputtypes.ModeSearch:
		return m.state.Query
	case inputtypes.ModeMinPrice:
		return m.state.MinText
	case inputtypes.ModeMaxPrice:
		return m.state.MaxText
	}
	return ""
}
