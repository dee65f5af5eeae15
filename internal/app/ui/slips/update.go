package slips

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/bus"
	"adviceslip/internal/app/navigation"
	"adviceslip/internal/app/ui/components"
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// animationTickMsg signals a slide animation frame
type animationTickMsg time.Time

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.search.Width = m.cardWidth() - components.CardChromeWidth
		m.ui.slide = components.NewSlide(m.cardWidth() / 2)
		m.ui.ready = true

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.ui.spinner, cmd = m.ui.spinner.Update(msg)

		return m, cmd

	case animationTickMsg:
		m.ui.slide.Update()
		if m.ui.slide.IsActive() {
			return m, animationTickCmd()
		}

		return m, nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("TUI: Event channel closed, quitting")

		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Warn().Msg("TUI: Force quit requested, exiting immediately")

		return m, tea.Quit
	}

	if m.ui.search.Focused() {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		return m, nil

	case key.Matches(msg, m.ui.keys.Search):
		return m, m.ui.search.Focus()
	}

	if m.nav.IsLoading() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.ui.keys.Prev):
		return m.navigate(components.Backward)

	case key.Matches(msg, m.ui.keys.Next):
		return m.navigate(components.Forward)

	case key.Matches(msg, m.ui.keys.Refresh):
		return m.refresh()
	}

	return m, nil
}

// handleSearchInput routes keys to the focused search box
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Submit):
		return m.submitSearch()

	case key.Matches(msg, m.ui.keys.Cancel):
		m.ui.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd

	m.ui.search, cmd = m.ui.search.Update(msg)

	return m, cmd
}

// submitSearch sends the typed query unless it is blank or a fetch is outstanding
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	query, err := advice.NormalizeQuery(m.ui.search.Value())
	if err != nil {
		m.log.Debug().Msg("TUI: Ignoring blank search")
		return m, nil
	}

	if m.nav.IsLoading() {
		return m, nil
	}

	m.ui.search.Blur()
	m.nav.BeginLoad()
	m.state.direction = components.Forward
	m.state.latestRequest = m.controller.Search(query)

	return m, nil
}

// navigate handles prev/next: a new random slip in random mode, a cursor move in search mode
func (m Model) navigate(direction components.Direction) (tea.Model, tea.Cmd) {
	if m.nav.Mode() == navigation.ModeRandom {
		m.nav.BeginLoad()
		m.state.direction = direction
		m.state.latestRequest = m.controller.FetchRandom()

		return m, nil
	}

	if !m.nav.Advance(int(direction)) {
		return m, nil
	}

	return m, m.startSlide(direction)
}

// refresh leaves search mode and fetches a random slip
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.nav.ResetToRandom()
	m.state.query = ""
	m.state.direction = components.Forward
	m.state.latestRequest = m.controller.FetchRandom()

	return m, nil
}

// handleMessage dispatches bus messages to specific handlers
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case bus.EventRandomLoaded:
		m, cmd = m.handleRandomLoaded(msg)
	case bus.EventSearchLoaded:
		m, cmd = m.handleSearchLoaded(msg)
	case bus.EventFetchFailed:
		m = m.handleFetchFailed(msg)
	}

	return m, tea.Batch(cmd, waitForMsgCmd(m.msgChan))
}

// handleRandomLoaded shows a fetched random slip if it answers the latest request
func (m Model) handleRandomLoaded(msg bus.Message) (Model, tea.Cmd) {
	data, ok := msg.Data.(bus.RandomLoaded)
	if !ok {
		m.log.Error().Msg("TUI: Failed to cast RandomLoaded")
		return m, nil
	}

	if m.isStale(data.RequestID) {
		return m, nil
	}

	m.nav.CompleteRandomLoad(data.Item)

	return m, m.startSlide(m.state.direction)
}

// handleSearchLoaded shows fetched search results if they answer the latest request
func (m Model) handleSearchLoaded(msg bus.Message) (Model, tea.Cmd) {
	data, ok := msg.Data.(bus.SearchLoaded)
	if !ok {
		m.log.Error().Msg("TUI: Failed to cast SearchLoaded")
		return m, nil
	}

	if m.isStale(data.RequestID) {
		return m, nil
	}

	m.log.Debug().Msgf("TUI: Search %q returned %d results", data.Query, len(data.Results))
	m.nav.CompleteSearchLoad(data.Results)
	m.state.query = data.Query

	return m, m.startSlide(m.state.direction)
}

// handleFetchFailed abandons the outstanding load
func (m Model) handleFetchFailed(msg bus.Message) Model {
	data, ok := msg.Data.(bus.FetchFailed)
	if !ok {
		m.log.Error().Msg("TUI: Failed to cast FetchFailed")
		return m
	}

	if m.isStale(data.RequestID) {
		return m
	}

	m.log.Warn().Err(data.Error).Msg("TUI: Fetch failed")
	m.nav.FailLoad()

	return m
}

// isStale reports whether a response belongs to a superseded request
func (m Model) isStale(requestID uint64) bool {
	if requestID == m.state.latestRequest {
		return false
	}

	m.log.Debug().Msgf("TUI: Dropping response for request %d, latest is %d", requestID, m.state.latestRequest)

	return true
}

// startSlide begins a card transition and returns the tick command when a new animation loop is needed
func (m Model) startSlide(direction components.Direction) tea.Cmd {
	if !m.ui.animate {
		return nil
	}

	running := m.ui.slide.IsActive()
	m.ui.slide.Start(direction)

	if running || !m.ui.slide.IsActive() {
		return nil
	}

	return animationTickCmd()
}

// animationTickCmd schedules the next slide animation frame
func animationTickCmd() tea.Cmd {
	return tea.Tick(components.AnimationTickInterval, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// waitForMsgCmd waits for the next bus message
func waitForMsgCmd(ch <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}
