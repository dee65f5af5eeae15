package slips

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"adviceslip/internal/app/bus"
	"adviceslip/internal/app/navigation"
	"adviceslip/internal/app/ui/components"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// Static copy shown around the advice card
const (
	Title       = "Advice Slip"
	Subtitle    = "Discover and search for wisdom from over 10 million advice"
	Placeholder = "Search for advice..."
)

// Model represents the Bubble Tea model for the slips UI
type Model struct {
	ctx        context.Context
	bus        bus.Bus
	controller Controller
	nav        *navigation.Controller
	msgChan    <-chan bus.Message

	state struct {
		latestRequest uint64
		direction     components.Direction
		query         string
	}

	ui struct {
		width   int
		height  int
		ready   bool
		animate bool
		keys    KeyMap
		help    help.Model
		search  textinput.Model
		spinner spinner.Model
		slide   *components.Slide
		tip     string
	}

	log logger.Logger
}

// NewModel creates a new slips UI model and requests the first random slip
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	b bus.Bus,
	controller Controller,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")
	msgChan := b.Subscribe(ctx)

	log.Debug().Msg("Created model and subscribed to events")

	m := Model{
		ctx:        ctx,
		bus:        b,
		controller: controller,
		nav:        navigation.NewController(log),
		msgChan:    msgChan,
		log:        log,
	}

	search := textinput.New()
	search.Placeholder = Placeholder
	search.CharLimit = components.SearchInputLimit
	search.Width = components.CardMaxWidth - components.CardChromeWidth

	m.ui.animate = cfg.UI.Animate
	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.search = search
	m.ui.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(components.SpinnerStyle))
	m.ui.slide = components.NewSlide(m.cardWidth() / 2)
	m.ui.tip = components.RandomTip()

	m.state.direction = components.Forward
	m.state.latestRequest = controller.FetchRandom()

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.ui.spinner.Tick,
		waitForMsgCmd(m.msgChan),
	)
}

// cardWidth returns the width of the advice card for the current terminal size
func (m Model) cardWidth() int {
	if m.ui.width == 0 {
		return components.CardMaxWidth
	}

	return components.Clamp(m.ui.width-components.CardChromeWidth, components.CardMinWidth, components.CardMaxWidth)
}

// Navigation exposes the navigation state for rendering outside the model
func (m Model) Navigation() navigation.ViewModel {
	return m.nav.View()
}
