package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"pageswipe/internal/carousel"
	"pageswipe/internal/config"
	"pageswipe/internal/domain"
	"pageswipe/internal/eventbus"
	"pageswipe/internal/ui/input"
	inputtypes "pageswipe/internal/ui/input/types"
	"pageswipe/internal/ui/views"
)

// Rows taken by the help box border and padding
const helpBoxChrome = 4

// Options configures a Model
type Options struct {
	Pages   []domain.Page
	Config  *config.Config
	Bus     eventbus.EventBus
	Logger  *logrus.Logger
	StartAt int // 1-based page to focus first; 0 keeps the first page
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	log      *logrus.Entry
	carousel *carousel.Carousel
	pages    []domain.Page

	// UI-specific state
	width         int
	height        int
	help          help.Model
	ease          Easing
	ticking       bool
	helpScroll    int
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pagerOps     *PagerOps

	unsubscribe []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	params, err := cfg.CarouselParams()
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeyMap()
	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		pages:        opts.Pages,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		inputHandler: input.New(keys),
		pagerOps:     NewPagerOps(),
	}
	m.inputHandler.Mouse = cfg.UI.Mouse

	observers := carousel.MultiObserver{
		carousel.ObserverFuncs{
			PageTurn: func(int) { m.statusMessage = "" },
		},
	}
	var busObserver *eventbus.Observer
	if opts.Bus != nil {
		busObserver = eventbus.NewObserver(opts.Bus, "")
		observers = append(observers, busObserver)
	}

	c, err := carousel.New(len(opts.Pages),
		carousel.WithParams(params),
		carousel.WithObserver(observers),
		carousel.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if busObserver != nil {
		busObserver.CarouselID = c.ID()
	}
	m.carousel = c
	m.log = logger.WithField("carousel", c.ID())

	if opts.StartAt > 1 && opts.StartAt <= len(opts.Pages) {
		c.JumpTo(opts.StartAt)
	}
	return m, nil
}

// Carousel returns the carousel driven by this model
func (m *Model) Carousel() *carousel.Carousel {
	return m.carousel
}

// Pages returns the current page set
func (m *Model) Pages() []domain.Page {
	return m.pages
}

// SetProgram sets the program reference for terminal management and
// forwards background events into the update loop
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)

	if m.bus == nil || p == nil {
		return
	}
	m.unsubscribe = append(m.unsubscribe,
		m.bus.Subscribe(eventbus.EventPagesChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.PagesChangedEvent); ok {
				p.Send(pagesChangedMsg{pages: ev.Pages})
			}
		}),
		m.bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ErrorEvent); ok {
				// May be published from inside Update, so never block here
				go p.Send(errorMsg{message: ev.Message, err: ev.Err})
			}
		}),
	)
}

// Close drops the bus subscriptions made by SetProgram
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.carousel.SetContainerWidth(float64(msg.Width))
		m.ease.Snap(m.targetShift())
		return m, nil

	case tea.KeyMsg, tea.MouseMsg, tea.BlurMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions := m.inputHandler.Handle(msg, input.TargetContext{Target: m.carousel})
		rest := input.DispatchAll(m.carousel, actions)

		var cmds []tea.Cmd
		for _, action := range rest {
			cmds = append(cmds, m.processAction(action))
		}
		cmds = append(cmds, m.retarget())
		return m, tea.Batch(cmds...)

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode || !m.ease.Step() {
			m.ticking = false
			return m, nil
		}
		return m, tick()

	case pagesChangedMsg:
		if len(msg.pages) == 0 {
			return m, nil
		}
		if err := m.carousel.SetPageCount(len(msg.pages)); err != nil {
			m.log.WithError(err).Warn("page set rejected")
			return m, nil
		}
		m.pages = msg.pages
		m.ease.Snap(m.targetShift())
		return m, m.flash(fmt.Sprintf("%d pages", len(msg.pages)))

	case errorMsg:
		m.log.WithError(msg.err).Warn(msg.message)
		return m, m.flash(msg.message)

	case pagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("page", msg.name).Warn("pager failed")
			return m, m.flash(fmt.Sprintf("Failed to open %s", msg.name))
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

// processAction runs actions the carousel did not consume
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeHelp {
			m.helpScroll = 0
		}

	case inputtypes.HelpScrollAction:
		limit := m.helpRenderer.maxScroll(m.helpHeight())
		m.helpScroll = min(max(m.helpScroll+a.Delta, 0), limit)

	case inputtypes.OpenPageAction:
		return m.openPage()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// openPage returns a command that shows the focused page in the ov pager
func (m *Model) openPage() tea.Cmd {
	idx := m.carousel.State().FocusedIndex - 1
	if idx < 0 || idx >= len(m.pages) {
		return nil
	}
	page := m.pages[idx]
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pagerOps.ShowPage(page)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{name: page.Name, err: err}
	}
}

// retarget points the easing at the current frame. Drags are followed
// exactly; settling after release and key turns are eased.
func (m *Model) retarget() tea.Cmd {
	target := m.targetShift()
	if !m.config.UI.Animate || m.carousel.State().Dragging() {
		m.ease.Snap(target)
		return nil
	}
	if !m.ease.SetTarget(target) || m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *Model) targetShift() float64 {
	f := m.carousel.View()
	return views.StripShift(f.OffsetPercent, f.LiveOffset, f.PageCount, m.width)
}

func (m *Model) flash(message string) tea.Cmd {
	m.statusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) helpHeight() int {
	return max(m.height-helpBoxChrome-views.Chrome, 1)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	showHelp := m.inputHandler.CurrentMode() == inputtypes.ModeHelp
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Pages:         m.pages,
		Frame:         m.carousel.View(),
		Shift:         m.ease.Shown(),
		StatusMessage: m.statusMessage,
		ShowHelp:      showHelp,
		HelpModel:     m.help,
		HelpKeys:      m.inputHandler.Keys(),
	}
	if showHelp {
		state.HelpContent = m.helpRenderer.renderHelpContent(m.helpHeight(), m.helpScroll)
	}
	return m.renderer.Render(state)
}
