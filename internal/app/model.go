// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/journeyq/dashboard/internal/config"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/pointer"
	"github.com/journeyq/dashboard/internal/selectmenu"
	"github.com/journeyq/dashboard/internal/session"
	"github.com/journeyq/dashboard/internal/toast"
	"github.com/journeyq/dashboard/internal/types"
	"github.com/journeyq/dashboard/internal/ui/dropdown"
	"github.com/journeyq/dashboard/internal/ui/overlay"
	"github.com/journeyq/dashboard/internal/ui/styles"
	"github.com/journeyq/dashboard/internal/ui/toaster"
)

const (
	statusMenuWidth  = 22
	serviceMenuWidth = 30
)

// Dependencies holds the services the model is built from
type Dependencies struct {
	Config   *config.Config
	Queue    *toast.Queue
	Store    *session.Store
	Logger   *slog.Logger
	User     *domain.User
	Bookings []domain.Booking
}

// profileDraft holds unsaved settings edits
type profileDraft struct {
	serviceType domain.ServiceType
}

// Model is the main application state
type Model struct {
	// Data
	user     *domain.User
	bookings []domain.Booking

	// Bookings page state
	filter    *domain.BookingFilter
	sort      domain.Sort
	cursor    int
	search    textinput.Model
	searching bool

	// Payments page state
	payCursor int

	// Settings page state
	draft *profileDraft

	// Menus and the pointer host they listen on
	pointer     *pointer.Dispatcher
	statusMenu  *dropdown.Dropdown
	serviceMenu *dropdown.Dropdown

	// Toasts
	queue       *toast.Queue
	toasts      []toast.Notification
	toastCh     chan struct{}
	toastsDone  chan struct{}
	stopToasts  func()
	unsubscribe func()
	toaster     *toaster.Renderer

	// UI state
	page     types.Page
	overlays *overlay.Stack
	width    int
	height   int
	quitting bool

	styles *styles.Styles
	config *config.Config
	store  *session.Store
	logger *slog.Logger
}

// New creates the application model. A nil Queue gets a fresh one with the
// configured default duration.
func New(deps Dependencies) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	queue := deps.Queue
	if queue == nil {
		queue = toast.NewQueue(
			toast.WithDefaultDuration(cfg.Toast.DefaultDuration()),
			toast.WithLogger(logger),
		)
	}

	s := styles.New()
	host := pointer.NewDispatcher()
	filter := domain.NewBookingFilter()
	draft := &profileDraft{serviceType: domain.ServiceGeneral}
	if deps.User != nil {
		draft.serviceType = deps.User.ServiceType
	}

	statusMenu := selectmenu.New(selectmenu.Props{
		Options: statusOptions(),
		Value:   domain.StatusAll,
		OnValueChange: func(v string) {
			filter.Status = v
			logger.Debug("booking status filter changed", "status", v)
		},
		Host: host,
	})
	serviceMenu := selectmenu.New(selectmenu.Props{
		Options: serviceOptions(),
		Value:   string(draft.serviceType),
		OnValueChange: func(v string) {
			draft.serviceType = domain.ServiceType(v)
		},
		Host: host,
	})

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search customers or services"
	search.CharLimit = 64
	search.Width = 32

	// Buffered so a burst of queue changes collapses into one refresh
	toastCh := make(chan struct{}, 1)
	unsubscribe := queue.Subscribe(func() {
		select {
		case toastCh <- struct{}{}:
		default:
		}
	})

	toastsDone := make(chan struct{})

	m := Model{
		user:        deps.User,
		bookings:    deps.Bookings,
		filter:      filter,
		sort:        domain.DefaultSort(),
		search:      search,
		draft:       draft,
		pointer:     host,
		statusMenu:  dropdown.New(statusMenu, "Filter by status", statusMenuWidth, s),
		serviceMenu: dropdown.New(serviceMenu, "Select service type", serviceMenuWidth, s),
		queue:       queue,
		toasts:      queue.List(),
		toastCh:     toastCh,
		toastsDone:  toastsDone,
		stopToasts:  sync.OnceFunc(func() { close(toastsDone) }),
		unsubscribe: unsubscribe,
		toaster:     toaster.New(s, cfg.Toast.MaxVisible),
		page:        types.PageOverview,
		overlays:    overlay.NewStack(),
		styles:      s,
		config:      cfg,
		store:       deps.Store,
		logger:      logger,
	}
	return m
}

func statusOptions() []selectmenu.Option {
	opts := []selectmenu.Option{{Value: domain.StatusAll, Label: "All Status"}}
	for _, st := range domain.BookingStatuses {
		opts = append(opts, selectmenu.Option{Value: string(st), Label: st.Label()})
	}
	return opts
}

func serviceOptions() []selectmenu.Option {
	opts := make([]selectmenu.Option, 0, len(domain.ServiceTypes))
	for _, st := range domain.ServiceTypes {
		opts = append(opts, selectmenu.Option{Value: string(st), Label: st.Label()})
	}
	return opts
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return waitForToasts(m.toastCh, m.toastsDone)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.clampCursor()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastsChangedMsg:
		m.toasts = m.queue.List()
		if m.quitting {
			return m, nil
		}
		return m, waitForToasts(m.toastCh, m.toastsDone)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case overlay.CloseOverlayMsg:
		m.overlays.Pop()
		return m, nil

	case overlay.ConfirmResultMsg:
		m.overlays.Pop()
		if !msg.Confirmed {
			return m, nil
		}
		return m.handleConfirmed(msg.Action)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// quit releases the queue and every menu listener before exiting
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.unsubscribe()
	m.stopToasts()
	m.queue.Close()
	m.statusMenu.Menu().Unmount()
	m.serviceMenu.Menu().Unmount()
	m.logger.Info("dashboard exiting")
	return m, tea.Quit
}

// setPage switches pages, moving key focus to the page's menu
func (m *Model) setPage(p types.Page) {
	if p == m.page {
		return
	}
	m.statusMenu.Blur()
	m.serviceMenu.Blur()
	m.stopSearch(false)

	m.page = p
	switch p {
	case types.PageBookings:
		m.statusMenu.Focus()
	case types.PagePayments:
		m.payCursor = 0
	case types.PageSettings:
		if m.user != nil {
			m.draft.serviceType = m.user.ServiceType
			m.serviceMenu.Menu().Select(string(m.user.ServiceType))
		}
		m.serviceMenu.Focus()
	}
}

// visibleBookings applies the filter and sort
func (m Model) visibleBookings() []domain.Booking {
	return m.sort.Apply(m.filter.Apply(m.bookings))
}

// currentBooking returns the highlighted booking on the bookings page
func (m Model) currentBooking() (domain.Booking, bool) {
	visible := m.visibleBookings()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Booking{}, false
	}
	return visible[m.cursor], true
}

// payments lists bookings for the payments page, newest first
func (m Model) payments() []domain.Booking {
	return domain.DefaultSort().Apply(m.bookings)
}

// currentPayment returns the highlighted booking on the payments page
func (m Model) currentPayment() (domain.Booking, bool) {
	payments := m.payments()
	if m.payCursor < 0 || m.payCursor >= len(payments) {
		return domain.Booking{}, false
	}
	return payments[m.payCursor], true
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.visibleBookings())-1))
	m.payCursor = max(0, min(m.payCursor, len(m.bookings)-1))
}

// notify enqueues a toast
func (m Model) notify(title, description string, variant toast.Variant) {
	m.queue.Enqueue(toast.Options{
		Title:       title,
		Description: description,
		Variant:     variant,
	})
}
