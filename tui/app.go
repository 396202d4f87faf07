package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airplane-seating/model"
	"airplane-seating/seating"
)

type appState int

const (
	stateMenu appState = iota
	stateShowPlan
	stateSelectClass
	stateEnterSeat
)

type appModel struct {
	svc      *seating.Service
	registry *seating.Registry
	logger   *slog.Logger

	state appState

	width  int
	height int

	classList list.Model
	seatInput textinput.Model

	class model.SeatClass

	notice      string
	noticeIsErr bool
	lastBooking *seating.Booking
}

func New(svc *seating.Service, registry *seating.Registry, logger *slog.Logger) tea.Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := appModel{
		svc:      svc,
		registry: registry,
		logger:   logger,
		state:    stateMenu,
	}

	m.classList = newList("Ticket type", buildClassItems(registry.All()))

	ti := textinput.New()
	ti.Placeholder = "e.g. 1A, 10F"
	ti.Prompt = "Seat: "
	ti.Width = 12
	m.seatInput = ti

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		// fallthrough to component update
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectClass:
		m.classList, cmd = m.classList.Update(msg)
	case stateEnterSeat:
		m.seatInput, cmd = m.seatInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	notice := m.noticeView()
	switch m.state {
	case stateMenu:
		return header + "\n\n" + menuView() + notice
	case stateShowPlan:
		return header + "\n\n" + renderSeatPlan(m.svc.Grid(), m.registry, m.highlight()) + notice
	case stateSelectClass:
		return header + "\n\n" + renderSeatPlan(m.svc.Grid(), m.registry, nil) + "\n\n" + m.classList.View() + notice
	case stateEnterSeat:
		return header + "\n\n" + renderSeatPlan(m.svc.Grid(), m.registry, nil) + "\n\n" + m.seatInput.View() + notice
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Airplane Seating Assignment")
	sub := []string{}
	if m.state == stateEnterSeat && m.class.Name != "" {
		sub = append(sub, fmt.Sprintf("Class: %s (%s)", m.class.Name, m.class.RangeLabel()))
	}
	if n := len(m.svc.Bookings()); n > 0 {
		sub = append(sub, fmt.Sprintf("Booked this session: %d", n))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}
	hints := "ctrl+c quit • 1 seating plan • 2 book a seat • 0 exit"
	switch m.state {
	case stateShowPlan:
		hints = "ctrl+c quit • esc/enter back to menu"
	case stateSelectClass:
		hints = "ctrl+c quit • esc back • type F/B/E or use arrows + enter"
	case stateEnterSeat:
		hints = "ctrl+c quit • esc cancel booking • enter book seat"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) noticeView() string {
	if m.notice == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	if m.noticeIsErr {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	}
	return "\n\n" + style.Render(m.notice)
}

func menuView() string {
	return strings.Join([]string{
		"Menu:",
		"  1 - Display seating plan",
		"  2 - Book a seat",
		"  0 - Exit",
	}, "\n")
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	switch m.state {
	case stateMenu:
		return m.handleMenuKey(msg)
	case stateShowPlan:
		switch msg.String() {
		case "esc", "enter", "q":
			m.state = stateMenu
			m.clearNotice()
			return m, nil, true
		}
		return m, nil, true
	case stateSelectClass:
		return m.handleClassKey(msg)
	case stateEnterSeat:
		return m.handleSeatKey(msg)
	}
	return m, nil, false
}

func (m appModel) handleMenuKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "0", "q":
		return m, tea.Quit, true
	case "1":
		m.clearNotice()
		m.state = stateShowPlan
		return m, nil, true
	case "2":
		m.clearNotice()
		m.classList.Select(0)
		m.state = stateSelectClass
		return m, nil, true
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
		m.setError("Invalid menu choice. Try again.")
		return m, nil, true
	}
	return m, nil, true
}

func (m appModel) handleClassKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
		m.clearNotice()
		return m, nil, true
	case "enter":
		item, ok := m.classList.SelectedItem().(classItem)
		if !ok {
			return m, nil, true
		}
		return m.startSeatEntry(item.class)
	}

	if key.Matches(msg, m.classList.KeyMap.CursorUp, m.classList.KeyMap.CursorDown) {
		return m, nil, false
	}
	if msg.Type == tea.KeyRunes {
		class, err := m.registry.LookupString(string(msg.Runes))
		if err != nil {
			m.logger.Debug("unknown class code", "input", string(msg.Runes))
			m.setError(seating.Message(err))
			return m, nil, true
		}
		return m.startSeatEntry(class)
	}
	return m, nil, false
}

func (m appModel) startSeatEntry(class model.SeatClass) (appModel, tea.Cmd, bool) {
	m.class = class
	m.clearNotice()
	m.seatInput.Reset()
	m.state = stateEnterSeat
	return m, m.seatInput.Focus(), true
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.seatInput.Blur()
		m.state = stateMenu
		m.clearNotice()
		return m, nil, true
	case "enter":
		return m.submitSeat()
	}
	return m, nil, false
}

func (m appModel) submitSeat() (appModel, tea.Cmd, bool) {
	token := firstField(m.seatInput.Value())
	ref, err := seating.ParseSeat(token)
	if err != nil {
		m.logger.Debug("seat token rejected", "token", token, "err", err)
		m.setError(seating.Message(err))
		m.seatInput.Reset()
		return m, nil, true
	}

	booking, err := m.svc.AttemptBooking(m.class, ref.Row, ref.Column)
	if err != nil {
		m.setError(seating.Message(err) + " Please choose again.")
		m.seatInput.Reset()
		return m, nil, true
	}

	m.lastBooking = &booking
	m.seatInput.Blur()
	m.seatInput.Reset()
	m.notice = fmt.Sprintf("%s Reference: %s", seating.Confirmation(booking), booking.Reference)
	m.noticeIsErr = false
	m.state = stateShowPlan
	return m, nil, true
}

func (m appModel) highlight() *model.SeatReference {
	if m.lastBooking == nil {
		return nil
	}
	seat := m.lastBooking.Seat
	return &seat
}

func (m *appModel) setError(text string) {
	m.notice = text
	m.noticeIsErr = true
}

func (m *appModel) clearNotice() {
	m.notice = ""
	m.noticeIsErr = false
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.classList.SetSize(m.width, classListHeight)
}

const classListHeight = 12

func newList(title string, items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New(items, delegate, 48, classListHeight)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

type classItem struct {
	class model.SeatClass
}

func (c classItem) Title() string {
	return fmt.Sprintf("%c - %s Class", c.class.Code, c.class.Name)
}

func (c classItem) Description() string {
	return c.class.RangeLabel()
}

func (c classItem) FilterValue() string {
	return strings.ToLower(c.class.Name)
}

func buildClassItems(classes []model.SeatClass) []list.Item {
	items := make([]list.Item, 0, len(classes))
	for _, class := range classes {
		items = append(items, classItem{class: class})
	}
	return items
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func firstField(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
