// Package tui — терминальный чат с каруселью карточек профессии.
//
// Экран делится на две панели: слева переписка и поле ввода, справа текущая карточка.
// Запросы к бэкенду выполняются в tea.Cmd, состояние живёт в session.Session.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artem13815/workvibe/pkg/logger"
	"github.com/artem13815/workvibe/pkg/session"
	"github.com/artem13815/workvibe/pkg/settings"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	helpLine = "Enter → отправить · Ctrl+N/Ctrl+B → карточки · Ctrl+R → случайная · Ctrl+T → тема · Ctrl+L → заново · Esc → выход"
)

// SaveFunc persists settings; nil disables persistence.
type SaveFunc func(settings.Settings) error

type Options struct {
	Settings settings.Settings
	Save     SaveFunc
	Log      *logger.Logger
	// Timeout bounds one chat turn; zero means no limit.
	Timeout time.Duration
}

type turnFinishedMsg struct {
	turn session.Turn
	err  error
}

// Model is the bubbletea model of the chat screen.
type Model struct {
	sess *session.Session
	opts Options
	log  *logger.Logger

	settings    settings.Settings
	showOverlay bool
	styles      Styles

	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model
	inFlight   int
	status     string

	width  int
	height int
}

func New(sess *session.Session, opts Options) *Model {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	in := textinput.New()
	in.Placeholder = "Кем хочешь себя почувствовать?"
	in.CharLimit = 2000
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		sess:        sess,
		opts:        opts,
		log:         opts.Log,
		settings:    opts.Settings,
		showOverlay: !opts.Settings.OverlayDismissed,
		input:       in,
		transcript:  viewport.New(defaultWidth/2, defaultHeight-6),
		spinner:     sp,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.applyTheme()
	m.resize()
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case turnFinishedMsg:
		m.inFlight--
		if msg.err != nil {
			m.log.Warn("chat turn failed", "error", msg.err)
			m.status = ""
		} else if msg.turn.Source != session.SourceNone {
			m.status = "карточки: " + string(msg.turn.Source)
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		if m.showOverlay {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			m.dismissOverlay()
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyCtrlN:
		m.sess.Next()
		return m, nil
	case tea.KeyCtrlB:
		m.sess.Prev()
		return m, nil
	case tea.KeyCtrlR:
		m.sess.Random()
		return m, nil
	case tea.KeyCtrlT:
		m.settings.Toggle()
		m.applyTheme()
		m.persist()
		m.refresh()
		return m, nil
	case tea.KeyCtrlL:
		m.sess.Reset()
		m.status = "новая беседа"
		m.refresh()
		return m, nil
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the input line; blank input is ignored.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	m.input.Reset()
	m.inFlight++
	m.status = ""
	sess, timeout := m.sess, m.opts.Timeout
	send := func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		turn, err := sess.Send(ctx, text)
		return turnFinishedMsg{turn: turn, err: err}
	}
	return tea.Batch(send, m.spinner.Tick)
}

func (m *Model) dismissOverlay() {
	m.showOverlay = false
	m.settings.OverlayDismissed = true
	m.applyTheme()
	m.persist()
	m.refresh()
}

func (m *Model) persist() {
	if m.opts.Save == nil {
		return
	}
	if err := m.opts.Save(m.settings); err != nil {
		m.log.Warn("save settings", "error", err)
		m.status = "не удалось сохранить настройки"
	}
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(m.settings.Effective(m.showOverlay))
}

func (m *Model) chatWidth() int { return max(24, m.width/2-4) }

func (m *Model) resize() {
	m.transcript.Width = m.chatWidth()
	m.transcript.Height = max(5, m.height-8)
	m.input.Width = m.chatWidth() - 2
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *Model) refresh() {
	st := m.sess.Snapshot()
	m.transcript.SetContent(RenderTranscript(st.Transcript, m.chatWidth(), m.styles))
	m.transcript.GotoBottom()
}

// Settings returns the current settings, including changes made in the session.
func (m *Model) Settings() settings.Settings { return m.settings }

func (m *Model) View() string {
	if m.showOverlay {
		return m.overlayView()
	}
	st := m.sess.Snapshot()

	chat := m.transcript.View() + "\n" + m.input.View()
	if m.inFlight > 0 {
		chat += "\n" + m.styles.Muted.Render(m.spinner.View()+" бот печатает…")
	}
	left := m.styles.Panel.Width(m.chatWidth() + 2).Render(chat)

	cardWidth := max(24, m.width-m.chatWidth()-10)
	card := RenderCard(st.Card(), cardWidth, m.styles)
	counter := m.styles.Muted.Render(fmt.Sprintf("%d/%d", st.Cursor+1, len(st.Cards)))
	right := m.styles.Card.Width(cardWidth + 2).Render(card + "\n\n" + counter)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	footer := m.styles.Muted.Render(helpLine)
	if m.status != "" {
		footer = m.styles.Muted.Render(m.status) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render("⬡ WORKVIBE"), body, footer)
}

func (m *Model) overlayView() string {
	box := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("WORKVIBE"),
		"",
		m.styles.Text.Render("Почувствуй рабочий день профессии, которую выбираешь."),
		"",
		m.styles.Muted.Render("нажми любую клавишу"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.Card.Render(box))
}
