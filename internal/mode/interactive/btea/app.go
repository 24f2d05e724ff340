// ABOUTME: Root AppModel for the viewer TUI: routes Bubble Tea messages into the viewer session
// ABOUTME: Keys, mouse swipes, and window sizes become EventSource publications; View draws page and status bar

package btea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pdfview-go/internal/log"
	"github.com/mauromedda/pdfview-go/internal/render"
	"github.com/mauromedda/pdfview-go/internal/viewer"
	"github.com/mauromedda/pdfview-go/pkg/tui/image"
	"github.com/mauromedda/pdfview-go/pkg/tui/width"
)

// shared holds mutable state that must survive AppModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. The executor goroutine only reaches the model through
// Program.Send.
type shared struct {
	program *tea.Program
	ctx     context.Context
	cancel  context.CancelFunc
}

// AppModel is the root Bubble Tea model for the viewer.
type AppModel struct {
	sh *shared // survives value copies

	session *viewer.Session
	events  *viewer.EventSource
	exec    render.Executor

	keys    KeyMap
	spinner spinner.Model
	counter paginator.Model
	help    *MarkdownRenderer

	width, height int
	sized         bool
	showHelp      bool
	page          pageView

	deps AppDeps
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	ctx, cancel := context.WithCancel(context.Background())
	sh := &shared{ctx: ctx, cancel: cancel}

	exec := deps.Executor
	if exec == nil {
		exec = render.NewAsyncExecutor(ctx, func(res render.Result) {
			if sh.program != nil {
				sh.program.Send(RenderDoneMsg{Result: res})
			}
		})
	}

	cellW, _ := deps.cellSize()
	session := viewer.NewSession(deps.Options, deps.Engine, exec)
	session.Start(deps.InitialCols * cellW)

	events := viewer.NewEventSource()
	session.Attach(events)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles().Spinner

	return AppModel{
		sh:      sh,
		session: session,
		events:  events,
		exec:    exec,
		keys:    NewKeyMap(deps.Keys),
		spinner: sp,
		counter: newPageCounter(),
		help:    NewMarkdownRenderer(),
		width:   deps.InitialCols,
		deps:    deps,
	}
}

// Init starts the spinner and opens the document off the event loop.
func (m AppModel) Init() tea.Cmd {
	session, ctx := m.session, m.sh.ctx
	open := func() tea.Msg {
		doc, err := session.OpenDocument(ctx)
		return DocumentOpenedMsg{Doc: doc, Err: err}
	}
	return tea.Batch(m.spinner.Tick, open)
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case DocumentOpenedMsg:
		m.session.DocumentOpened(msg.Doc, msg.Err)
		return m, nil

	case RenderDoneMsg:
		m.session.RenderDone(msg.Result)
		m = m.refreshPage()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize publishes the new pixel width. The first size report matching
// the startup width only lays out; it is not a real resize.
func (m AppModel) resize(msg tea.WindowSizeMsg) AppModel {
	m.width, m.height = msg.Width, msg.Height
	cellW, _ := m.deps.cellSize()
	px := msg.Width * cellW
	if m.sized || px != m.session.Width() {
		m.events.Resize(px)
	}
	m.sized = true
	return m.refreshPage()
}

// refreshPage re-encodes the latest frame for the current page area.
func (m AppModel) refreshPage() AppModel {
	res, ok := m.session.Frame()
	if !ok {
		return m
	}
	m.page = m.page.update(res, m.deps.Protocol, m.pageBox())
	return m
}

// pageBox is the cell area above the status bar.
func (m AppModel) pageBox() image.Box {
	cw, ch := m.deps.cellSize()
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	return image.Box{Cols: max(m.width, 1), Rows: rows, CellW: cw, CellH: ch}
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sh.cancel()
		return m, tea.Quit

	case m.showHelp && (key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Help)):
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		if m.deps.Theme != nil {
			if _, err := m.deps.Theme.Toggle(); err != nil {
				log.Warn("saving theme preference: %v", err)
			}
			m.spinner.Style = Styles().Spinner
		}
		return m, nil
	}

	if k := m.keys.navKey(msg); k != viewer.KeyNone {
		m.events.Key(k)
	}
	return m, nil
}

// handleMouse turns left button press/release into pointer events in
// virtual pixels. Releases carry no button in most terminals.
func (m AppModel) handleMouse(msg tea.MouseMsg) {
	cw, ch := m.deps.cellSize()
	x, y := float64(msg.X*cw), float64(msg.Y*ch)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.events.Pointer(viewer.PointerEvent{Kind: viewer.PointerDown, X: x, Y: y})
	case msg.Action == tea.MouseActionRelease:
		m.events.Pointer(viewer.PointerEvent{Kind: viewer.PointerUp, X: x, Y: y})
	}
}

// close releases the document once no render can still be using it.
func (m AppModel) close() {
	m.sh.cancel()
	if w, ok := m.exec.(interface{ Wait() }); ok {
		w.Wait()
	}
	if err := m.session.Close(); err != nil {
		log.Warn("closing document: %v", err)
	}
}

// View renders the page area and the status bar.
func (m AppModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := m.height - 1
	var body []string

	switch m.session.Phase() {
	case viewer.PhaseFailed:
		body = m.messageLines(rows, Styles().Error.Render("Could not open document: "+oneLine(m.session.Err())))
	case viewer.PhaseLoading:
		body = m.messageLines(rows, m.spinner.View()+" Loading "+m.session.Title())
	default:
		if _, ok := m.session.Frame(); ok {
			body = m.page.lines(m.width, rows)
		} else {
			body = m.messageLines(rows, m.spinner.View()+" Rendering page "+fmt.Sprint(m.session.Page()))
		}
	}

	if m.showHelp && rows > 0 {
		body = strings.Split(overlayRender("", m.helpText(), m.width, rows), "\n")
		if m.deps.Protocol == image.ProtoKitty {
			body[0] = image.KittyDeleteAll + body[0]
		}
	}

	body = append(body, renderStatusBar(m.status(), m.counter, m.width))
	return strings.Join(body, "\n")
}

func (m AppModel) status() statusInfo {
	info := statusInfo{
		Title:     m.session.Title(),
		Page:      m.session.Page(),
		Count:     m.session.PageCount(),
		Scale:     m.session.Scale(),
		RenderErr: m.session.RenderErr(),
	}
	if m.deps.Theme != nil {
		info.Icon = m.deps.Theme.Icon()
	}
	if m.session.Rendering() {
		info.Spinner = m.spinner.View()
	}
	return info
}

// messageLines centres a single message in rows lines.
func (m AppModel) messageLines(rows int, msg string) []string {
	out := make([]string, rows)
	if rows == 0 {
		return out
	}
	msg = width.TruncateToWidth(msg, m.width)
	pad := (m.width - width.VisibleWidth(msg)) / 2
	out[rows/2] = strings.Repeat(" ", max(pad, 0)) + msg
	return out
}

// helpText renders the key bindings as a Markdown table.
func (m AppModel) helpText() string {
	var b strings.Builder
	b.WriteString("# pdfview")
	if m.deps.Version != "" {
		b.WriteString(" " + m.deps.Version)
	}
	b.WriteString("\n\n| Key | Action |\n|---|---|\n")
	for _, k := range m.keys.Bindings() {
		h := k.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\nSwipe left or right with the mouse to turn pages.\n")
	return m.help.Render(b.String(), min(60, max(m.width-4, 20)), Styles().Dark)
}

func oneLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.ReplaceAll(err.Error(), "\n", " ")
}
