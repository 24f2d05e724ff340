// ABOUTME: Viewer session: owns the open document, navigation, render sequencing, and scale
// ABOUTME: Driven from a single event loop; render results come back through RenderDone

package viewer

import (
	"context"
	"fmt"

	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/gesture"
	"github.com/mauromedda/pdfview-go/internal/log"
	"github.com/mauromedda/pdfview-go/internal/render"
)

// Phase is the document lifecycle as seen by the UI.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Options configures a Session.
type Options struct {
	Path              string
	Scale             ScalePolicy
	SwipeThreshold    float64
	VerticalThreshold float64
}

// Session is the viewer state. It is not safe for concurrent use: every
// method must be called from the host's event loop, including RenderDone.
type Session struct {
	opts   Options
	engine document.Engine
	exec   render.Executor

	doc      document.Document
	nav      *Navigator
	seq      *render.Sequencer
	detector *gesture.Detector

	phase     Phase
	openErr   error
	width     int
	scale     float64
	frame     render.Result
	hasFrame  bool
	renderErr error

	unsubscribe []func()
}

// NewSession returns a session in the loading phase.
func NewSession(opts Options, engine document.Engine, exec render.Executor) *Session {
	if opts.Scale == (ScalePolicy{}) {
		opts.Scale = DefaultScalePolicy()
	}
	s := &Session{
		opts:     opts,
		engine:   engine,
		exec:     exec,
		detector: gesture.NewDetector(opts.SwipeThreshold, opts.VerticalThreshold),
		scale:    opts.Scale.Default,
	}
	s.seq = render.NewSequencer(s.Scale)
	return s
}

// Start records the initial viewport width and picks the scale. The host
// then opens the document with OpenDocument, usually off the event loop.
func (s *Session) Start(width int) {
	s.width = width
	s.scale = s.opts.Scale.For(width)
	log.Debug("viewer start: width=%d scale=%.2f path=%s", width, s.scale, s.opts.Path)
}

// OpenDocument loads the configured path. It blocks and touches no session
// state, so hosts may call it from a goroutine and hand the outcome to
// DocumentOpened on the event loop.
func (s *Session) OpenDocument(ctx context.Context) (document.Document, error) {
	if s.engine == nil {
		return nil, fmt.Errorf("opening %s: no document engine", s.opts.Path)
	}
	return s.engine.Open(ctx, s.opts.Path)
}

// DocumentOpened finishes loading. On success page 1 is requested; on
// failure the session enters the failed phase and renders nothing.
func (s *Session) DocumentOpened(doc document.Document, err error) {
	if s.phase != PhaseLoading {
		if doc != nil {
			doc.Close()
		}
		return
	}
	if err == nil && doc != nil && doc.NumPages() < 1 {
		doc.Close()
		doc, err = nil, fmt.Errorf("%w: %s has no pages", document.ErrMalformed, s.opts.Path)
	}
	if err != nil || doc == nil {
		if err == nil {
			err = fmt.Errorf("opening %s: no document", s.opts.Path)
		}
		s.phase = PhaseFailed
		s.openErr = err
		log.Error("open %s: %v", s.opts.Path, err)
		return
	}

	s.doc = doc
	s.nav = NewNavigator(doc.NumPages(), s.requestRender)
	s.phase = PhaseReady
	log.Info("opened %q: %d pages", doc.Title(), doc.NumPages())
	s.requestRender(s.nav.Current())
}

// Attach subscribes the session to src. Attaching again replaces the
// previous subscriptions.
func (s *Session) Attach(src *EventSource) {
	s.Detach()
	s.unsubscribe = append(s.unsubscribe,
		src.OnKey(s.HandleKey),
		src.OnPointer(s.HandlePointer),
		src.OnResize(func(e ResizeEvent) { s.Resize(e.Width) }),
	)
}

// Detach drops all event subscriptions.
func (s *Session) Detach() {
	for _, u := range s.unsubscribe {
		u()
	}
	s.unsubscribe = nil
}

// HandleKey applies a navigation key.
func (s *Session) HandleKey(e KeyEvent) {
	switch e.Key {
	case KeyRight:
		s.GoToPage(1)
	case KeyLeft:
		s.GoToPage(-1)
	case KeyHome:
		s.First()
	case KeyEnd:
		s.Last()
	}
}

// HandlePointer feeds the swipe detector; a completed swipe turns the page.
func (s *Session) HandlePointer(e PointerEvent) {
	switch e.Kind {
	case PointerDown:
		s.detector.Start(e.X, e.Y)
	case PointerUp:
		if d := s.detector.End(e.X, e.Y); d != gesture.None {
			log.Debug("swipe %s", d)
			s.GoToPage(d.Delta())
		}
	}
}

// Resize recomputes the scale and, with a document open, re-renders the
// current page at the new scale.
func (s *Session) Resize(width int) {
	s.width = width
	s.scale = s.opts.Scale.For(width)
	if s.nav != nil {
		s.requestRender(s.nav.Current())
	}
}

// GoToPage moves by delta pages. No-op without a document.
func (s *Session) GoToPage(delta int) bool {
	if s.nav == nil {
		return false
	}
	return s.nav.GoToPage(delta)
}

// First jumps to page 1. No-op without a document.
func (s *Session) First() bool {
	return s.nav != nil && s.nav.First()
}

// Last jumps to the final page. No-op without a document.
func (s *Session) Last() bool {
	return s.nav != nil && s.nav.Last()
}

func (s *Session) requestRender(page int) {
	if s.doc == nil {
		return
	}
	if job, ok := s.seq.Request(page); ok {
		s.exec.Start(s.doc, job)
	}
}

// RenderDone accepts a result from the executor. A failure is kept for
// display and does not retry; a pending page, if any, starts next.
func (s *Session) RenderDone(res render.Result) {
	if cur, running := s.seq.InFlight(); !running || cur.Seq != res.Job.Seq {
		log.Debug("dropping stale render result %s", res.Job)
		return
	}
	next, ok := s.seq.Complete(res)
	if res.Err != nil {
		s.renderErr = fmt.Errorf("page %d: %w", res.Job.Page, res.Err)
	} else if res.Image != nil {
		s.frame = res
		s.hasFrame = true
		s.renderErr = nil
	}
	if ok && s.doc != nil {
		s.exec.Start(s.doc, next)
	}
}

// Close detaches from events and closes the document.
func (s *Session) Close() error {
	s.Detach()
	if s.doc == nil {
		return nil
	}
	err := s.doc.Close()
	s.doc = nil
	s.nav = nil
	return err
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Err returns the document open error in the failed phase.
func (s *Session) Err() error { return s.openErr }

// RenderErr returns the last render failure, cleared by the next success.
func (s *Session) RenderErr() error { return s.renderErr }

// Frame returns the most recent successful render.
func (s *Session) Frame() (render.Result, bool) { return s.frame, s.hasFrame }

// Rendering reports whether a render is in flight.
func (s *Session) Rendering() bool { return s.seq.State() == render.Rendering }

// Scale returns the current render scale.
func (s *Session) Scale() float64 { return s.scale }

// Width returns the last known viewport width.
func (s *Session) Width() int { return s.width }

// Page returns the current page, or 0 without a document.
func (s *Session) Page() int {
	if s.nav == nil {
		return 0
	}
	return s.nav.Current()
}

// PageCount returns the number of pages, or 0 without a document.
func (s *Session) PageCount() int {
	if s.nav == nil {
		return 0
	}
	return s.nav.Count()
}

// Title returns the document title, or the configured path before load.
func (s *Session) Title() string {
	if s.doc != nil {
		return s.doc.Title()
	}
	return s.opts.Path
}

// Document returns the open document, if any.
func (s *Session) Document() document.Document { return s.doc }
