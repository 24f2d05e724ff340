// ABOUTME: Tests for the viewer session, navigator, scale policy, and event wiring
// ABOUTME: A recording executor stands in for the async renderer so every request is observable

package viewer

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"testing"

	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/render"
)

type stubDoc struct {
	pages  int
	closed bool
}

func (d *stubDoc) Title() string { return "Stub Book" }
func (d *stubDoc) NumPages() int { return d.pages }
func (d *stubDoc) Close() error  { d.closed = true; return nil }

func (d *stubDoc) Page(_ context.Context, n int) (document.Page, error) {
	return stubPage(n), nil
}

type stubPage int

func (p stubPage) Number() int              { return int(p) }
func (p stubPage) Size() (float64, float64) { return 612, 792 }
func (p stubPage) RenderInto(context.Context, draw.Image, document.Viewport) error {
	return nil
}

type stubEngine struct {
	doc document.Document
	err error
}

func (e stubEngine) Name() string { return "stub" }
func (e stubEngine) Open(context.Context, string) (document.Document, error) {
	return e.doc, e.err
}

// recorder captures started jobs instead of running them.
type recorder struct {
	jobs []render.Job
}

func (r *recorder) Start(_ document.Document, job render.Job) { r.jobs = append(r.jobs, job) }

func (r *recorder) last(t *testing.T) render.Job {
	t.Helper()
	if len(r.jobs) == 0 {
		t.Fatal("no render started")
	}
	return r.jobs[len(r.jobs)-1]
}

func ok(job render.Job) render.Result {
	return render.Result{Job: job, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
}

func openSession(t *testing.T, pages, width int) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	doc := &stubDoc{pages: pages}
	s := NewSession(Options{Path: "book.pdf"}, stubEngine{doc: doc}, rec)
	s.Start(width)
	d, err := s.OpenDocument(context.Background())
	s.DocumentOpened(d, err)
	return s, rec
}

func TestSession_OpenRequestsFirstPage(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 5, 1024)
	if s.Phase() != PhaseReady {
		t.Fatalf("Phase = %v", s.Phase())
	}
	if len(rec.jobs) != 1 {
		t.Fatalf("started %d renders, want 1", len(rec.jobs))
	}
	if job := rec.jobs[0]; job.Page != 1 || job.Scale != 1.5 {
		t.Errorf("first job = %+v, want page 1 at 1.5", job)
	}
	if s.Page() != 1 || s.PageCount() != 5 || s.Title() != "Stub Book" {
		t.Errorf("page %d/%d title %q", s.Page(), s.PageCount(), s.Title())
	}
	if !s.Rendering() {
		t.Error("expected a render in flight")
	}
}

func TestSession_OpenFailureNeverRenders(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewSession(Options{Path: "missing.pdf"}, stubEngine{err: document.ErrNotFound}, rec)
	s.Start(500)
	d, err := s.OpenDocument(context.Background())
	s.DocumentOpened(d, err)

	if s.Phase() != PhaseFailed || !errors.Is(s.Err(), document.ErrNotFound) {
		t.Fatalf("phase %v err %v", s.Phase(), s.Err())
	}
	s.HandleKey(KeyEvent{Key: KeyRight})
	s.Resize(1200)
	if s.GoToPage(1) || s.First() || s.Last() {
		t.Error("navigation should be a no-op without a document")
	}
	if len(rec.jobs) != 0 {
		t.Errorf("started %d renders after a failed open", len(rec.jobs))
	}
	if s.Title() != "missing.pdf" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSession_EmptyDocumentFails(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	doc := &stubDoc{pages: 0}
	s := NewSession(Options{Path: "empty.pdf"}, stubEngine{doc: doc}, rec)
	s.DocumentOpened(doc, nil)

	if s.Phase() != PhaseFailed || !errors.Is(s.Err(), document.ErrMalformed) {
		t.Errorf("phase %v err %v", s.Phase(), s.Err())
	}
	if !doc.closed || len(rec.jobs) != 0 {
		t.Error("empty document should be closed and never rendered")
	}
}

func TestSession_NoEngine(t *testing.T) {
	t.Parallel()

	s := NewSession(Options{Path: "x.pdf"}, nil, &recorder{})
	if _, err := s.OpenDocument(context.Background()); err == nil {
		t.Error("expected error without an engine")
	}
}

func TestSession_NavigationCoalesces(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 10, 1024)
	first := rec.last(t)

	for range 3 {
		s.HandleKey(KeyEvent{Key: KeyRight})
	}
	if len(rec.jobs) != 1 {
		t.Fatalf("started %d renders while busy, want 1", len(rec.jobs))
	}
	if s.Page() != 4 {
		t.Errorf("Page = %d, want 4", s.Page())
	}

	s.RenderDone(ok(first))
	if got := rec.last(t); len(rec.jobs) != 2 || got.Page != 4 {
		t.Fatalf("after completion started %+v (total %d), want page 4", got, len(rec.jobs))
	}

	s.RenderDone(ok(rec.last(t)))
	if s.Rendering() {
		t.Error("sequencer should be idle")
	}
	if frame, has := s.Frame(); !has || frame.Job.Page != 4 {
		t.Errorf("frame = %+v, %v", frame.Job, has)
	}
}

func TestSession_NavigationBounds(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 3, 1024)
	s.RenderDone(ok(rec.last(t)))

	s.HandleKey(KeyEvent{Key: KeyLeft})
	if s.Page() != 1 || len(rec.jobs) != 1 {
		t.Errorf("prev on page 1 moved to %d, renders %d", s.Page(), len(rec.jobs))
	}

	s.HandleKey(KeyEvent{Key: KeyEnd})
	if s.Page() != 3 {
		t.Fatalf("End -> page %d", s.Page())
	}
	s.RenderDone(ok(rec.last(t)))

	s.HandleKey(KeyEvent{Key: KeyRight})
	s.HandleKey(KeyEvent{Key: KeyEnd})
	if s.Page() != 3 || len(rec.jobs) != 2 {
		t.Errorf("moves past the end changed page %d / renders %d", s.Page(), len(rec.jobs))
	}

	s.HandleKey(KeyEvent{Key: KeyHome})
	if s.Page() != 1 || rec.last(t).Page != 1 {
		t.Errorf("Home -> page %d", s.Page())
	}
}

func TestSession_ResizeRerendersOnce(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 4, 1024)
	s.RenderDone(ok(rec.last(t)))

	s.Resize(700)
	if len(rec.jobs) != 2 {
		t.Fatalf("resize started %d renders, want exactly 1 more", len(rec.jobs)-1)
	}
	if job := rec.last(t); job.Page != 1 || job.Scale != 1.2 {
		t.Errorf("resize job = %+v, want page 1 at 1.2", job)
	}
	if s.Scale() != 1.2 || s.Width() != 700 {
		t.Errorf("scale %v width %d", s.Scale(), s.Width())
	}
}

func TestSession_ResizeWhileRenderingUsesNewScale(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 4, 1024)
	first := rec.last(t)

	s.Resize(768)
	s.Resize(600)
	if len(rec.jobs) != 1 {
		t.Fatalf("busy resize started renders: %d", len(rec.jobs))
	}
	s.RenderDone(ok(first))
	if job := rec.last(t); len(rec.jobs) != 2 || job.Scale != 1.2 || job.Page != 1 {
		t.Errorf("follow-up job = %+v", job)
	}
}

func TestSession_ResizeBeforeOpen(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	doc := &stubDoc{pages: 2}
	s := NewSession(Options{Path: "a.pdf"}, stubEngine{doc: doc}, rec)
	s.Start(1024)
	s.Resize(500)
	if len(rec.jobs) != 0 {
		t.Fatal("resize before load should not render")
	}
	s.DocumentOpened(doc, nil)
	if job := rec.last(t); job.Scale != 1.2 {
		t.Errorf("first render should use the resized scale, got %v", job.Scale)
	}
}

func TestSession_RenderFailureKeepsLastFrame(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 4, 1024)
	s.RenderDone(ok(rec.last(t)))

	s.GoToPage(1)
	s.GoToPage(1)
	job := rec.last(t)
	if job.Page != 2 {
		t.Fatalf("job page %d", job.Page)
	}
	s.RenderDone(render.Result{Job: job, Err: errors.New("bad page")})

	if s.RenderErr() == nil {
		t.Error("failure should be surfaced")
	}
	if frame, _ := s.Frame(); frame.Job.Page != 1 {
		t.Errorf("frame replaced by failed render: page %d", frame.Job.Page)
	}
	next := rec.last(t)
	if next.Page != 3 {
		t.Fatalf("pending page 3 should start after the failure, got %+v", next)
	}
	s.RenderDone(ok(next))
	if s.RenderErr() != nil {
		t.Error("a successful render should clear the error")
	}
}

func TestSession_StaleResultIgnored(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 4, 1024)
	first := rec.last(t)
	s.RenderDone(ok(first))
	s.RenderDone(render.Result{Job: first, Err: errors.New("late duplicate")})
	if s.RenderErr() != nil {
		t.Error("stale result should not touch session state")
	}
}

func TestSession_SwipeThroughEventSource(t *testing.T) {
	t.Parallel()

	s, rec := openSession(t, 4, 1024)
	s.RenderDone(ok(rec.last(t)))

	src := NewEventSource()
	s.Attach(src)

	// right-to-left swipe: next page
	src.Pointer(PointerEvent{Kind: PointerDown, X: 400, Y: 100})
	src.Pointer(PointerEvent{Kind: PointerUp, X: 300, Y: 110})
	if s.Page() != 2 {
		t.Fatalf("swipe left -> page %d, want 2", s.Page())
	}
	s.RenderDone(ok(rec.last(t)))

	// mostly vertical: ignored
	src.Pointer(PointerEvent{Kind: PointerDown, X: 400, Y: 100})
	src.Pointer(PointerEvent{Kind: PointerUp, X: 200, Y: 300})
	if s.Page() != 2 {
		t.Errorf("vertical swipe moved to page %d", s.Page())
	}

	// left-to-right: previous page
	src.Pointer(PointerEvent{Kind: PointerDown, X: 100, Y: 100})
	src.Pointer(PointerEvent{Kind: PointerUp, X: 200, Y: 100})
	if s.Page() != 1 {
		t.Errorf("swipe right -> page %d, want 1", s.Page())
	}

	src.Key(KeyEnd)
	if s.Page() != 4 {
		t.Errorf("key through source -> page %d", s.Page())
	}
	src.Resize(600)
	if s.Scale() != 1.2 {
		t.Errorf("resize through source -> scale %v", s.Scale())
	}

	s.Detach()
	if src.Subscribers() != 0 {
		t.Errorf("%d subscribers left after Detach", src.Subscribers())
	}
	src.Key(KeyHome)
	if s.Page() != 4 {
		t.Error("detached session still reacts to keys")
	}
}

func TestSession_AttachReplaces(t *testing.T) {
	t.Parallel()

	s, _ := openSession(t, 2, 1024)
	src := NewEventSource()
	s.Attach(src)
	s.Attach(src)
	if src.Subscribers() != 3 {
		t.Errorf("Subscribers = %d, want 3", src.Subscribers())
	}
}

func TestSession_Close(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	doc := &stubDoc{pages: 2}
	s := NewSession(Options{}, stubEngine{doc: doc}, rec)
	s.DocumentOpened(doc, nil)
	first := rec.last(t)
	s.GoToPage(1)

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !doc.closed {
		t.Error("document not closed")
	}
	s.RenderDone(ok(first))
	if len(rec.jobs) != 1 {
		t.Error("closed session started a render")
	}
}

func TestSession_LateOpenAfterFailureIsClosed(t *testing.T) {
	t.Parallel()

	s := NewSession(Options{}, nil, &recorder{})
	s.DocumentOpened(nil, errors.New("boom"))
	late := &stubDoc{pages: 1}
	s.DocumentOpened(late, nil)
	if !late.closed || s.Phase() != PhaseFailed {
		t.Error("a second open result should be discarded")
	}
}

func TestNavigator(t *testing.T) {
	t.Parallel()

	var rendered []int
	n := NewNavigator(3, func(p int) { rendered = append(rendered, p) })

	steps := []struct {
		op   func() bool
		want bool
		page int
	}{
		{func() bool { return n.GoToPage(-1) }, false, 1},
		{func() bool { return n.GoToPage(1) }, true, 2},
		{func() bool { return n.GoToPage(1) }, true, 3},
		{func() bool { return n.GoToPage(1) }, false, 3},
		{n.Last, false, 3},
		{n.First, true, 1},
		{n.First, false, 1},
		{n.Last, true, 3},
	}
	for i, st := range steps {
		if got := st.op(); got != st.want || n.Current() != st.page {
			t.Errorf("step %d: moved=%v page=%d, want %v page %d", i, got, n.Current(), st.want, st.page)
		}
	}
	want := []int{2, 3, 1, 3}
	if len(rendered) != len(want) {
		t.Fatalf("rendered %v, want %v", rendered, want)
	}
	for i := range want {
		if rendered[i] != want[i] {
			t.Errorf("rendered %v, want %v", rendered, want)
		}
	}
}

func TestNavigator_SinglePage(t *testing.T) {
	t.Parallel()

	n := NewNavigator(1, nil)
	if n.GoToPage(1) || n.GoToPage(-1) || n.First() || n.Last() {
		t.Error("single page document should never move")
	}
}

func TestScalePolicy(t *testing.T) {
	t.Parallel()

	p := DefaultScalePolicy()
	for width, want := range map[int]float64{0: 1.2, 320: 1.2, 767: 1.2, 768: 1.2, 769: 1.5, 1920: 1.5} {
		if got := p.For(width); got != want {
			t.Errorf("For(%d) = %v, want %v", width, got, want)
		}
	}

	custom := ScalePolicy{Small: 1, Default: 2, Breakpoint: 100}
	if custom.For(100) != 1 || custom.For(101) != 2 {
		t.Error("custom policy ignored")
	}
}
