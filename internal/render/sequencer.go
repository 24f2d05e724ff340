// ABOUTME: Render sequencer: at most one page render in flight plus one pending slot
// ABOUTME: Later requests overwrite the pending page; completion promotes it to a new job

package render

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/mauromedda/pdfview-go/internal/document"
)

// State is the sequencer's render state.
type State int

const (
	Idle State = iota
	Rendering
)

func (s State) String() string {
	if s == Rendering {
		return "rendering"
	}
	return "idle"
}

// Job is one page render. Scale is captured when the job starts, not when
// the page was requested.
type Job struct {
	Seq   uint64
	Page  int
	Scale float64
}

func (j Job) String() string {
	return fmt.Sprintf("job#%d page %d @%.2f", j.Seq, j.Page, j.Scale)
}

// Result is the outcome of a Job. Image is nil when Err is set.
type Result struct {
	Job      Job
	Image    *image.RGBA
	Viewport document.Viewport
	Err      error
	Elapsed  time.Duration
}

// Sequencer serializes page renders. While a job is in flight, requests
// collapse into a single pending page; only the most recent one survives.
type Sequencer struct {
	scale func() float64

	mu       sync.Mutex
	seq      uint64
	state    State
	inFlight Job
	pending  int // 0 when empty; pages are 1-based
}

// NewSequencer returns an idle sequencer. scale is consulted each time a
// job starts.
func NewSequencer(scale func() float64) *Sequencer {
	if scale == nil {
		scale = func() float64 { return 1 }
	}
	return &Sequencer{scale: scale}
}

// Request asks for page to be rendered. When idle it returns the job to
// start and true. While rendering it records page as pending, replacing
// any earlier pending page, and returns false.
func (s *Sequencer) Request(page int) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request(page)
}

func (s *Sequencer) request(page int) (Job, bool) {
	if s.state == Rendering {
		s.pending = page
		return Job{}, false
	}
	s.seq++
	s.inFlight = Job{Seq: s.seq, Page: page, Scale: s.scale()}
	s.state = Rendering
	return s.inFlight, true
}

// Complete records the end of the in-flight job, whether it succeeded or
// failed. If a page is pending it is cleared and requested, and the new
// job is returned with true. Results for any job other than the one in
// flight are ignored.
func (s *Sequencer) Complete(res Result) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Rendering || res.Job.Seq != s.inFlight.Seq {
		return Job{}, false
	}
	s.state = Idle
	s.inFlight = Job{}
	if s.pending == 0 {
		return Job{}, false
	}
	page := s.pending
	s.pending = 0
	return s.request(page)
}

// State returns the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// InFlight returns the running job, if any.
func (s *Sequencer) InFlight() (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight, s.state == Rendering
}

// Pending returns the page waiting for the in-flight job, if any.
func (s *Sequencer) Pending() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.pending != 0
}
