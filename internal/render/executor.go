// ABOUTME: Runs render jobs off the event loop and reports results through a callback
// ABOUTME: Each job gets a fresh white canvas sized by the page viewport at the job's scale

package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"time"

	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/log"
)

// Executor starts a job asynchronously. Implementations report exactly
// one Result per started job.
type Executor interface {
	Start(doc document.Document, job Job)
}

// Notify receives finished results. It is called from the render goroutine;
// hosts forward it to their event loop.
type Notify func(Result)

// AsyncExecutor runs every job in its own goroutine.
type AsyncExecutor struct {
	ctx    context.Context
	notify Notify
	wg     sync.WaitGroup
}

// NewAsyncExecutor returns an executor whose renders observe ctx.
func NewAsyncExecutor(ctx context.Context, notify Notify) *AsyncExecutor {
	return &AsyncExecutor{ctx: ctx, notify: notify}
}

// Start implements Executor.
func (e *AsyncExecutor) Start(doc document.Document, job Job) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		res := Run(e.ctx, doc, job)
		if res.Err != nil {
			log.Warn("render %s failed: %v", job, res.Err)
		} else {
			log.Debug("render %s done in %s (%dx%d)", job, res.Elapsed, res.Viewport.Width, res.Viewport.Height)
		}
		e.notify(res)
	}()
}

// Wait blocks until every started job has reported.
func (e *AsyncExecutor) Wait() {
	e.wg.Wait()
}

// Run renders job synchronously. Engine panics are converted to errors so
// a bad page cannot take the viewer down.
func Run(ctx context.Context, doc document.Document, job Job) (res Result) {
	res.Job = job
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Image = nil
			res.Err = fmt.Errorf("rendering page %d: panic: %v", job.Page, r)
		}
		res.Elapsed = time.Since(start)
	}()

	if doc == nil {
		res.Err = fmt.Errorf("rendering page %d: no document", job.Page)
		return res
	}
	page, err := doc.Page(ctx, job.Page)
	if err != nil {
		res.Err = err
		return res
	}
	w, h := page.Size()
	vp := document.NewViewport(w, h, job.Scale)
	canvas := NewCanvas(vp)
	if err := page.RenderInto(ctx, canvas, vp); err != nil {
		res.Err = err
		return res
	}
	res.Image = canvas
	res.Viewport = vp
	return res
}

// NewCanvas allocates a white canvas matching vp.
func NewCanvas(vp document.Viewport) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return canvas
}
