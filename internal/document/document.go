// ABOUTME: Document engine contract: open a document, look up pages, rasterize a page
// ABOUTME: Engines are opaque to the viewer; Viewport fixes the pixel size of a render

package document

import (
	"context"
	"errors"
	"fmt"
	"image/draw"
	"math"
)

// Sentinel errors returned (wrapped) by engines.
var (
	ErrNotFound    = errors.New("document not found")
	ErrMalformed   = errors.New("malformed document")
	ErrPageRange   = errors.New("page out of range")
	ErrUnsupported = errors.New("unsupported document type")
)

// Engine opens documents of one kind.
type Engine interface {
	Name() string
	Open(ctx context.Context, path string) (Document, error)
}

// Document is an opened document. Pages are numbered from 1.
type Document interface {
	Title() string
	NumPages() int
	Page(ctx context.Context, n int) (Page, error)
	Close() error
}

// Page is one page of a Document.
type Page interface {
	Number() int
	// Size returns the page size in points (1/72 inch).
	Size() (width, height float64)
	// RenderInto rasterizes the page onto dst, which is exactly vp.Width x vp.Height.
	RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error
}

// Viewport is the render target size for one page at one scale.
type Viewport struct {
	Scale  float64
	Width  int
	Height int
}

// NewViewport scales a page size in points. Dimensions are truncated to whole
// pixels, as assigning a fractional canvas size does, and never drop below 1.
func NewViewport(widthPts, heightPts, scale float64) Viewport {
	w := int(math.Floor(widthPts * scale))
	h := int(math.Floor(heightPts * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Viewport{Scale: scale, Width: w, Height: h}
}

// checkPage validates a 1-based page number against a page count.
func checkPage(n, count int) error {
	if n < 1 || n > count {
		return &PageError{Page: n, Count: count}
	}
	return nil
}

// PageError reports a page number outside [1, Count].
type PageError struct {
	Page  int
	Count int
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d out of range [1, %d]", e.Page, e.Count)
}

// Unwrap makes errors.Is(err, ErrPageRange) hold.
func (e *PageError) Unwrap() error { return ErrPageRange }
