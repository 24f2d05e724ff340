// ABOUTME: Headless print mode: writes one page image or document info straight to a writer
// ABOUTME: Info supports text, JSON, and stream-JSON formatters; Page uses the terminal image protocol

package print

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/render"
	"github.com/mauromedda/pdfview-go/pkg/tui/image"
)

// Config configures print mode execution.
type Config struct {
	OutputFormat string  // "text" (default), "json", "stream-json"
	Scale        float64 // render scale for Page
	Protocol     image.ImageProtocol
	Box          image.Box // cell area a page may cover
}

// PageInfo describes one page in points.
type PageInfo struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DocInfo describes an opened document.
type DocInfo struct {
	Title  string     `json:"title"`
	Engine string     `json:"engine"`
	Pages  []PageInfo `json:"pages"`
}

// Info opens path with eng and writes its title, page count, and page sizes.
func Info(ctx context.Context, eng document.Engine, path string, cfg Config, w io.Writer) error {
	doc, err := eng.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer doc.Close()

	f := newFormatter(cfg.OutputFormat, w)
	info := DocInfo{Title: doc.Title(), Engine: eng.Name()}
	f.start(info, doc.NumPages())
	for n := 1; n <= doc.NumPages(); n++ {
		p, err := doc.Page(ctx, n)
		if err != nil {
			return fmt.Errorf("reading page %d: %w", n, err)
		}
		pw, ph := p.Size()
		f.page(PageInfo{Number: n, Width: pw, Height: ph})
	}
	return f.end()
}

// Page renders page n of path at cfg.Scale and writes it to w.
func Page(ctx context.Context, eng document.Engine, path string, n int, cfg Config, w io.Writer) error {
	doc, err := eng.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer doc.Close()

	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	res := render.Run(ctx, doc, render.Job{Seq: 1, Page: n, Scale: cfg.Scale})
	if res.Err != nil {
		return fmt.Errorf("rendering page %d: %w", n, res.Err)
	}
	frame, err := image.RenderPage(res.Image, cfg.Protocol, cfg.Box)
	if err != nil {
		return fmt.Errorf("encoding page %d: %w", n, err)
	}
	// Earlier images in the scrollback belong to the user.
	frame.Lines[0] = strings.TrimPrefix(frame.Lines[0], image.KittyDeleteAll)
	_, err = io.WriteString(w, strings.Join(frame.Lines, "\n")+"\n")
	return err
}

// formatter abstracts info output formatting.
type formatter interface {
	start(info DocInfo, pages int)
	page(p PageInfo)
	end() error
}

func newFormatter(format string, w io.Writer) formatter {
	switch format {
	case "json":
		return &jsonFormatter{w: w}
	case "stream-json":
		return &streamJSONFormatter{enc: json.NewEncoder(w)}
	default:
		return &textFormatter{w: w}
	}
}

// textFormatter writes a short human-readable summary.
type textFormatter struct {
	w   io.Writer
	err error
}

func (f *textFormatter) printf(format string, args ...any) {
	if f.err == nil {
		_, f.err = fmt.Fprintf(f.w, format, args...)
	}
}

func (f *textFormatter) start(info DocInfo, pages int) {
	f.printf("Title:  %s\nEngine: %s\nPages:  %d\n", info.Title, info.Engine, pages)
}

func (f *textFormatter) page(p PageInfo) {
	f.printf("%5d  %7.1f x %-7.1f pt\n", p.Number, p.Width, p.Height)
}

func (f *textFormatter) end() error { return f.err }

// jsonFormatter collects all pages and writes a single JSON object at the end.
type jsonFormatter struct {
	w    io.Writer
	info DocInfo
}

func (f *jsonFormatter) start(info DocInfo, pages int) {
	f.info = info
	f.info.Pages = make([]PageInfo, 0, pages)
}

func (f *jsonFormatter) page(p PageInfo) { f.info.Pages = append(f.info.Pages, p) }

func (f *jsonFormatter) end() error {
	data, err := json.Marshal(f.info)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}

// streamJSONFormatter writes one JSON line per event.
type streamJSONFormatter struct {
	enc *json.Encoder
	err error
}

type streamEvent struct {
	Type   string    `json:"type"`
	Title  string    `json:"title,omitempty"`
	Engine string    `json:"engine,omitempty"`
	Pages  int       `json:"pages,omitempty"`
	Page   *PageInfo `json:"page,omitempty"`
}

func (f *streamJSONFormatter) write(evt streamEvent) {
	if f.err == nil {
		f.err = f.enc.Encode(evt)
	}
}

func (f *streamJSONFormatter) start(info DocInfo, pages int) {
	f.write(streamEvent{Type: "start", Title: info.Title, Engine: info.Engine, Pages: pages})
}

func (f *streamJSONFormatter) page(p PageInfo) {
	f.write(streamEvent{Type: "page", Page: &p})
}

func (f *streamJSONFormatter) end() error {
	f.write(streamEvent{Type: "end"})
	return f.err
}
