// ABOUTME: PDF engine backed by poppler-utils: pdfinfo for page geometry, pdftoppm for pixels
// ABOUTME: One pdftoppm invocation per page render, PNG streamed over stdout

package document

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Runner executes an external command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec; stderr is folded into the error.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// Poppler opens PDF files.
type Poppler struct {
	PDFInfo  string
	PDFToPPM string
	Run      Runner
}

// NewPoppler returns a Poppler engine using the given binaries (defaults
// "pdfinfo" and "pdftoppm" when empty).
func NewPoppler(pdfinfo, pdftoppm string) *Poppler {
	if pdfinfo == "" {
		pdfinfo = "pdfinfo"
	}
	if pdftoppm == "" {
		pdftoppm = "pdftoppm"
	}
	return &Poppler{PDFInfo: pdfinfo, PDFToPPM: pdftoppm, Run: ExecRunner}
}

// Name implements Engine.
func (p *Poppler) Name() string { return EnginePoppler }

// Open implements Engine.
func (p *Poppler) Open(ctx context.Context, path string) (Document, error) {
	if err := checkPDFHeader(path); err != nil {
		return nil, err
	}

	out, err := p.run(ctx, p.PDFInfo, path)
	if err != nil {
		return nil, infoError(err)
	}
	info, err := parsePDFInfo(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	sizes := make([]pageSize, info.pages)
	for i := range sizes {
		sizes[i] = info.defaultSize
	}
	if info.pages > 1 {
		out, err := p.run(ctx, p.PDFInfo, "-f", "1", "-l", strconv.Itoa(info.pages), path)
		if err != nil {
			return nil, infoError(err)
		}
		for n, s := range parsePageSizes(out) {
			if n >= 1 && n <= info.pages {
				sizes[n-1] = s
			}
		}
	}

	title := info.title
	if title == "" {
		title = titleFromPath(path)
	}
	return &pdfDocument{engine: p, path: path, title: title, sizes: sizes}, nil
}

func (p *Poppler) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	run := p.Run
	if run == nil {
		run = ExecRunner
	}
	out, err := run(ctx, name, args...)
	if errors.Is(err, exec.ErrNotFound) {
		return nil, fmt.Errorf("%s not found (install poppler-utils): %w", name, err)
	}
	return out, err
}

// infoError classifies a pdfinfo failure. A missing binary is reported as
// is; anything else means poppler could not parse the file.
func infoError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}

// checkPDFHeader verifies the file exists and starts with "%PDF-" within
// its first kilobyte, as readers tolerate leading junk.
func checkPDFHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, 1024)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !bytes.Contains(head[:n], []byte("%PDF-")) {
		return fmt.Errorf("%w: %s has no PDF header", ErrMalformed, path)
	}
	return nil
}

type pageSize struct {
	w, h float64
	rot  int
}

// oriented returns the displayed size, swapping axes for quarter turns.
func (s pageSize) oriented() (float64, float64) {
	if s.rot%180 != 0 {
		return s.h, s.w
	}
	return s.w, s.h
}

type pdfInfo struct {
	title       string
	pages       int
	defaultSize pageSize
}

var (
	reTitle    = regexp.MustCompile(`^Title:\s*(.*)$`)
	rePages    = regexp.MustCompile(`^Pages:\s+(\d+)`)
	reSize     = regexp.MustCompile(`^Page size:\s+([\d.]+) x ([\d.]+) pts`)
	reRot      = regexp.MustCompile(`^Page rot:\s+(-?\d+)`)
	rePageSize = regexp.MustCompile(`^Page\s+(\d+) size:\s+([\d.]+) x ([\d.]+) pts`)
	rePageRot  = regexp.MustCompile(`^Page\s+(\d+) rot:\s+(-?\d+)`)
)

func parsePDFInfo(out []byte) (pdfInfo, error) {
	var info pdfInfo
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if m := reTitle.FindStringSubmatch(line); m != nil {
			info.title = strings.TrimSpace(m[1])
		} else if m := rePages.FindStringSubmatch(line); m != nil {
			info.pages, _ = strconv.Atoi(m[1])
		} else if m := reSize.FindStringSubmatch(line); m != nil {
			info.defaultSize.w, _ = strconv.ParseFloat(m[1], 64)
			info.defaultSize.h, _ = strconv.ParseFloat(m[2], 64)
		} else if m := reRot.FindStringSubmatch(line); m != nil {
			info.defaultSize.rot = normalizeRotation(m[1])
		}
	}
	if info.pages < 1 {
		return info, fmt.Errorf("pdfinfo reported no pages")
	}
	if info.defaultSize.w <= 0 || info.defaultSize.h <= 0 {
		return info, fmt.Errorf("pdfinfo reported no page size")
	}
	return info, nil
}

func parsePageSizes(out []byte) map[int]pageSize {
	sizes := make(map[int]pageSize)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if m := rePageSize.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			s := sizes[n]
			s.w, _ = strconv.ParseFloat(m[2], 64)
			s.h, _ = strconv.ParseFloat(m[3], 64)
			sizes[n] = s
		} else if m := rePageRot.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			s := sizes[n]
			s.rot = normalizeRotation(m[2])
			sizes[n] = s
		}
	}
	for n, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			delete(sizes, n)
		}
	}
	return sizes
}

func normalizeRotation(s string) int {
	r, _ := strconv.Atoi(s)
	r %= 360
	if r < 0 {
		r += 360
	}
	return r
}

type pdfDocument struct {
	engine *Poppler
	path   string
	title  string
	sizes  []pageSize
}

func (d *pdfDocument) Title() string { return d.title }
func (d *pdfDocument) NumPages() int { return len(d.sizes) }
func (d *pdfDocument) Close() error  { return nil }

func (d *pdfDocument) Page(_ context.Context, n int) (Page, error) {
	if err := checkPage(n, len(d.sizes)); err != nil {
		return nil, err
	}
	return &pdfPage{doc: d, n: n}, nil
}

type pdfPage struct {
	doc *pdfDocument
	n   int
}

func (p *pdfPage) Number() int { return p.n }

func (p *pdfPage) Size() (float64, float64) {
	return p.doc.sizes[p.n-1].oriented()
}

func (p *pdfPage) RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error {
	page := strconv.Itoa(p.n)
	out, err := p.doc.engine.run(ctx, p.doc.engine.PDFToPPM,
		"-f", page, "-l", page,
		"-singlefile", "-png",
		"-scale-to-x", strconv.Itoa(vp.Width),
		"-scale-to-y", strconv.Itoa(vp.Height),
		p.doc.path,
	)
	if err != nil {
		return fmt.Errorf("rasterizing page %d: %w", p.n, err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return fmt.Errorf("decoding page %d: %w", p.n, err)
	}
	blit(dst, img)
	return nil
}

// blit copies src onto dst, resampling when the sizes differ.
func blit(dst draw.Image, src image.Image) {
	if src.Bounds().Size() == dst.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
		return
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
}
