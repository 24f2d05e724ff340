// ABOUTME: Image-sequence engine: a directory or CBZ/ZIP archive where each image is a page
// ABOUTME: Page geometry is read from image headers concurrently at open time

package document

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	// Register decoders for page formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	tuiimage "github.com/mauromedda/pdfview-go/pkg/tui/image"
)

// headerBytes is how much of each page file is read to find its dimensions.
const headerBytes = 64 << 10

var pageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// Images opens directories and CBZ/ZIP archives of page images.
type Images struct {
	// Concurrency bounds header reads at open time (default: NumCPU).
	Concurrency int
}

// NewImages returns an Images engine. concurrency <= 0 uses runtime.NumCPU.
func NewImages(concurrency int) *Images {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Images{Concurrency: concurrency}
}

// Name implements Engine.
func (e *Images) Name() string { return EngineImages }

// Open implements Engine.
func (e *Images) Open(ctx context.Context, p string) (Document, error) {
	fi, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("opening %s: %w", p, err)
	}

	var src source
	if fi.IsDir() {
		src, err = openDirSource(p)
	} else {
		src, err = openZipSource(p)
	}
	if err != nil {
		return nil, err
	}

	names := src.names()
	if len(names) == 0 {
		src.close()
		return nil, fmt.Errorf("%w: %s contains no page images", ErrMalformed, p)
	}

	sizes := make([]image.Point, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sz, err := readSize(src, name)
			if err != nil {
				return fmt.Errorf("%w: page %d (%s): %v", ErrMalformed, i+1, name, err)
			}
			sizes[i] = sz
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		src.close()
		return nil, err
	}

	return &imageDocument{title: titleFromPath(p), src: src, names: names, sizes: sizes}, nil
}

// readSize sniffs the header first and falls back to a full config decode.
func readSize(src source, name string) (image.Point, error) {
	rc, err := src.open(name)
	if err != nil {
		return image.Point{}, err
	}
	defer rc.Close()

	head, err := io.ReadAll(io.LimitReader(rc, headerBytes))
	if err != nil {
		return image.Point{}, err
	}
	if dim, err := tuiimage.GetDimensions(head); err == nil && dim.Width > 0 && dim.Height > 0 {
		return image.Pt(dim.Width, dim.Height), nil
	}

	cfg, _, err := image.DecodeConfig(io.MultiReader(bytes.NewReader(head), rc))
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}

type imageDocument struct {
	title string
	src   source
	names []string
	sizes []image.Point
}

func (d *imageDocument) Title() string { return d.title }
func (d *imageDocument) NumPages() int { return len(d.names) }
func (d *imageDocument) Close() error  { return d.src.close() }

func (d *imageDocument) Page(_ context.Context, n int) (Page, error) {
	if err := checkPage(n, len(d.names)); err != nil {
		return nil, err
	}
	return &imagePage{doc: d, n: n}, nil
}

type imagePage struct {
	doc *imageDocument
	n   int
}

func (p *imagePage) Number() int { return p.n }

// Size treats one image pixel as one point.
func (p *imagePage) Size() (float64, float64) {
	s := p.doc.sizes[p.n-1]
	return float64(s.X), float64(s.Y)
}

func (p *imagePage) RenderInto(ctx context.Context, dst draw.Image, _ Viewport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := p.doc.names[p.n-1]
	rc, err := p.doc.src.open(name)
	if err != nil {
		return fmt.Errorf("opening page %d: %w", p.n, err)
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return fmt.Errorf("decoding page %d (%s): %w", p.n, name, err)
	}
	blit(dst, img)
	return nil
}

// source lists and opens page files.
type source interface {
	names() []string
	open(name string) (io.ReadCloser, error)
	close() error
}

type dirSource struct {
	root  string
	files []string
}

func openDirSource(root string) (*dirSource, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && isPageFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sortNatural(files)
	return &dirSource{root: root, files: files}, nil
}

func (s *dirSource) names() []string { return s.files }
func (s *dirSource) close() error    { return nil }

func (s *dirSource) open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, name))
}

type zipSource struct {
	rc    *zip.ReadCloser
	files map[string]*zip.File
	order []string
}

func openZipSource(p string) (*zipSource, error) {
	rc, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, p, err)
	}
	s := &zipSource{rc: rc, files: make(map[string]*zip.File)}
	for _, f := range rc.File {
		if f.FileInfo().IsDir() || !isPageFile(f.Name) || isHidden(f.Name) {
			continue
		}
		s.files[f.Name] = f
		s.order = append(s.order, f.Name)
	}
	sortNatural(s.order)
	return s, nil
}

func (s *zipSource) names() []string { return s.order }
func (s *zipSource) close() error    { return s.rc.Close() }

func (s *zipSource) open(name string) (io.ReadCloser, error) {
	f, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: not in archive", name)
	}
	return f.Open()
}

func isPageFile(name string) bool {
	return pageExts[strings.ToLower(path.Ext(name))] && !strings.HasPrefix(path.Base(name), ".")
}

// isHidden skips archive metadata such as __MACOSX/ entries.
func isHidden(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, "__") || strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// sortNatural orders names so that "page2" sorts before "page10".
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

func naturalLess(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	for a != "" && b != "" {
		ca, cb := a[0], b[0]
		if isDigit(ca) && isDigit(cb) {
			na, ra := splitDigits(a)
			nb, rb := splitDigits(b)
			ta, tb := strings.TrimLeft(na, "0"), strings.TrimLeft(nb, "0")
			if len(ta) != len(tb) {
				return len(ta) < len(tb)
			}
			if ta != tb {
				return ta < tb
			}
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			a, b = ra, rb
			continue
		}
		if ca != cb {
			return ca < cb
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
