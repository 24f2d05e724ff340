// ABOUTME: Status bar: document title on the left; page, scale, and theme icon on the right
// ABOUTME: Render failures replace the title with an inline error; a spinner marks renders in flight

package btea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/pdfview-go/pkg/tui/width"
)

// statusInfo is everything the status bar shows.
type statusInfo struct {
	Title     string
	Page      int // 1-based; 0 hides the counter
	Count     int
	Scale     float64
	Icon      string
	Spinner   string // empty when idle
	RenderErr error
}

// newPageCounter returns the paginator used for the "page / count" segment.
func newPageCounter() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "%d / %d"
	return p
}

// renderStatusBar lays out info on one row of exactly w columns.
func renderStatusBar(info statusInfo, counter paginator.Model, w int) string {
	if w <= 0 {
		return ""
	}
	s := Styles()

	var right []string
	if info.Spinner != "" {
		right = append(right, info.Spinner)
	}
	if info.Page > 0 && info.Count > 0 {
		counter.TotalPages = info.Count
		counter.Page = info.Page - 1
		right = append(right, counter.View())
	}
	if info.Scale > 0 {
		right = append(right, fmt.Sprintf("%.0f%%", info.Scale*100))
	}
	if info.Icon != "" {
		right = append(right, info.Icon)
	}
	rightText := strings.Join(right, "  ") + " "

	leftStyle := s.Title
	left := " " + norm.NFC.String(info.Title)
	if info.RenderErr != nil {
		leftStyle = s.Error.Inherit(s.StatusBar)
		left = " " + oneLine(info.RenderErr)
	}

	// Lay out plain text first so styling never skews the column math.
	plain := width.Spread(left, rightText, w)
	if width.VisibleWidth(rightText) >= w {
		return s.PageNumber.Render(plain)
	}
	// Spread keeps right intact as the row suffix when it fits.
	return leftStyle.Render(strings.TrimSuffix(plain, rightText)) + s.PageNumber.Render(rightText)
}
