package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 6
	overlayMaxWidth  = 56
	overlayMaxHeight = 18
)

// OverlayModel renders an opaque centered box on top of the base view.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// Render draws the overlay content centered over base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	contentW, contentH := contentSize(contentLines)

	boxW := min(width, max(overlayMinWidth, min(overlayMaxWidth, contentW+4)))
	boxH := min(height, max(overlayMinHeight, min(overlayMaxHeight, contentH+2)))
	if boxW <= 0 || boxH <= 0 {
		return base
	}

	top := max(0, (height-boxH)/2)
	left := max(0, (width-boxW)/2)

	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	boxLines := o.boxLines(contentLines, boxW, boxH, bgSeq)

	baseLines := normalizeBase(base, width, height)
	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+boxLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// boxLines builds the overlay box rows with the content vertically centered.
func (o OverlayModel) boxLines(content []string, boxW, boxH int, bgSeq string) []string {
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle
	lines := make([]string, boxH)
	for i := range lines {
		lines[i] = blank
	}

	contentW, contentH := contentSize(content)
	contentW = min(contentW, boxW-2)
	contentH = min(contentH, boxH)
	top := max(0, (boxH-contentH)/2)
	left := max(1, (boxW-contentW)/2)

	for i := 0; i < contentH; i++ {
		line := content[i]
		w := lipgloss.Width(line)
		if w > contentW {
			line = ansi.Cut(line, 0, contentW)
			w = contentW
		}
		// Restore the overlay background after embedded style resets.
		line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)

		rightPad := boxW - left - w
		if rightPad < 0 {
			rightPad = 0
		}
		lines[top+i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq +
			strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}

	return lines
}
