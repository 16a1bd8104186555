// Package tui hosts a scene in the terminal.
//
// The canvas is rendered by the software rasterizer, scaled down to the
// terminal grid and drawn with half-block characters, two pixels per cell.
// The bottom line shows the current mode and color.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/clickshapes/scene"
)

// Pixel size of one terminal cell in surface coordinates.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Default grid size before the first window size message.
const (
	defaultCols = 80
	defaultRows = 24
)

// CanvasTarget is the pointer event target for clicks on the canvas.
const CanvasTarget = "canvas"

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// Model is the bubbletea model of the terminal host.
type Model struct {
	scene  *scene.Scene
	raster *render.SoftwareRasterizer
	title  cases.Caser

	cols, rows int
	label      string
	err        error
}

// New creates a model with its own software rasterizer and scene. Scene
// options are applied after the model installs itself as label sink.
func New(opts ...scene.Option) (*Model, error) {
	m := &Model{
		title: cases.Title(language.English),
		cols:  defaultCols,
		rows:  defaultRows,
	}
	w, h := m.surfaceSize()
	r, err := render.NewSoftwareRasterizer(w, h)
	if err != nil {
		return nil, err
	}
	m.raster = r

	opts = append([]scene.Option{scene.WithLabelSink(m)}, opts...)
	s, err := scene.New(r, opts...)
	if err != nil {
		return nil, err
	}
	m.scene = s
	return m, nil
}

// Scene returns the hosted scene.
func (m *Model) Scene() *scene.Scene { return m.scene }

// SetModeLabel implements scene.LabelSink.
func (m *Model) SetModeLabel(label string) { m.label = label }

// surfaceSize returns the pixel size of the canvas area. The last row is
// the status line.
func (m *Model) surfaceSize() (w, h int) {
	return m.cols * CellWidth, max(m.rows-1, 1) * CellHeight
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width <= 0 || msg.Height <= 0 {
			return m, nil
		}
		m.cols, m.rows = msg.Width, msg.Height
		w, h := m.surfaceSize()
		m.err = m.scene.Resize(w, h)

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEscape:
			return m, tea.Quit
		case msg.Type == tea.KeyCtrlR:
			m.err = m.scene.Reset()
		default:
			m.scene.HandleKeyDown(msg.String())
		}

	case tea.MouseMsg:
		if msg.Type != tea.MouseLeft || msg.Y >= m.rows-1 {
			return m, nil
		}
		m.err = m.scene.HandlePointerDown(scene.PointerEvent{
			X:      (float64(msg.X) + 0.5) * CellWidth,
			Y:      (float64(msg.Y) + 0.5) * CellHeight,
			Target: CanvasTarget,
		})
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	canvasRows := max(m.rows-1, 1)
	b.WriteString(halfBlocks(m.raster.Image(), m.cols, canvasRows))
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *Model) statusLine() string {
	c := m.scene.Color()
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c.NRGBA()))).Render("■")
	line := statusStyle.Render(m.title.String(m.label)) + " " + swatch + " " + c.Code.String() +
		hintStyle.Render("  r/g/b color · p/h/v/t/q/c mode · ctrl+r clear · esc quit")
	if m.err != nil {
		line += " " + errorStyle.Render(m.err.Error())
	}
	return line
}

// halfBlocks scales img to cols x rows*2 samples and renders each cell as an
// upper half block: foreground is the top sample, background the bottom.
func halfBlocks(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := overBlack(dst.RGBAAt(x, 2*y))
			bottom := overBlack(dst.RGBAAt(x, 2*y+1))
			if top == (color.RGBA{A: 255}) && bottom == top {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render("▀"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// overBlack composites a premultiplied color over an opaque black terminal.
func overBlack(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

// Run starts the terminal program and blocks until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
