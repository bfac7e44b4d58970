package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/pipeline"
	"github.com/matzehuels/chromatic/pkg/render"
	"github.com/matzehuels/chromatic/pkg/samples"
)

// viewCommand creates the view command, an interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var run runFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the sample graphs and their colorings in the terminal",
		Long: `Open an interactive viewer that draws the colored sample graph.

Keys:
  ←/→, tab   previous / next sample
  g, s, e    greedy, sf, exact
  a          cycle algorithms
  r          random sample
  q, esc     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			palette, err := cfg.Palette()
			if err != nil {
				return err
			}
			opts := run.options(cmd, cfg)
			// Log lines would tear the alternate screen.
			opts.Logger = log.New(io.Discard)

			model, err := NewViewModel(cmd.Context(), c.newRunner(true), opts, palette)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	run.register(cmd)
	return cmd
}

// viewer styles
var (
	viewEdgeStyle   = lipgloss.NewStyle().Foreground(colorDim)
	viewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	viewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	vertexGlyph = '●'
	edgeGlyph   = '·'

	defaultViewWidth  = 72
	defaultViewHeight = 24
	viewChromeLines   = 6 // title, blank, status, legend, blank, help
	minCanvasWidth    = 16
	minCanvasHeight   = 8
)

// =============================================================================
// ViewModel - Interactive coloring viewer
// =============================================================================

// colorDoneMsg carries a finished coloring run back to the model. Runs
// superseded by a newer request are dropped by sequence number.
type colorDoneMsg struct {
	seq    int
	result *pipeline.Result
	err    error
}

// ViewModel is the bubbletea model for the terminal viewer.
type ViewModel struct {
	Samples   []string
	SampleIdx int
	Algorithm graph.Algorithm
	Palette   render.Palette

	Result *pipeline.Result
	Err    error
	Busy   bool

	Width, Height int

	ctx    context.Context // parent of every run
	runCtx context.Context // current run
	cancel context.CancelFunc
	runner *pipeline.Runner
	base   pipeline.Options
	rng    *rand.Rand
	seq    int
}

// NewViewModel creates a viewer starting at opts.Sample and opts.Algorithm.
func NewViewModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, palette render.Palette) (ViewModel, error) {
	names := samples.Names()
	if opts.Sample == "" {
		opts.Sample = pipeline.DefaultSample
	}
	idx := slices.Index(names, opts.Sample)
	if idx < 0 {
		return ViewModel{}, errors.New(errors.ErrCodeInvalidSample, "unknown sample %q (available: %v)", opts.Sample, names)
	}
	alg, err := graph.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return ViewModel{}, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	return ViewModel{
		Samples:   names,
		SampleIdx: idx,
		Algorithm: alg,
		Palette:   palette,
		Busy:      true,
		Width:     defaultViewWidth,
		Height:    defaultViewHeight,
		ctx:       ctx,
		runCtx:    runCtx,
		cancel:    cancel,
		runner:    runner,
		base:      opts,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (m ViewModel) Init() tea.Cmd {
	return m.colorCmd(m.runCtx)
}

// colorCmd runs the current sample and algorithm off the UI goroutine.
func (m ViewModel) colorCmd(ctx context.Context) tea.Cmd {
	opts := m.base
	opts.Graph = nil
	opts.Sample = m.Samples[m.SampleIdx]
	opts.Algorithm = m.Algorithm.String()
	runner, seq := m.runner, m.seq

	return func() tea.Msg {
		res, err := runner.Execute(ctx, opts)
		return colorDoneMsg{seq: seq, result: res, err: err}
	}
}

// recolor abandons any run in flight and starts a new one.
func (m ViewModel) recolor() (ViewModel, tea.Cmd) {
	m.cancel()
	m.runCtx, m.cancel = context.WithCancel(m.ctx)
	m.seq++
	m.Busy = true
	m.Err = nil
	return m, m.colorCmd(m.runCtx)
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "right", "l", "n", "tab":
			m.SampleIdx = (m.SampleIdx + 1) % len(m.Samples)
			return m.recolor()
		case "left", "h", "p", "shift+tab":
			m.SampleIdx = (m.SampleIdx - 1 + len(m.Samples)) % len(m.Samples)
			return m.recolor()
		case "r":
			m.SampleIdx = m.rng.Intn(len(m.Samples))
			return m.recolor()
		case "g":
			m.Algorithm = graph.Greedy
			return m.recolor()
		case "s":
			m.Algorithm = graph.SmallestFirst
			return m.recolor()
		case "e":
			m.Algorithm = graph.Exact
			return m.recolor()
		case "a":
			algs := graph.Algorithms()
			m.Algorithm = algs[(slices.Index(algs, m.Algorithm)+1)%len(algs)]
			return m.recolor()
		}
	case colorDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.Busy = false
		m.Err = msg.err
		if msg.result != nil {
			m.Result = msg.result
		}
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	}
	return m, nil
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("chromatic"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(m.Samples[m.SampleIdx]))
	b.WriteString(StyleDim.Render(" · "))
	b.WriteString(StyleValue.Render(m.Algorithm.String()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.SampleIdx+1, len(m.Samples))))
	b.WriteString("\n\n")

	cw := max(m.Width, minCanvasWidth)
	ch := max(m.Height-viewChromeLines, minCanvasHeight)
	res := m.Result
	if res != nil && res.Sample == m.Samples[m.SampleIdx] {
		b.WriteString(drawGraph(res.Graph, m.Palette, cw, ch))
	} else {
		b.WriteString(strings.Repeat("\n", ch-1))
	}
	b.WriteString("\n")

	b.WriteString(m.status())
	b.WriteString("\n")
	if res != nil && !m.Busy && m.Err == nil {
		for i := 0; i < res.NumColors; i++ {
			b.WriteString(swatch(m.Palette, i))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(viewHelpStyle.Render("←/→ sample  g/s/e algorithm  a cycle  r random  q quit"))

	return b.String()
}

func (m ViewModel) status() string {
	switch {
	case m.Busy:
		return viewStatusStyle.Render("coloring...")
	case m.Err != nil:
		return StyleError.Render(iconError + " " + errors.UserMessage(m.Err))
	case m.Result == nil:
		return ""
	}

	res := m.Result
	parts := []string{
		fmt.Sprintf("%d colors", res.NumColors),
		"valid " + yesNo(res.Valid),
		fmt.Sprintf("%d vertices", res.Stats.Vertices),
		fmt.Sprintf("%d edges", res.Stats.Edges),
		fmt.Sprintf("%.3f ms", float64(res.Stats.Duration.Microseconds())/1000),
	}
	line := viewStatusStyle.Render(strings.Join(parts, " · "))
	if res.FellBack {
		line += "  " + StyleWarning.Render(fmt.Sprintf("%s abandoned, used %s", res.Algorithm, res.Used))
	}
	return line
}

// =============================================================================
// Canvas
// =============================================================================

// Cell markers besides color indices.
const (
	cellEmpty = -3
	cellEdge  = -2
)

// drawGraph rasterizes g onto a width x height character grid. Edges are
// dotted lines, vertices are discs in their palette color; uncolored
// vertices use the palette fallback.
func drawGraph(g *graph.Graph, p render.Palette, width, height int) string {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		for x := range cells[y] {
			cells[y][x] = cellEmpty
		}
	}

	frame := render.Frame{Width: float64(width - 1), Height: float64(height - 1)}
	pos := make(map[int][2]int, g.VertexCount())
	for _, v := range g.Vertices() {
		px, py := frame.Project(v.X, v.Y)
		pos[v.ID] = [2]int{clamp(int(math.Round(px)), width-1), clamp(int(math.Round(py)), height-1)}
	}

	for _, e := range g.Edges() {
		a, b := pos[e.Source], pos[e.Target]
		dx, dy := b[0]-a[0], b[1]-a[1]
		steps := max(abs(dx), abs(dy))
		for i := 1; i < steps; i++ {
			x := a[0] + int(math.Round(float64(dx*i)/float64(steps)))
			y := a[1] + int(math.Round(float64(dy*i)/float64(steps)))
			if cells[y][x] == cellEmpty {
				cells[y][x] = cellEdge
			}
		}
	}

	for _, v := range g.Vertices() {
		at := pos[v.ID]
		cells[at[1]][at[0]] = g.VertexColor(v.ID)
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			// Style runs of equal cells together.
			end := x + 1
			for end < len(row) && row[end] == row[x] {
				end++
			}
			b.WriteString(renderRun(row[x], end-x, p))
			x = end
		}
	}
	return b.String()
}

func renderRun(cell, n int, p render.Palette) string {
	switch cell {
	case cellEmpty:
		return strings.Repeat(" ", n)
	case cellEdge:
		return viewEdgeStyle.Render(strings.Repeat(string(edgeGlyph), n))
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Color(cell)))
	return style.Render(strings.Repeat(string(vertexGlyph), n))
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
