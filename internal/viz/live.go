package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/report"
)

const (
	tableRows  = 12
	chartWidth = 50
	chartRows  = 10

	// minRateStep is the smallest raise per key press, so a zero rate
	// can still be tuned up.
	minRateStep = 0.005
)

// tunable lists the parameters the arrow keys adjust.
var tunable = []string{"rabbit_growth", "wolf_growth", "wolf_death", "predation"}

type TickMsg time.Time

// Model plays back a population run one year per tick.
type Model struct {
	title    string
	cfg      population.Config
	initial  population.Config
	res      population.Result
	shown    int
	running  bool
	interval time.Duration
	selected int
	theme    int
	err      error
}

// NewModel simulates cfg up front; an invalid config is returned as an
// error rather than shown in the view.
func NewModel(title string, cfg population.Config, interval time.Duration) (Model, error) {
	res, err := population.Simulate(cfg)
	if err != nil {
		return Model{}, err
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return Model{
		title:    title,
		cfg:      cfg,
		initial:  cfg,
		res:      res,
		shown:    1,
		running:  true,
		interval: interval,
	}, nil
}

// WithTheme starts the view on the named theme.
func (m Model) WithTheme(name string) Model {
	t := GetTheme(name)
	for i := range Themes {
		if Themes[i].Name == t.Name {
			m.theme = i
		}
	}
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys and advances playback on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "right", "l":
			m.advance(1)
		case "left", "h":
			m.advance(-1)
		case "tab":
			m.selected = (m.selected + 1) % len(tunable)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	case TickMsg:
		if m.running {
			m.advance(1)
			if m.shown == m.res.Len() {
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance(dir int) {
	m.shown += dir
	if m.shown < 1 {
		m.shown = 1
	}
	if m.shown > m.res.Len() {
		m.shown = m.res.Len()
	}
}

// reset restores the initial rates and rewinds to year 0.
func (m *Model) reset() {
	if m.cfg != m.initial {
		if res, err := population.Simulate(m.initial); err == nil {
			m.res = res
		}
		m.cfg = m.initial
	}
	m.err = nil
	m.shown = 1
	m.running = true
}

// adjustParam scales the selected rate and re-runs the model. The
// playback position is kept.
func (m *Model) adjustParam(factor float64) {
	key := tunable[m.selected]
	cfg := m.cfg
	v := cfg.Params()[key]
	next := v * factor
	if factor > 1 && next-v < minRateStep {
		next = v + minRateStep
	}
	if err := cfg.SetParam(key, next); err != nil {
		m.err = err
		return
	}
	res, err := population.Simulate(cfg)
	if err != nil {
		m.err = err
		return
	}
	m.cfg, m.res, m.err = cfg, res, nil
	m.advance(0)
}

// Visible returns the records revealed so far.
func (m Model) Visible() []population.YearRecord {
	return m.res.Records[:m.shown]
}

func (m Model) Config() population.Config { return m.cfg }

// View renders the TUI interface.
func (m Model) View() string {
	theme := Themes[m.theme]
	st := theme.styles()
	visible := m.Visible()
	current := visible[len(visible)-1]

	var left strings.Builder
	left.WriteString(report.TableHeader + "\n" + report.TableRule + "\n")
	start := 0
	if len(visible) > tableRows {
		start = len(visible) - tableRows
	}
	for _, rec := range visible[start:] {
		left.WriteString(report.FormatRow(rec) + "\n")
	}

	var right strings.Builder
	status := "PLAYING"
	if !m.running {
		status = "PAUSED"
		if m.shown == m.res.Len() {
			status = "DONE"
		}
	}
	right.WriteString(fmt.Sprintf("%s\n\n", status))
	if len(visible) > 1 {
		chart := asciigraph.PlotMany(
			[][]float64{series(visible, population.Rabbits), series(visible, population.Wolves)},
			asciigraph.Height(chartRows),
			asciigraph.Width(chartWidth),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		)
		right.WriteString(chart + "\n\n")
	}

	right.WriteString(st.label.Render("Year") + st.value.Render(fmt.Sprintf("%d / %d", current.Year, m.cfg.Years)) + "\n")
	right.WriteString(st.label.Render("Rabbits") + lipgloss.NewStyle().Foreground(theme.Rabbits).Render(fmt.Sprintf("%d", current.Rabbits)) + "\n")
	right.WriteString(st.label.Render("Wolves") + lipgloss.NewStyle().Foreground(theme.Wolves).Render(fmt.Sprintf("%d", current.Wolves)) + "\n")

	right.WriteString("\nRATES\n")
	params := m.cfg.Params()
	for i, k := range tunable {
		line := fmt.Sprintf("%-14s %.4f", k, params[k])
		if i == m.selected {
			right.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			right.WriteString("  " + st.value.Render(line) + "\n")
		}
	}
	if m.err != nil {
		right.WriteString("\n" + st.active.Render(m.err.Error()) + "\n")
	}
	right.WriteString(st.help.Render("SP:Pause ←→:Step R:Restart\nTab:Rate ↑↓:Tune T:Theme Q:Quit"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, st.panel.Render(left.String()), st.panel.Render(right.String()))
	return st.header.Render(strings.ToUpper(m.title)) + "\n" + body
}

func series(recs []population.YearRecord, s population.Species) []float64 {
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = float64(r.Count(s))
	}
	return out
}
