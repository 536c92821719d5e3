// Package historyui provides the Bubble Tea run history browser.
package historyui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/stats"
	"github.com/verte-zerg/glyphpass/internal/store"
)

const (
	tabOverview = iota
	tabRuns
	tabEntropy
)

const (
	plotHeight    = 10
	defaultWindow = 10
	fallbackWidth = 80
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Source reads recorded runs. *store.Store implements it.
type Source interface {
	ListRuns(ctx context.Context, f store.Filter) ([]model.Run, error)
	Summarize(ctx context.Context, f store.Filter) ([]model.VariantAggregate, error)
}

// Model implements the Bubble Tea history UI.
type Model struct {
	src    Source
	filter store.Filter
	window int

	runs   []model.Run
	aggs   []model.VariantAggregate
	errMsg string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	runTable  table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a history UI model.
func NewModel(src Source, filter store.Filter) *Model {
	m := &Model{
		src:    src,
		filter: filter,
		window: defaultWindow,
		tabs:   []string{"Overview", "Runs", "Entropy"},
	}
	m.initInputs()
	m.runTable = buildRunTable(nil, fallbackWidth, 10)
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=", "+":
			m.window = nextWindow(m.window)
			m.renderTabContents()
			return m, nil
		case "-":
			m.window = prevWindow(m.window)
			m.renderTabContents()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabRuns {
				m.runTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabRuns {
				m.runTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabRuns {
				var cmd tea.Cmd
				m.runTable, cmd = m.runTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Variant: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Window: "),
	}
	m.setInputsFromFilter()
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromFilter() {
	m.filterInputs[0].SetValue(string(m.filter.Variant))
	if m.filter.Since != nil {
		m.filterInputs[1].SetValue(m.filter.Since.Format("2006-01-02"))
	} else {
		m.filterInputs[1].SetValue("")
	}
	if m.filter.Last > 0 {
		m.filterInputs[2].SetValue(strconv.Itoa(m.filter.Last))
	} else {
		m.filterInputs[2].SetValue("")
	}
	m.filterInputs[3].SetValue(strconv.Itoa(m.window))
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(lipgloss.Height(activeNavStyle.Render("X")), 1)
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = max(m.height-headerHeight-footerHeight, 1)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.runTable.SetWidth(m.width)
	m.runTable.SetHeight(max(bodyHeight-1, 1))
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = max(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	if m.activeTab == tabRuns {
		m.runTable.Focus()
	} else {
		m.runTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	filters := padLines(m.renderFilterSummary(), m.width)
	return tabs + "\n" + filters
}

func (m *Model) renderFilterSummary() string {
	variant := string(m.filter.Variant)
	if variant == "" {
		variant = "any"
	}
	since := "any"
	if m.filter.Since != nil {
		since = m.filter.Since.Format("2006-01-02")
	}
	last := "all"
	if m.filter.Last > 0 {
		last = strconv.Itoa(m.filter.Last)
	}
	summary := fmt.Sprintf("Filter: variant=%s  since=%s  last=%s  window=%d", variant, since, last, m.window)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  quit: ctrl+c")
	}
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Filter: /  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabRuns {
		if len(m.runs) == 0 {
			return fitLines("No runs recorded.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.runTable.View()), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filter (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) refresh() {
	ctx := context.Background()
	runs, err := m.src.ListRuns(ctx, m.filter)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load runs: %v", err)
		m.runs, m.aggs = nil, nil
		m.renderTabContents()
		return
	}
	aggs, err := m.src.Summarize(ctx, m.filter)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to summarize runs: %v", err)
		m.runs, m.aggs = nil, nil
		m.renderTabContents()
		return
	}
	m.errMsg = ""
	m.runs = runs
	m.aggs = aggs
	_, rows := runTableData(runs)
	m.runTable.SetRows(rows)
	m.runTable.GotoBottom()
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	if m.errMsg != "" {
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load history.")
		}
		return
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.runs, m.aggs, width))
	m.viewports[tabEntropy].SetContent(renderEntropy(m.runs, m.window, width))
}

func renderOverview(runs []model.Run, aggs []model.VariantAggregate, width int) string {
	if len(runs) == 0 {
		return "No runs recorded."
	}
	return strings.TrimRight(renderSummaryCards(runs, width)+"\n\n"+renderVariantTable(runs, aggs), "\n")
}

func renderSummaryCards(runs []model.Run, width int) string {
	var totalBits, totalLen, best float64
	for _, r := range runs {
		totalBits += r.EntropyBits
		totalLen += float64(r.Length)
		best = max(best, r.EntropyBits)
	}
	count := float64(len(runs))
	cards := []string{
		metricCard("Runs", strconv.Itoa(len(runs))),
		metricCard("Avg bits", fmt.Sprintf("%.1f", totalBits/count)),
		metricCard("Best bits", fmt.Sprintf("%.1f", best)),
		metricCard("Avg length", fmt.Sprintf("%.1f", totalLen/count)),
		metricCard("Last run", runs[len(runs)-1].CreatedAt.Local().Format("2006-01-02 15:04")),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// renderVariantTable prints per-variant aggregates with an entropy trend
// sparkline of the most recent runs.
func renderVariantTable(runs []model.Run, aggs []model.VariantAggregate) string {
	var buf bytes.Buffer
	if err := stats.RenderRunSummary(&buf, aggs); err != nil {
		return fmt.Sprintf("Failed to render summary: %v", err)
	}
	byVariant := stats.EntropyByVariant(runs)
	lines := []string{strings.TrimRight(buf.String(), "\n"), "", headerStyle.Render("Trend (bits per run)")}
	for _, a := range aggs {
		values := byVariant[a.Variant]
		if len(values) > 40 {
			values = values[len(values)-40:]
		}
		lines = append(lines, fmt.Sprintf("%-13s %s", a.Variant, stats.Sparkline(values)))
	}
	return strings.Join(lines, "\n")
}

func renderEntropy(runs []model.Run, window, width int) string {
	if len(runs) == 0 {
		return "No runs recorded."
	}
	var buf bytes.Buffer
	if err := stats.RenderEntropyCurves(&buf, runs, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render entropy: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func runTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 16},
		{Title: "Variant", Width: 13},
		{Title: "Length", Width: 6},
		{Title: "Pool", Width: 6},
		{Title: "Bits", Width: 8},
		{Title: "Digits", Width: 6},
		{Title: "Scripts", Width: 7},
	}
}

func runTableData(runs []model.Run) ([]table.Column, []table.Row) {
	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(r.Variant),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.PoolSize),
			fmt.Sprintf("%.2f", r.EntropyBits),
			strconv.Itoa(r.Digits),
			strconv.Itoa(r.Scripts),
		})
	}
	return runTableColumns(), rows
}

func buildRunTable(runs []model.Run, width, height int) table.Model {
	cols, rows := runTableData(runs)
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(max(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(runTableStyles())
	return t
}

func runTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromFilter()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		filter, window, err := parseFilter(
			m.filterInputs[0].Value(),
			m.filterInputs[1].Value(),
			m.filterInputs[2].Value(),
			m.filterInputs[3].Value(),
		)
		if err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filter = filter
		m.window = window
		m.filterMode = false
		m.filterError = ""
		m.refresh()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	m.filterIndex = (idx + count) % count
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

// parseFilter validates the filter form. Empty fields mean no restriction;
// an empty window keeps the default.
func parseFilter(variantInput, sinceInput, lastInput, windowInput string) (store.Filter, int, error) {
	var filter store.Filter
	if v := strings.TrimSpace(variantInput); v != "" {
		parsed, err := model.ParseVariant(v)
		if err != nil {
			return store.Filter{}, 0, err
		}
		filter.Variant = parsed
	}
	if s := strings.TrimSpace(sinceInput); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return store.Filter{}, 0, fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		filter.Since = &parsed
	}
	if s := strings.TrimSpace(lastInput); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 0 {
			return store.Filter{}, 0, fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		filter.Last = parsed
	}
	window := defaultWindow
	if s := strings.TrimSpace(windowInput); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 {
			return store.Filter{}, 0, fmt.Errorf("invalid window (use integer >= 1)")
		}
		window = parsed
	}
	return filter, window, nil
}

func nextWindow(n int) int {
	if n < 5 {
		return 5
	}
	return (n/5 + 1) * 5
}

func prevWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
