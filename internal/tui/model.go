// Package tui provides the Bubble Tea password generator interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/glyphpass/internal/generator"
	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/store"
)

const maxLength = 1024

// Model implements the Bubble Tea generator UI.
type Model struct {
	config model.Config
	store  *store.Store
	gen    *generator.Generator
	pools  generator.Pools

	variants []model.Variant
	variant  model.Variant
	length   int

	width  int
	height int

	password string
	run      model.Run
	scripts  []string
	err      error

	// recordErr is the last history write failure.
	recordErr error

	generated int
	bestBits  float64
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a generator TUI model. A nil store disables run
// recording.
func NewModel(cfg model.Config, st *store.Store, gen *generator.Generator, pools generator.Pools, variant model.Variant, length int) *Model {
	variants := append([]model.Variant(nil), model.Variants...)
	if pools.Custom.Len() > 0 {
		variants = append(variants, model.VariantCustom)
	}
	m := &Model{
		config:   cfg,
		store:    st,
		gen:      gen,
		pools:    pools,
		variants: variants,
		variant:  variant,
		length:   clampLength(length),
	}
	m.regenerate()
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
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.regenerate()
			return m, nil
		case tea.KeyTab:
			m.cycleVariant(1)
			return m, nil
		case tea.KeyShiftTab:
			m.cycleVariant(-1)
			return m, nil
		case tea.KeyRunes:
			return m, m.handleRunes(msg.Runes)
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	header := headerStyle.Render(m.renderHeader())
	body := m.renderBody()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return header + "\n\n" + body + "\n\n" + footer
	}
	content := lipgloss.JoinVertical(lipgloss.Center, header, "", body)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	page := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return page + "\n" + footerLine
}

func (m *Model) handleRunes(runes []rune) tea.Cmd {
	for _, r := range runes {
		switch r {
		case 'q':
			return tea.Quit
		case 'r', ' ':
			m.regenerate()
		case '+', '=':
			m.setLength(m.length + 1)
		case '-', '_':
			m.setLength(m.length - 1)
		}
	}
	return nil
}

func (m *Model) setLength(length int) {
	length = clampLength(length)
	if length == m.length {
		return
	}
	m.length = length
	m.regenerate()
}

func (m *Model) cycleVariant(step int) {
	if len(m.variants) == 0 {
		return
	}
	idx := 0
	for i, v := range m.variants {
		if v == m.variant {
			idx = i
			break
		}
	}
	idx = (idx + step + len(m.variants)) % len(m.variants)
	m.variant = m.variants[idx]
	m.regenerate()
}

func (m *Model) regenerate() {
	res, err := m.gen.Run(m.config.Request(m.variant, m.length), m.pools)
	if err != nil {
		m.err = err
		m.password = ""
		m.scripts = nil
		return
	}
	m.err = nil
	m.password = res.Password
	m.run = res.Run
	m.scripts = generator.PresentScripts(res.Password, m.pools.Samples)
	m.generated++
	if res.Run.EntropyBits > m.bestBits {
		m.bestBits = res.Run.EntropyBits
	}
	m.record(res.Run)
}

func (m *Model) record(run model.Run) {
	if m.store == nil {
		return
	}
	_, m.recordErr = m.store.InsertRuns(context.Background(), []model.Run{run})
}

func (m *Model) renderHeader() string {
	if m.err != nil {
		return fmt.Sprintf("%s · %d chars", m.variant.Label(), m.length)
	}
	return fmt.Sprintf("%s · %d chars · %.2f bits · pool %d",
		m.variant.Label(), m.run.Length, m.run.EntropyBits, m.run.PoolSize)
}

func (m *Model) renderBody() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	contentWidth := m.config.Width
	if m.width > 0 {
		if avail := int(float64(m.width) * 0.70); contentWidth <= 0 || avail < contentWidth {
			contentWidth = avail
		}
	}
	if contentWidth < 1 {
		contentWidth = 1
	}
	password := wrapStyledRunes(buildStyledRunes([]rune(m.password)), contentWidth)
	details := fmt.Sprintf("digits %d · scripts %d", m.run.Digits, m.run.Scripts)
	if len(m.scripts) > 0 {
		details += " (" + strings.Join(m.scripts, ", ") + ")"
	}
	return lipgloss.JoinVertical(lipgloss.Center, password, "", footerStyle.Render(details))
}

func (m *Model) renderFooter() string {
	segments := []string{
		"r/enter new",
		"tab variant",
		"+/- length",
		"q quit",
		fmt.Sprintf("Generated %d", m.generated),
	}
	if m.bestBits > 0 {
		segments = append(segments, fmt.Sprintf("Best %.2f bits", m.bestBits))
	}
	if m.store == nil {
		segments = append(segments, "history off")
	}
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.recordErr != nil {
		footer += "  " + errorStyle.Render("history: "+m.recordErr.Error())
	}
	return footer
}

func clampLength(length int) int {
	if length < 1 {
		return 1
	}
	if length > maxLength {
		return maxLength
	}
	return length
}
