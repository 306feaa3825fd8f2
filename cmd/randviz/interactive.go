package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/prng"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	algStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	bitmapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectAlg modelState = iota
	stateInputSeed
	stateShowBitmap
)

type vizModel struct {
	err      error
	names    []string
	selected int
	seedIn   textinput.Model
	seed     uint64
	seed2    uint64
	rand     *prng.Rand
	bitmap   string
	width    int
	height   int
	state    modelState
}

func newVizModel(seed, seed2 uint64) *vizModel {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	ti := textinput.New()
	ti.Placeholder = strconv.FormatUint(seed, 10)
	ti.Prompt = "seed: "
	ti.Width = 24

	return &vizModel{
		names:  names,
		seedIn: ti,
		seed:   seed,
		seed2:  seed2,
		width:  64,
		height: 24,
		state:  stateSelectAlg,
	}
}

func (m *vizModel) Init() tea.Cmd {
	return nil
}

func (m *vizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 1 {
			m.width = msg.Width - 1
		}
		if msg.Height > 4 {
			m.height = msg.Height - 4
		}
		if m.state == stateShowBitmap {
			m.renderBitmap()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputSeed || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectAlg && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectAlg && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectAlg:
				m.seedIn.SetValue("")
				m.seedIn.Focus()
				m.state = stateInputSeed

			case stateInputSeed:
				if v := m.seedIn.Value(); v != "" {
					seed, err := strconv.ParseUint(v, 10, 64)
					if err != nil {
						m.err = fmt.Errorf("seed %q: %w", v, err)
						return m, nil
					}
					m.seed = seed
				}
				m.err = nil
				m.seedIn.Blur()
				src, err := newSource(m.names[m.selected], m.seed, m.seed2, 0, 0)
				if err != nil {
					m.err = err
					m.state = stateSelectAlg
					return m, nil
				}
				m.rand = prng.New(src)
				m.renderBitmap()
				m.state = stateShowBitmap

			case stateShowBitmap:
				m.renderBitmap()
			}

		case "r":
			if m.state == stateShowBitmap {
				m.renderBitmap()
			}

		case "esc":
			switch m.state {
			case stateInputSeed:
				m.err = nil
				m.seedIn.Blur()
				m.state = stateSelectAlg
			case stateShowBitmap:
				m.state = stateSelectAlg
			}
		}
	}

	if m.state == stateInputSeed {
		var cmd tea.Cmd
		m.seedIn, cmd = m.seedIn.Update(msg)
		return m, cmd
	}

	return m, nil
}

// renderBitmap fills the view with one fresh bit per cell. Repeated
// renders keep drawing from the same generator, so scrolling through the
// stream is just pressing enter.
func (m *vizModel) renderBitmap() {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.rand.Bool() {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	m.bitmap = b.String()
}

func (m *vizModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("randviz"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectAlg:
		b.WriteString("Select an algorithm:\n\n")
		for i, name := range m.names {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + algStyle.Render(name))
			}
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter seed • q quit"))

	case stateInputSeed:
		b.WriteString(fmt.Sprintf("Seeding %s\n\n", algStyle.Render(m.names[m.selected])))
		b.WriteString(m.seedIn.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter render • esc back"))

	case stateShowBitmap:
		b.WriteString(fmt.Sprintf("%s seed=%d\n", algStyle.Render(m.names[m.selected]), m.seed))
		b.WriteString(bitmapStyle.Render(m.bitmap))
		b.WriteString(helpStyle.Render("enter/r next frame • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(seed, seed2 uint64) error {
	p := tea.NewProgram(newVizModel(seed, seed2), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
