package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/pmux/pkg/project"
	"github.com/spf13/cobra"
)

var projectsDir string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Interactively pick a project config and start it",
	Long:  `Launches a TUI listing the project configs in the config directory. Selecting one starts its session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := project.Discover(projectsDir)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Printf("No project configs found in %s\n", projectsDir)
			return nil
		}

		m := newProjectsModel(entries)
		p := tea.NewProgram(m, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}

		pm, ok := finalModel.(projectsModel)
		if !ok || pm.selected == nil {
			return nil
		}
		if pm.selected.Err != nil {
			return fmt.Errorf("config %s is not loadable: %w", pm.selected.Path, pm.selected.Err)
		}

		return startProject(context.Background(), pm.selected.Path)
	},
}

func init() {
	projectsCmd.Flags().StringVar(&projectsDir, "dir", project.DefaultConfigDir(), "Directory to scan for project configs")
}

// --- Bubbletea Model ---

type projectsKeymap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var projectsKeys = projectsKeymap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

var (
	projectsTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4")).Padding(0, 1)
	projectsSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")).Bold(true)
	projectsDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	projectsBrokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

type projectsModel struct {
	entries  []project.Entry
	cursor   int
	selected *project.Entry
}

func newProjectsModel(entries []project.Entry) projectsModel {
	return projectsModel{entries: entries}
}

func (m projectsModel) Init() tea.Cmd {
	return nil
}

func (m projectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, projectsKeys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, projectsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, projectsKeys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, projectsKeys.Select):
		m.selected = &m.entries[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

func (m projectsModel) View() string {
	s := projectsTitleStyle.Render("pmux projects") + "\n\n"

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var line string
		switch {
		case e.Err != nil:
			line = projectsBrokenStyle.Render(fmt.Sprintf("%s (invalid config)", e.Name))
		case i == m.cursor:
			line = projectsSelectedStyle.Render(fmt.Sprintf("%s (%d windows)", e.Name, e.Windows))
		default:
			line = fmt.Sprintf("%s (%d windows)", e.Name, e.Windows)
		}

		s += cursor + line + "\n"
		if i == m.cursor {
			s += "  " + projectsDimStyle.Render(e.Path) + "\n"
		}
	}

	s += "\n" + projectsDimStyle.Render("enter: start session • j/k: move • q: quit")
	return s
}
