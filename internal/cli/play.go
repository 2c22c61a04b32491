package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/pipeline"
	"github.com/matzehuels/hanoi/pkg/render/pegs"
)

var (
	moveCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	moveDoneStyle    = lipgloss.NewStyle().Foreground(colorGray)
	moveTodoStyle    = lipgloss.NewStyle().Foreground(colorDim)
	helpStyle        = lipgloss.NewStyle().Foreground(colorDim)
)

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Step through a solution interactively",
		Example: `  hanoi play puzzle.json
  echo "4 4 1 1 1 1 4 4 4 4" | hanoi play`,
		Args: puzzleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPuzzle(cmd, args)
			if err != nil {
				return err
			}
			runner := c.newRunner(cmd.Context(), noCache)
			defer runner.Close()

			res, err := runner.Solve(cmd.Context(), p, pipeline.Options{MaxStates: c.maxStates(0)})
			if err != nil {
				return err
			}
			if !res.Found {
				return ErrNoSolution
			}

			m, err := newPlayModel(p.Source, res.Path(), isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			prog := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err = prog.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the solution cache")
	return cmd
}

// playModel is the bubbletea model that steps through a solution.
type playModel struct {
	steps  []*hanoi.Configuration
	path   hanoi.Path
	cursor int // index into steps; steps[0] is the source
	window int // number of moves listed
	color  bool
}

func newPlayModel(source *hanoi.Configuration, path hanoi.Path, color bool) (playModel, error) {
	steps, err := hanoi.Steps(source, path)
	if err != nil {
		return playModel{}, err
	}
	return playModel{steps: steps, path: path, window: 8, color: color}, nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.cursor < len(m.steps)-1 {
				m.cursor++
			}
		case "left", "h", "p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.steps) - 1
		}
	case tea.WindowSizeMsg:
		m.window = max(msg.Height-m.steps[0].Discs()-12, 3)
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Move %d/%d", m.cursor, len(m.path))
	if m.cursor > 0 {
		title += "  " + m.path[m.cursor-1].String()
	}
	if m.cursor == len(m.path) {
		title += "  (solved)"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n\n")

	opts := pegs.TextOptions{Color: m.color}
	if m.cursor > 0 {
		opts.Highlight = m.path[m.cursor-1].To + 1
	}
	b.WriteString(pegs.Text(m.steps[m.cursor], opts))
	b.WriteString("\n\n")

	if len(m.path) > 0 {
		b.WriteString(m.moveTable())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("←/→ step  g/G first/last  q quit"))
	return b.String()
}

// moveTable lists a window of moves around the cursor.
func (m playModel) moveTable() string {
	start := max(m.cursor-m.window/2, 0)
	end := min(start+m.window, len(m.path))
	start = max(end-m.window, 0)

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		mv := m.path[i]
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(mv.From + 1), strconv.Itoa(mv.To + 1)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "from", "to").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
			}
			idx := start + row + 1 // moves are 1-based
			switch {
			case idx == m.cursor:
				return moveCurrentStyle.Padding(0, 1)
			case idx < m.cursor:
				return moveDoneStyle.Padding(0, 1)
			default:
				return moveTodoStyle.Padding(0, 1)
			}
		})
	return t.Render()
}
