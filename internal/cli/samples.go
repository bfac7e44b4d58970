package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/samples"
)

// samplesCommand creates the samples command listing the demonstration graphs.
func (c *CLI) samplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "samples",
		Aliases: []string{"ls"},
		Short:   "List the sample graphs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(samples.All()))
			for _, s := range samples.All() {
				g, err := s.New()
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					s.Name,
					strconv.Itoa(g.VertexCount()),
					strconv.Itoa(g.EdgeCount()),
					strconv.Itoa(s.Chromatic),
					s.Description,
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Sample", "Vertices", "Edges", "χ", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return styleHeader.Padding(0, 1)
					case col == 0:
						return styleCell.Foreground(colorCyan)
					}
					return styleCell
				})

			w := c.out()
			fmt.Fprintln(w, t.Render())
			printDetail(w, "Use -s %s to pick one at random", randomSample)
			return nil
		},
	}
}
