package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/chart"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/ipa"
)

var chartHighlight string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the pulmonic consonant chart",
	Long: `Print the IPA pulmonic consonant chart: places of articulation across,
manners down, voiceless symbols left of voiced ones in each cell.

Examples:
  phonet chart
  phonet chart --highlight ʃ
  phonet chart --json`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartHighlight, "highlight", "", "symbol to mark on the chart")
	rootCmd.AddCommand(chartCmd)
}

// chartJSON is the machine-readable form of the chart. Cells hold a
// voiceless and voiced symbol per place, empty where none exists.
type chartJSON struct {
	Places []string       `json:"places"`
	Rows   []chartRowJSON `json:"rows"`
}

type chartRowJSON struct {
	Manner string   `json:"manner"`
	Cells  []string `json:"cells"`
}

func runChart(cmd *cobra.Command, _ []string) error {
	if wantJSON() {
		out := chartJSON{}
		for _, p := range ipa.PulmonicPlaces() {
			out.Places = append(out.Places, p.String())
		}
		for _, row := range ipa.PulmonicChart() {
			out.Rows = append(out.Rows, chartRowJSON{Manner: row.Manner.String(), Cells: row.Cells})
		}
		return printJSON(cmd, out)
	}

	cmd.Println(chart.Render(styles.DefaultStyles(), chartHighlight))
	return nil
}
