package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	imagepkg "github.com/youruser/awayteam/internal/image"
)

var generateCmd = &cobra.Command{
	Use:   "generate [workbook]",
	Short: "Render every deck into sheets, backs, card lists and tabletop JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, cat, err := setup(cmd, args[0])
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.OutputDir
		}

		sum, err := p.Generate(cat, out)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, f := range sum.Files {
			fmt.Fprintln(w, "  "+f)
		}
		color.New(color.FgGreen).Fprintf(w, "Generated %d decks on %d sheets in %s\n", sum.Decks, sum.Sheets, out)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [workbook] [deck] [index]",
	Short: "Render a single card to a PNG file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("card index %q is not a number", args[2])
		}
		_, p, cat, err := setup(cmd, args[0])
		if err != nil {
			return err
		}
		img, err := p.Card(cat, args[1], index)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = fmt.Sprintf("%s-%d.png", args[1], index)
		}
		if err := imagepkg.SaveImage(img, out); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Card written to", out)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "output directory (default from config)")
	renderCmd.Flags().StringP("output", "o", "", "output file (default <deck>-<index>.png)")
}
