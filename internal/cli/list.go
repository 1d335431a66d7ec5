package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/youruser/awayteam/internal/cards"
	"github.com/youruser/awayteam/internal/layout"
	"github.com/youruser/awayteam/internal/pipeline"
)

const (
	defaultWidth = 80
	indent       = "      "
)

// runeMetrics measures text in terminal columns, one per rune.
type runeMetrics struct{}

func (runeMetrics) Width(s string) int { return utf8.RuneCountInString(s) }
func (runeMetrics) Height() int        { return 1 }

var listCmd = &cobra.Command{
	Use:   "list [workbook]",
	Short: "Print every deck's cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := pipeline.LoadFile(args[0], cfg)
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), cat, terminalWidth())
		return nil
	},
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func printCatalog(w io.Writer, cat *pipeline.Catalog, width int) {
	textWidth := max(width-len(indent), 20)
	for _, d := range cat.Decks {
		color.New(color.FgCyan, color.Bold).Fprintf(w, "%s", d.Name)
		fmt.Fprintf(w, " (%s, %d cards)\n", d.Kind, len(d.Cards))
		for _, c := range d.Cards {
			printCard(w, c, textWidth)
		}
		fmt.Fprintln(w)
	}
}

func printCard(w io.Writer, c cards.Card, width int) {
	count := fmt.Sprintf("%3dx", c.Count)
	if c.InSheets() {
		fmt.Fprint(w, "  "+count)
	} else {
		color.New(color.FgYellow).Fprint(w, "  "+count)
	}
	fmt.Fprint(w, " ")
	color.New(color.FgHiWhite).Fprintln(w, c.Name)

	if c.Text == "" {
		return
	}
	for _, line := range layout.Wrap(c.Text, runeMetrics{}, width) {
		fmt.Fprintln(w, indent+strings.TrimRight(line, " "))
	}
}
