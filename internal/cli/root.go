// Package cli holds the cardgen commands.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/awayteam/internal/config"
	"github.com/youruser/awayteam/internal/pipeline"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "Render card sheets and tabletop decks from a spreadsheet",
	Long: `cardgen reads elements, obstacles, rewards, roles and macguffins from a workbook
(an .xlsx file or a directory of <Sheet>.csv files), renders every card, packs the cards
into sheets and writes the deck JSON a virtual tabletop imports.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "", "config file (default $XDG_CONFIG_HOME/awayteam/config.toml)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")

	RootCmd.AddCommand(generateCmd, renderCmd, listCmd, serveCmd, initCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// setup loads the config and the workbook at path and builds a pipeline for them.
func setup(cmd *cobra.Command, path string) (*config.Config, *pipeline.Pipeline, *pipeline.Catalog, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	cat, err := pipeline.LoadFile(path, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := pipeline.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, p, cat, nil
}
