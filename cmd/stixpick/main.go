// Command stixpick is a terminal picker for adding STIX entities to an
// investigation.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/drake/stixpick/config"
	"github.com/drake/stixpick/debug"
	"github.com/drake/stixpick/entity"
	"github.com/drake/stixpick/i18n"
	"github.com/drake/stixpick/script"
	"github.com/drake/stixpick/ui/layout"
	"github.com/drake/stixpick/ui/picker"
	"github.com/drake/stixpick/ui/row"
	"github.com/drake/stixpick/ui/style"
)

// picked is one line of output for a chosen entity.
type picked struct {
	ID    string `json:"id" yaml:"id"`
	Type  string `json:"entity_type" yaml:"entity_type"`
	Value string `json:"value" yaml:"value"`
}

// Command-line flags.
var (
	configPath string
	lang       string
	labels     int
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "stixpick [flags] entities.{yaml,json}",
	Short: "Pick STIX entities to add to an investigation",
	Long: `stixpick lists the entities in a YAML or JSON export and lets you
choose the ones to add to an investigation. The chosen entities are
printed on exit.

Display values can be overridden from display.lua in the config directory.
Set STIXPICK_DEBUG=1 to write a debug log next to it.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if output != "yaml" && output != "json" {
			return fmt.Errorf("unknown output format %q", output)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], configPath, lang, labels, output, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.File(), "path to config.yaml")
	rootCmd.Flags().StringVar(&lang, "lang", "", "language for entity types (overrides config)")
	rootCmd.Flags().IntVar(&labels, "labels", 0, "visible labels per row (overrides config)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format for the selection: yaml or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stixpick:", err)
		os.Exit(1)
	}
}

func run(path, configPath, lang string, labels int, output string, stdout io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if lang != "" {
		cfg.Language = lang
	}
	if labels > 0 {
		cfg.LabelLimit = labels
	}

	log, closer, err := debug.NewLogger(config.Dir())
	if err != nil {
		return err
	}
	defer closer.Close()

	scripts := script.NewEngine(log)
	defer scripts.Close()
	if err := scripts.LoadDir(config.Dir()); err != nil {
		return err
	}
	log.Debug().Int("rules", scripts.Rules()).Msg("display overrides loaded")

	sum := entity.NewSummarizer(i18n.New(cfg.Language), scripts)
	cols, err := layout.DefaultColumns().WithWidths(cfg.Columns)
	if err != nil {
		return fmt.Errorf("config columns: %w", err)
	}
	styles := style.DefaultStyles()
	renderer, err := row.NewRenderer(cols, sum, styles, row.Options{LabelLimit: cfg.LabelLimit})
	if err != nil {
		return err
	}

	m := picker.New(renderer, sum, styles,
		picker.Config{VisibleRows: cfg.VisibleRows},
		picker.WithLogger(log),
		picker.WithLoad(picker.LoadCmd(path)),
	)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	chosen, ok := final.(*picker.Model).Result()
	if !ok {
		return nil
	}
	out := make([]picked, len(chosen))
	for i, e := range chosen {
		out[i] = picked{ID: e.ID, Type: string(e.Type), Value: sum.DisplayValue(e)}
	}
	return write(stdout, output, out)
}

func write(w io.Writer, format string, out []picked) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(out)
}
