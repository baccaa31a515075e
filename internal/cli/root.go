// Package cli wires the configuration, logging and localization into the
// terminal, window and report front ends.
package cli

import (
	"fmt"

	"carddrawer/internal/config"
	"carddrawer/internal/i18n"
	"carddrawer/internal/logging"
	"carddrawer/ui/tui"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	lang       string
	logFile    string
	logLevel   string
}

// env is what every front end needs.
type env struct {
	cfg config.Config
	tr  *i18n.Translator
	log *logging.Logger
}

func (e *env) Close() error { return e.log.Close() }

// load reads the config file and applies flag overrides.
func (o *options) load(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg = cfg.WithLanguage(o.lang)
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	log := logging.New(logging.DefaultOptions(cfg.LogFile, cfg.LogLevel))
	log.Info("starting", "command", cmd.Name(), "language", cfg.Language, "entries", len(cfg.Entries))
	return &env{cfg: cfg, tr: tr, log: log}, nil
}

// NewRootCmd builds the command tree. Without a subcommand the terminal UI runs.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "carddrawer",
		Short: "Animated card drawer with a hamburger menu",
		Long: `Carddrawer renders a stack of full-screen cards over a menu panel.
The hamburger glyph slides the cards aside to reveal the menu; picking an
entry fans the cards out so the chosen one is on top.

Available commands:
  (none)   - Run the drawer in the terminal
  window   - Run the drawer in a desktop window
  targets  - Replay taps and print the settled layout`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := tui.Start(e.cfg, e.tr, e.log); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file (defaults are used when empty)")
	pf.StringVar(&opts.lang, "lang", "", "UI language (en, es)")
	pf.StringVar(&opts.logFile, "log-file", "", "rotating log file, empty to disable")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newWindowCmd(opts))
	rootCmd.AddCommand(newTargetsCmd(opts))
	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
