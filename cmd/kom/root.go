package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/kom/internal/app"
	"github.com/kk-code-lab/kom/internal/buffer"
	"github.com/kk-code-lab/kom/internal/config"
	"github.com/kk-code-lab/kom/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath string
	logLevel   string
	logFile    string
	tabWidth   int
	noMouse    bool
)

var errStdinIsTerminal = errors.New("missing filename (reading from a terminal is not supported)")

var rootCmd = &cobra.Command{
	Use:   "kom [FILE]",
	Short: "A small terminal pager",
	Long: `kom shows FILE, or standard input when no FILE is given, one screen at a
time. Lines longer than the terminal are wrapped.

Keys: j/k or arrows scroll a line, space/f/PgDn and b/PgUp scroll a screen,
/ starts a search entry, q quits.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPager,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/kom/config.toml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or off")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file (default: a new kom.log.* file in the temp dir)")
	rootCmd.Flags().IntVar(&tabWidth, "tab-width", 0, "Columns per tab stop")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse wheel scrolling")
}

func execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("kom %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("kom %s\n", version)
}

func runPager(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("expected stdout to be a terminal")
	}

	src, name, err := openInput(args, os.Stdin, term.IsTerminal)
	if err != nil {
		return err
	}
	defer src.Close()

	// Unicode text must still render when the locale is unset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		Reader:   buffer.NewLineReader(src, cfg.ReaderOptions()),
		Name:     name,
		TabWidth: cfg.TabWidth,
		Mouse:    cfg.Mouse,
	})
	if err != nil {
		return fmt.Errorf("error initializing pager: %w", err)
	}
	runErr := app.Run()
	// The screen must be torn down before cobra prints the error.
	_ = app.Close()
	if runErr != nil {
		logger.Errorf("session aborted: %v", runErr)
	}
	return runErr
}

// applyFlags lets explicitly set flags win over the config file and
// environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("tab-width") {
		cfg.TabWidth = tabWidth
	}
	if flags.Changed("no-mouse") {
		cfg.Mouse = !noMouse
	}
	return cfg.Validate()
}

func setupLogging(cfg config.Config) (func(), error) {
	logger.Configure()
	if strings.EqualFold(strings.TrimSpace(cfg.LogLevel), logger.LevelOff) {
		_ = logger.SetLevel(logger.LevelOff)
		return func() {}, nil
	}

	closer, path, err := logger.SetupFile(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("%v", err)
	}
	logger.Debugf("logging to %s (config %s)", path, cfg.Source)
	return func() { _ = closer.Close() }, nil
}

// openInput returns the stream to page and the banner name. Standard input
// is used when no file is named, unless it is itself a terminal.
func openInput(args []string, stdin *os.File, isTerminal func(fd int) bool) (io.ReadCloser, string, error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", err
		}
		return f, args[0], nil
	}
	if isTerminal(int(stdin.Fd())) {
		return nil, "", errStdinIsTerminal
	}
	return io.NopCloser(stdin), "", nil
}
