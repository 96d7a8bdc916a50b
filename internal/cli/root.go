// Package cli contains the pricegrip commands
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pricegrip/internal/backend"
	"pricegrip/internal/config"
	"pricegrip/internal/output"
)

// BuildInfo describes the binary, set by main
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// app holds everything the commands share for one invocation
type app struct {
	build  BuildInfo
	out    io.Writer
	errOut io.Writer

	// global flags
	configPath string
	logFile    string
	colorMode  string
	verbose    bool

	viper     *viper.Viper
	configSvc config.ConfigService
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	useColors bool
}

func newApp(build BuildInfo, out, errOut io.Writer) *app {
	return &app{
		build:  build,
		out:    out,
		errOut: errOut,
		viper:  config.NewViper(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Execute runs the command line and returns the process exit code
func Execute(build BuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(build, os.Stdout, os.Stderr)
	return a.run(ctx, os.Args[1:])
}

func (a *app) run(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	a.close()
	if err == nil {
		return output.ExitSuccess
	}

	printer := output.NewPrinterWithWriters(a.out, a.errOut, a.useColors)
	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		printer.FormatError(cliErr)
		return cliErr.ExitCode
	}
	printer.Error("%v", err)
	return output.ExitGeneral
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pricegrip [query]",
		Short: "Compare product prices across Egyptian stores",
		Long: `pricegrip searches a daily updated price database covering Egyptian
online stores and lets you filter, sort and compare the results.

Example usage:
  pricegrip                        # Interactive search
  pricegrip iphone 15              # Interactive search, starting with "iphone 15"
  pricegrip search rtx 4070        # Print results as a table
  pricegrip search ps5 --sort price-asc --max 30000
  pricegrip trending               # Show trending searches`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.String("base-url", "", "backend base URL")
	flags.String("timeout", "", "request timeout, e.g. 20s")
	flags.StringVar(&a.logFile, "log-file", "", "log file (default is pricegrip.log in the user cache dir)")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output: auto, always or never")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	_ = a.viper.BindPFlag(config.KeyBaseURL, flags.Lookup("base-url"))
	_ = a.viper.BindPFlag(config.KeyTimeout, flags.Lookup("timeout"))

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err.Error(), "Run '"+cmd.CommandPath()+" --help' for usage")
	})

	root.AddCommand(
		a.newSearchCmd(),
		a.newTrendingCmd(),
		a.newConfigCmd(),
		a.newVersionCmd(),
	)
	return root
}

// initConfig loads the config file, applies overrides and sets up logging
func (a *app) initConfig() error {
	mode, err := output.ParseColorMode(a.colorMode)
	if err != nil {
		return usageError(err.Error(), "Use --color auto, always or never")
	}
	a.useColors = output.ResolveColors(mode)

	if err := a.setupLogging(); err != nil {
		return &output.CLIError{
			Summary:    "Cannot open log file",
			Detail:     err.Error(),
			Suggestion: "Pass a writable path with --log-file",
			ExitCode:   output.ExitConfigError,
			Err:        err,
		}
	}

	a.configSvc = config.NewConfigService(a.configPath)
	cfg, err := a.configSvc.Load()
	if err != nil {
		return configError(err, a.configSvc.Path())
	}
	if err := config.ApplyOverrides(cfg, a.viper); err != nil {
		return configError(err, a.configSvc.Path())
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		"path", a.configSvc.Path(),
		"base_url", cfg.BaseURL,
		"timeout", cfg.HTTP.Timeout.Duration,
	)
	return nil
}

func (a *app) setupLogging() error {
	path := a.logFile
	if path == "" {
		path = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	a.logCloser = f
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

func (a *app) printer() *output.Printer {
	return output.NewPrinterWithWriters(a.out, a.errOut, a.useColors)
}

func (a *app) client() backend.Client {
	return backend.New(backend.Options{
		BaseURL:   a.cfg.BaseURL,
		Timeout:   a.cfg.HTTP.Timeout.Duration,
		RateLimit: a.cfg.HTTP.RateLimit,
		Burst:     a.cfg.HTTP.Burst,
		UserAgent: a.cfg.HTTP.UserAgent,
		Logger:    a.logger,
	})
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pricegrip", "pricegrip.log")
}

func usageError(summary, suggestion string) *output.CLIError {
	return &output.CLIError{
		Summary:    summary,
		Suggestion: suggestion,
		ExitCode:   output.ExitUsageError,
	}
}

func configError(err error, path string) *output.CLIError {
	return &output.CLIError{
		Summary:    "Invalid configuration",
		Detail:     err.Error(),
		Suggestion: fmt.Sprintf("Check %s or run 'pricegrip config --init' to create a default one", path),
		ExitCode:   output.ExitConfigError,
		Err:        err,
	}
}
