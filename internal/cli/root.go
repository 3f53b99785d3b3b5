package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	logLevel   string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "pipeloop",
	Short: "Find the pipe loop in a tile grid and count the tiles it encloses",
	Long: `pipeloop reads a rectangular grid of pipe tiles containing one start tile S,
follows the loop through S, reports the distance to its farthest tile and
counts the tiles the loop encloses.

Settings are read from .pipeloop.yaml in the current directory unless
--config names another file. Flags override the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pipeloop version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "colour rendered maps: auto, always or never")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// settings is the resolved configuration for one command run.
type settings struct {
	cfg    *config.Config
	logger *slog.Logger
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.LoadConfig(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if colorMode != "" {
		cfg.Color = colorMode
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}
	return &settings{cfg: cfg, logger: logger}, nil
}

// renderOptions picks plain or coloured output for w.
func (s *settings) renderOptions(w io.Writer) []render.Option {
	switch s.cfg.Color {
	case config.ColorNever:
		return nil
	case config.ColorAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		return []render.Option{render.WithStyles(render.NewStyles(r))}
	}
	if !isTerminal(w) {
		return nil
	}
	return []render.Option{render.WithStyles(render.NewStyles(lipgloss.NewRenderer(w)))}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// openInput returns the named file, or stdin when no file is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open puzzle: %w", err)
	}
	return f, args[0], nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid frame delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid frame delay: %s is negative", s)
	}
	return d, nil
}
