package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/maze"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-solve a puzzle file every time it is saved",
	Long: `Solves the file once, then again after every write until interrupted.
Errors in an intermediate save are reported and watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to watch puzzle: %w", err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	logger := s.logger.With("input", path)
	return watchFile(ctx, path, logger, func() error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		rep, err := maze.SolveReader(f, maze.WithContext(ctx), maze.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return nil
		}
		fmt.Fprintf(out, "--- %s\n", path)
		return printReport(out, rep)
	})
}

// watchFile calls onChange once and again after every write to path, until
// ctx is done. The parent directory is watched so that editors which save
// by renaming a temp file over path are seen too.
func watchFile(ctx context.Context, path string, logger *slog.Logger, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}

	if err := onChange(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("puzzle changed", "op", event.Op.String())
			if err := onChange(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
