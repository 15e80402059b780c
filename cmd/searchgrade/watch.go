package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchgrade/internal/config"
	"github.com/katalvlaran/searchgrade/internal/ctxlog"
)

func newWatchCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <manifest>",
		Short: "Grade the manifest, then grade it again every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return watch(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
		},
	}
}

// watch grades path once and again after every burst of writes to it, until
// ctx is cancelled. The directory is watched rather than the file so that
// editors which replace the file on save are followed.
func watch(ctx context.Context, cfg config.Config, path string, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	regrade := func() {
		if err := gradeOnce(ctx, cfg, path, out); err != nil {
			logger.Error("Grading failed.", "path", path, "error", err)
		}
	}
	regrade()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("Manifest changed.", "event", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(cfg.Debounce)
			} else {
				timer.Reset(cfg.Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			logger.Info("Re-grading.", "path", path)
			regrade()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error.", "error", err)
		}
	}
}
