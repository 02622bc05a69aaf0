package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/desertwitch/fileman"
	"github.com/desertwitch/fileman/internal/configuration"
	"github.com/desertwitch/fileman/internal/ui"
	"github.com/dustin/go-humanize"
)

const uiPollInterval = 10 * time.Millisecond

// App is the state shared by all commands, established before any of them
// runs.
type App struct {
	config  *configuration.Config
	manager *fileman.Manager
	logs    *SlogManager
	level   *slog.LevelVar
	stderr  io.Writer
}

// NewApp returns a pointer to a new [App] logging to stderr.
func NewApp(cfg *configuration.Config, stderr io.Writer) *App {
	level := &slog.LevelVar{}
	level.Set(cfg.LogLevel)

	logs := NewSlogManager()
	logs.AddHandler(terminalHandler, newTintHandler(stderr, level))

	return &App{
		config:  cfg,
		manager: fileman.New(cfg),
		logs:    logs,
		level:   level,
		stderr:  stderr,
	}
}

type transferFunc func(ctx context.Context, progress *fileman.TransferInfo) error

// runTransfer runs op, optionally while showing its progress in the user
// interface. Logs go to the user interface while it is shown.
func (app *App) runTransfer(ctx context.Context, title string, withUI bool, op transferFunc) error {
	progress := &fileman.TransferInfo{}

	if !withUI {
		err := op(ctx, progress)
		app.logTransfer(title, progress.Stats(), err)

		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	uiHandle := ui.NewHandler(ctx, cancel, title, progress)

	app.logs.AddHandler(uiHandler, newTintHandler(uiHandle.LogWriter, app.level))
	app.logs.RemoveHandler(terminalHandler)

	errChan := make(chan error, 1)

	go func() {
		for !uiHandle.Ready.Load() && !uiHandle.Failed.Load() && ctx.Err() == nil {
			time.Sleep(uiPollInterval)
		}

		errChan <- op(ctx, progress)
		uiHandle.Quit()
	}()

	uiErr := uiHandle.Launch()

	app.logs.RemoveHandler(uiHandler)
	app.logs.AddHandler(terminalHandler, newTintHandler(app.stderr, app.level))

	if uiErr != nil {
		slog.Warn("UI failure: falling back to terminal.",
			"err", uiErr,
		)
	}

	err := <-errChan
	app.logTransfer(title, progress.Stats(), err)

	return err
}

func (app *App) logTransfer(title string, stats fileman.TransferStats, err error) {
	if err != nil {
		slog.Error(title+" failed.",
			"items", fmt.Sprintf("%d/%d", stats.ItemsDone, stats.ItemsTotal),
			"bytes", humanize.Bytes(stats.BytesTransferred),
			"err", err,
		)

		return
	}

	if !stats.Started {
		return
	}

	slog.Info(title+" finished.",
		"items", stats.ItemsDone,
		"bytes", humanize.Bytes(stats.BytesTransferred),
		"elapsed", stats.Elapsed.Truncate(time.Millisecond),
	)
}
