// Package ui implements a command-line user interface using [tea], showing
// the progress of a long-running transfer alongside the log output.
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/fileman/internal/filesystem"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler] observing
// transfer. A ctrl+c keypress calls cancel.
func NewHandler(ctx context.Context, cancel context.CancelFunc, title string, transfer *filesystem.TransferInfo) *Handler {
	handler := &Handler{}

	model := NewTeaModel(handler, title, transfer, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]) and
// blocks until it exits.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// Quit makes a running [Handler.Launch] return.
func (uiHandler *Handler) Quit() {
	uiHandler.program.Quit()
}
