package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scadc/internal/driver"
	"scadc/internal/source"
	"scadc/internal/ui"
)

type compileOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// runCompileWithUI runs a directory compile in the background while a
// Bubble Tea progress view consumes its events. The view exits when the
// compile closes the event channel.
func runCompileWithUI(ctx context.Context, title string, files []string, dir string, opts driver.DirOptions) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan compileOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		fileSet, results, err := driver.CompileDir(ctx, dir, opts)
		outcomeCh <- compileOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
