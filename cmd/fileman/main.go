// Command fileman exposes the file operations on the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		signal.Stop(sigChan)
		cancel()
	}()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandlers(cancel)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		printErr(err)
		os.Exit(1)
	}
}
