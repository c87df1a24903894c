package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"biller/cmd"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt cancels the context; the menu loop routes cancellation
	// through the same shutdown path as the exit option so a logged-in
	// session still gets its registry sync.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	cmd.Execute(ctx)
}
