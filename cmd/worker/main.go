package main

import (
	"context"
	"os"
	"os/signal"
	"shopapi/internal/app/consumers"
	"shopapi/internal/app/deps"
	"shopapi/internal/core/domain/logging"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Notification worker has started.",
		logging.Entry("queue", deps.Config.RabbitmqNotificationQueue),
	)

	<-stopCh
	log.Info(context.Background(), "Stopping notification worker.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
