package main

import (
	"context"
	"os"
	"os/signal"
	"petminder/internal/app/deps"
	"petminder/internal/app/services"
	"petminder/internal/core/domain/logging"
	publishduereminders "petminder/internal/core/services/publish_due_reminders"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitSchedulerDeps()
	log := deps.Logger
	defer shutdownDeps()

	publishDueReminders := services.InitPublishDueReminders(deps)

	ticker := time.NewTicker(deps.Config.DueRemindersScanPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic due reminders scanner.",
		logging.Entry("periodSeconds", deps.Config.DueRemindersScanPeriod.Seconds()),
		logging.Entry("batchSize", deps.Config.DueRemindersBatchSize),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic due reminders scanner.")
			break loop
		case <-ticker.C:
			result, err := publishDueReminders.Run(context.Background(), publishduereminders.Input{})
			if err != nil {
				log.Error(context.Background(), "Due reminders scan returned an error.", logging.Entry("err", err))
				continue
			}
			if result.PublishedCount > 0 {
				log.Info(
					context.Background(),
					"Due reminders published.",
					logging.Entry("count", result.PublishedCount),
				)
			}
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
