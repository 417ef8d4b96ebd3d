package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bountyboard/pkg/config"
	"bountyboard/pkg/logger"
	"bountyboard/pkg/mailer"
	"bountyboard/pkg/queue"
)

// The worker drains the invite email queue and delivers invites through
// SendGrid. It runs as a separate process so email delivery never blocks
// the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	if cfg.SendGridAPIKey == "" {
		log.Error("SENDGRID_API_KEY is required for the invite email worker")
		os.Exit(1)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	inviteMailer := mailer.New(cfg)

	err = queueClient.ConsumeInviteEmailTasks(func(task queue.InviteEmailTask) error {
		if err := inviteMailer.SendInvite(task.Email, task.InviteCode, task.ExpiresAt); err != nil {
			return err
		}
		log.Info("Invite email delivered: email=%s code=%s", task.Email, task.InviteCode)
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Invite email worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Invite email worker exiting")
}
