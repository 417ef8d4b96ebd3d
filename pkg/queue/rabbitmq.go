package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"bountyboard/pkg/config"
	"bountyboard/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	InviteEmailQueueName  = "invite_email_queue"
	InviteEmailExchange   = "invite_emails"
	inviteEmailRoutingKey = "invite_created"
)

// InviteEmailTask is the message published when an influencer invite is
// created with an email address attached.
type InviteEmailTask struct {
	Email      string `json:"email"`
	InviteCode string `json:"inviteCode"`
	InvitedBy  string `json:"invitedBy"`
	ExpiresAt  string `json:"expiresAt"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		InviteEmailExchange, // name
		"direct",            // type
		true,                // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		InviteEmailQueueName, // name
		true,                 // durable
		false,                // delete when unused
		false,                // exclusive
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		InviteEmailQueueName,
		inviteEmailRoutingKey,
		InviteEmailExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishInviteEmailTask publishes an invite email delivery task.
func (c *Client) PublishInviteEmailTask(task InviteEmailTask) error {
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	err = c.channel.Publish(
		InviteEmailExchange,
		inviteEmailRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         taskJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("Failed to publish invite email task for %s: %v", task.Email, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("Published invite email task: email=%s code=%s", task.Email, task.InviteCode)
	return nil
}

// ConsumeInviteEmailTasks consumes invite email tasks from the queue.
func (c *Client) ConsumeInviteEmailTasks(handler func(task InviteEmailTask) error) error {
	msgs, err := c.channel.Consume(
		InviteEmailQueueName,
		"",    // consumer
		false, // auto-ack (we ack after processing)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("Started consuming from invite email queue: %s", InviteEmailQueueName)

	go func() {
		for msg := range msgs {
			var task InviteEmailTask
			if err := json.Unmarshal(msg.Body, &task); err != nil {
				c.logger.Error("Failed to unmarshal invite email task: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false) // Reject and don't requeue
				continue
			}

			if err := handler(task); err != nil {
				c.logger.Error("Handler failed to process invite email task: %v, email=%s", err, task.Email)
				msg.Nack(false, true) // Reject and requeue
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}
