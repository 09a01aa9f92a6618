package sendnotification

import (
	"context"
	common "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/rabbitmq"
	"shopapi/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// EmailSender delivers both notification kinds to the user's mailbox.
type EmailSender interface {
	SendVerificationCode(ctx context.Context, u user.User, code string) error
	SendPasswordResetToken(ctx context.Context, u user.User, uid user.EncodedUserID, token user.PasswordResetToken) error
}

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	sender  EmailSender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	sender EmailSender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, sender: sender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			n := &schema.Notification{}
			if err := n.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal notification.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got notification for sending.",
				logging.Entry("kind", n.Kind),
				logging.Entry("messageId", n.ID),
			)
			if err := c.send(context.Background(), n); err != nil {
				c.log.Error(
					context.Background(),
					"Could not send notification.",
					logging.Entry("kind", n.Kind),
					logging.Entry("messageId", n.ID),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) send(ctx context.Context, n *schema.Notification) error {
	u := user.User{
		Email:    common.Email(n.Email),
		Username: user.Username(n.Username),
	}
	switch n.Kind {
	case schema.KindVerificationCode:
		return c.sender.SendVerificationCode(ctx, u, n.Code)
	case schema.KindPasswordResetToken:
		return c.sender.SendPasswordResetToken(
			ctx,
			u,
			user.EncodedUserID(n.Uid),
			user.PasswordResetToken(n.Token),
		)
	default:
		c.log.Warning(ctx, "Unknown notification kind.", logging.Entry("kind", n.Kind))
		return nil
	}
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
