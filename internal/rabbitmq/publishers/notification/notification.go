package notification

import (
	"context"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/rabbitmq"
	"shopapi/internal/rabbitmq/schema"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes email notifications for the worker process.
// It implements both sender ports of the user domain.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) SendVerificationCode(ctx context.Context, u user.User, code string) error {
	return p.publish(ctx, &schema.Notification{
		ID:       uuid.NewString(),
		Kind:     schema.KindVerificationCode,
		Email:    string(u.Email),
		Username: string(u.Username),
		Code:     code,
	})
}

func (p *RabbitMQ) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	uid user.EncodedUserID,
	token user.PasswordResetToken,
) error {
	return p.publish(ctx, &schema.Notification{
		ID:       uuid.NewString(),
		Kind:     schema.KindPasswordResetToken,
		Email:    string(u.Email),
		Username: string(u.Username),
		Uid:      string(uid),
		Token:    string(token),
	})
}

func (p *RabbitMQ) publish(ctx context.Context, n *schema.Notification) error {
	body, err := n.Marshal()
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		MessageId:   n.ID,
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.log.Error(
			ctx,
			"Could not publish AMQP message.",
			logging.Entry("kind", n.Kind),
			logging.Entry("err", err),
		)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("kind", n.Kind),
		logging.Entry("messageId", n.ID),
	)
	return nil
}
