package consumers

import (
	"context"
	"shopapi/internal/app/deps"
	dl "shopapi/internal/core/domain/logging"
	sendnotification "shopapi/internal/rabbitmq/consumers/send_notification"
)

func initSendNotificationConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqNotificationQueue
	sendNotificationConsumer := sendnotification.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.EmailSender,
	)
	if err = sendNotificationConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownSendNotificationConsumer := initSendNotificationConsumer(deps)

	return func() {
		shutdownSendNotificationConsumer()
	}
}
