package mq

const (
	TopicNotifications = "marketplace_notify"

	TagMessageSent = "message_sent"
)
