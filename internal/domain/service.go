package domain

import (
	"context"
	"time"
)

// ContactCache is a best-effort cache for derived contact lists and unread
// counts. Implementations must never make a miss look like an error.
type ContactCache interface {
	GetContacts(ctx context.Context, userID string) ([]Contact, bool)
	SetContacts(ctx context.Context, userID string, contacts []Contact) error
	InvalidateContacts(ctx context.Context, userIDs ...string) error
	GetUnreadCount(ctx context.Context, userID string) (int64, bool)
	SetUnreadCount(ctx context.Context, userID string, count int64) error
	InvalidateUnreadCount(ctx context.Context, userIDs ...string) error
}

// MessageSentEvent is published after a message lands, for notification
// fan-out. Delivery is best effort.
type MessageSentEvent struct {
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	RecipientID    string    `json:"recipient_id"`
	SentAt         time.Time `json:"sent_at"`
}

type EventPublisher interface {
	PublishMessageSent(ctx context.Context, ev *MessageSentEvent) error
}

// TokenService issues and validates session tokens.
type TokenService interface {
	GenerateAccessToken(userID, name string, role Role) (string, time.Time, error)
	GenerateRefreshToken(userID, name string, role Role) (string, time.Time, error)
	ValidateToken(token string) (*TokenClaims, error)
	RefreshToken(refreshToken string) (string, time.Time, error)
}

type TokenClaims struct {
	UserID    string
	Name      string
	Role      Role
	ExpiresAt time.Time
}

type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}
