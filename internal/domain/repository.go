package domain

import (
	"context"
	"time"
)

// ProfileRepository backs the identity provider and contact-name joins.
type ProfileRepository interface {
	Save(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
}

// ConversationRepository persists school/supplier conversation rows.
// Find methods return (nil, nil) when no row matches.
type ConversationRepository interface {
	FindByID(ctx context.Context, id string) (*Conversation, error)
	FindByPair(ctx context.Context, schoolID, supplierID string) (*Conversation, error)
	// InsertIfAbsent inserts the conversation unless one already exists for
	// the same (school, supplier) pair. Losing the race is not an error.
	InsertIfAbsent(ctx context.Context, c *Conversation) error
	ListBySchool(ctx context.Context, schoolID string) ([]*Conversation, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*Conversation, error)
	// TouchLastMessage bumps last_message_at and updated_at.
	TouchLastMessage(ctx context.Context, id string, at time.Time) error
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]*Message, error)
	// MarkRead sets read=true on every message in the conversation addressed
	// to recipientID. Idempotent.
	MarkRead(ctx context.Context, conversationID, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}

type ApplicationRepository interface {
	Save(ctx context.Context, a *SupplierApplication) error
	FindByID(ctx context.Context, id string) (*SupplierApplication, error)
	ListBySchool(ctx context.Context, schoolID string) ([]*SupplierApplication, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*SupplierApplication, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, at time.Time) error
}

type RatingRepository interface {
	Save(ctx context.Context, r *SupplierRating) error
	Update(ctx context.Context, r *SupplierRating) error
	FindByID(ctx context.Context, id string) (*SupplierRating, error)
	FindByPair(ctx context.Context, schoolID, supplierID string) (*SupplierRating, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*SupplierRating, error)
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	Save(ctx context.Context, p *RegistrationPayment) error
	FindByID(ctx context.Context, id string) (*RegistrationPayment, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*RegistrationPayment, error)
	UpdateStatus(ctx context.Context, id string, status PaymentStatus, providerRef string, at time.Time) error
}

type ComplaintRepository interface {
	Save(ctx context.Context, c *LegalComplaint) error
	FindByID(ctx context.Context, id string) (*LegalComplaint, error)
	ListAll(ctx context.Context) ([]*LegalComplaint, error)
	ListByParty(ctx context.Context, partyID string) ([]*LegalComplaint, error)
	UpdateStatus(ctx context.Context, id string, status ComplaintStatus, at time.Time) error
}

// SettingRepository stores platform configuration rows.
// Find returns (nil, nil) when the setting is absent.
type SettingRepository interface {
	Upsert(ctx context.Context, s *PlatformSetting) error
	Find(ctx context.Context, scope, scopeID, key string) (*PlatformSetting, error)
	ListByScope(ctx context.Context, scope, scopeID string) ([]*PlatformSetting, error)
}
