package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/metrics"
)

// MessageService implements the messaging core: contact resolution,
// conversation get-or-create, message send and read-state updates.
type MessageService struct {
	conversations domain.ConversationRepository
	messages      domain.MessageRepository
	profiles      domain.ProfileRepository
	cache         domain.ContactCache
	events        domain.EventPublisher
	log           zerolog.Logger
}

// NewMessageService wires the messaging core. cache and events may be nil;
// both are best-effort collaborators.
func NewMessageService(
	conversations domain.ConversationRepository,
	messages domain.MessageRepository,
	profiles domain.ProfileRepository,
	cache domain.ContactCache,
	events domain.EventPublisher,
	log zerolog.Logger,
) *MessageService {
	return &MessageService{
		conversations: conversations,
		messages:      messages,
		profiles:      profiles,
		cache:         cache,
		events:        events,
		log:           log.With().Str("component", "message-service").Logger(),
	}
}

// ResolveContacts returns one contact per conversation counterparty for the
// user. Resolution is read-only and never fails: query errors are logged
// and an empty list is returned. Roles other than school and supplier have
// no conversations by construction.
func (s *MessageService) ResolveContacts(ctx context.Context, userID string, role domain.Role) []domain.Contact {
	if role != domain.RoleSchool && role != domain.RoleSupplier {
		return []domain.Contact{}
	}

	if s.cache != nil {
		if contacts, ok := s.cache.GetContacts(ctx, userID); ok {
			metrics.ContactCacheHits.WithLabelValues("hit").Inc()
			return contacts
		}
		metrics.ContactCacheHits.WithLabelValues("miss").Inc()
	}

	var (
		conversations []*domain.Conversation
		err           error
	)
	if role == domain.RoleSchool {
		conversations, err = s.conversations.ListBySchool(ctx, userID)
	} else {
		conversations, err = s.conversations.ListBySupplier(ctx, userID)
	}
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("list conversations failed")
		return []domain.Contact{}
	}

	contacts := make([]domain.Contact, 0, len(conversations))
	for _, conv := range conversations {
		if role == domain.RoleSchool {
			contacts = append(contacts, s.supplierContact(ctx, conv.SupplierID))
		} else {
			contacts = append(contacts, s.schoolContact(ctx, conv.SchoolID))
		}
	}

	if s.cache != nil {
		if err := s.cache.SetContacts(ctx, userID, contacts); err != nil {
			s.log.Debug().Err(err).Msg("contact cache write failed")
		}
	}
	return contacts
}

func (s *MessageService) supplierContact(ctx context.Context, supplierID string) domain.Contact {
	name := domain.FallbackSupplierName
	profile, err := s.profiles.FindByID(ctx, supplierID)
	switch {
	case err != nil:
		s.log.Error().Err(err).Str("supplier_id", supplierID).Msg("load supplier profile failed")
	case profile == nil || profile.Organization == "":
		// Referential data is missing; surface it in the logs instead of
		// silently masking it behind the fallback name.
		s.log.Warn().Str("supplier_id", supplierID).Msg("supplier profile missing or has no organization name")
	default:
		name = profile.Organization
	}
	return domain.Contact{
		ID:     supplierID,
		Name:   name,
		Role:   domain.RoleSupplier,
		Avatar: domain.AvatarSupplier,
	}
}

func (s *MessageService) schoolContact(ctx context.Context, schoolID string) domain.Contact {
	name := domain.FallbackSchoolName
	profile, err := s.profiles.FindByID(ctx, schoolID)
	switch {
	case err != nil:
		s.log.Error().Err(err).Str("school_id", schoolID).Msg("load school profile failed")
	case profile == nil || profile.Name == "":
		s.log.Warn().Str("school_id", schoolID).Msg("school profile missing")
	default:
		name = profile.Name
	}
	return domain.Contact{
		ID:     schoolID,
		Name:   name,
		Role:   domain.RoleSchool,
		Avatar: domain.AvatarSchool,
	}
}

// GetOrCreateConversation returns the conversation for the pair, creating
// it when absent. The insert goes through the unique (school, supplier)
// index with a conditional insert, so concurrent first contact still yields
// exactly one row.
func (s *MessageService) GetOrCreateConversation(ctx context.Context, schoolID, supplierID string) (*domain.Conversation, error) {
	if schoolID == "" || supplierID == "" {
		return nil, fmt.Errorf("%w: school and supplier ids are required", domain.ErrValidation)
	}

	existing, err := s.conversations.FindByPair(ctx, schoolID, supplierID)
	if err != nil {
		s.log.Error().Err(err).Msg("conversation lookup failed")
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now().UTC()
	conv := &domain.Conversation{
		ID:            uuid.NewString(),
		SchoolID:      schoolID,
		SupplierID:    supplierID,
		LastMessageAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.conversations.InsertIfAbsent(ctx, conv); err != nil {
		s.log.Error().Err(err).Msg("conversation insert failed")
		return nil, err
	}

	// Re-fetch: a concurrent creator may have won the insert, in which
	// case its row is the authoritative one.
	created, err := s.conversations.FindByPair(ctx, schoolID, supplierID)
	if err != nil {
		s.log.Error().Err(err).Msg("conversation re-fetch failed")
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}
	if created.ID == conv.ID {
		metrics.ConversationsCreated.Inc()
		s.invalidateContacts(ctx, schoolID, supplierID)
	}
	return created, nil
}

// SendMessage bumps the conversation's last-activity timestamp, then
// appends the message row. No automatic retry: a failed send is reported
// to the caller, who may re-invoke.
func (s *MessageService) SendMessage(ctx context.Context, conversationID, senderID string, senderRole domain.Role, recipientID string, recipientRole domain.Role, content string) (*domain.Message, error) {
	if conversationID == "" || senderID == "" || recipientID == "" || content == "" {
		return nil, fmt.Errorf("%w: conversation, sender, recipient and content are required", domain.ErrValidation)
	}
	if !senderRole.Valid() || !recipientRole.Valid() {
		return nil, fmt.Errorf("%w: unknown role", domain.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.conversations.TouchLastMessage(ctx, conversationID, now); err != nil {
		s.log.Error().Err(err).Str("conversation_id", conversationID).Msg("touch conversation failed")
		return nil, err
	}

	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderRole:     senderRole,
		RecipientID:    recipientID,
		RecipientRole:  recipientRole,
		Content:        content,
		Read:           false,
		CreatedAt:      now,
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("conversation_id", conversationID).Msg("message insert failed")
		return nil, err
	}
	metrics.MessagesSent.Inc()

	if s.events != nil {
		ev := &domain.MessageSentEvent{
			MessageID:      msg.ID,
			ConversationID: msg.ConversationID,
			SenderID:       msg.SenderID,
			RecipientID:    msg.RecipientID,
			SentAt:         msg.CreatedAt,
		}
		if err := s.events.PublishMessageSent(ctx, ev); err != nil {
			s.log.Warn().Err(err).Str("message_id", msg.ID).Msg("publish message-sent event failed")
		}
	}

	s.invalidateContacts(ctx, senderID, recipientID)
	if s.cache != nil {
		if err := s.cache.InvalidateUnreadCount(ctx, recipientID); err != nil {
			s.log.Debug().Err(err).Msg("unread cache invalidation failed")
		}
	}
	return msg, nil
}

// MarkConversationRead flips read=true on every message in the
// conversation addressed to the user. Idempotent.
func (s *MessageService) MarkConversationRead(ctx context.Context, conversationID, userID string) error {
	if conversationID == "" || userID == "" {
		return fmt.Errorf("%w: conversation and user ids are required", domain.ErrValidation)
	}
	if err := s.messages.MarkRead(ctx, conversationID, userID); err != nil {
		s.log.Error().Err(err).Str("conversation_id", conversationID).Msg("mark read failed")
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateUnreadCount(ctx, userID); err != nil {
			s.log.Debug().Err(err).Msg("unread cache invalidation failed")
		}
	}
	return nil
}

// GetMessages returns the conversation's messages in creation order.
func (s *MessageService) GetMessages(ctx context.Context, conversationID string, limit, offset int) ([]*domain.Message, error) {
	return s.messages.ListByConversation(ctx, conversationID, limit, offset)
}

// UnreadCount returns how many unread messages are addressed to the user.
func (s *MessageService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if s.cache != nil {
		if count, ok := s.cache.GetUnreadCount(ctx, userID); ok {
			return count, nil
		}
	}
	count, err := s.messages.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.SetUnreadCount(ctx, userID, count); err != nil {
			s.log.Debug().Err(err).Msg("unread cache write failed")
		}
	}
	return count, nil
}

func (s *MessageService) invalidateContacts(ctx context.Context, userIDs ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateContacts(ctx, userIDs...); err != nil {
		s.log.Debug().Err(err).Msg("contact cache invalidation failed")
	}
}
