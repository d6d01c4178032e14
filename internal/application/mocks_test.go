package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// In-memory fakes for the domain interfaces. Each one stores rows in a map
// guarded by a mutex and supports fault injection through an err field.

var testLog = zerolog.Nop()

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	err      error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *memProfileRepo) Save(_ context.Context, p *domain.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *memProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProfileRepo) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type memConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*domain.Conversation
	err           error
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{conversations: make(map[string]*domain.Conversation)}
}

func (r *memConversationRepo) FindByID(_ context.Context, id string) (*domain.Conversation, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.conversations[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memConversationRepo) FindByPair(_ context.Context, schoolID, supplierID string) (*domain.Conversation, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByPairLocked(schoolID, supplierID), nil
}

func (r *memConversationRepo) findByPairLocked(schoolID, supplierID string) *domain.Conversation {
	for _, c := range r.conversations {
		if c.SchoolID == schoolID && c.SupplierID == supplierID {
			cp := *c
			return &cp
		}
	}
	return nil
}

func (r *memConversationRepo) InsertIfAbsent(_ context.Context, c *domain.Conversation) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByPairLocked(c.SchoolID, c.SupplierID) != nil {
		return nil
	}
	cp := *c
	r.conversations[c.ID] = &cp
	return nil
}

func (r *memConversationRepo) ListBySchool(_ context.Context, schoolID string) ([]*domain.Conversation, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Conversation
	for _, c := range r.conversations {
		if c.SchoolID == schoolID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortConversations(out)
	return out, nil
}

func (r *memConversationRepo) ListBySupplier(_ context.Context, supplierID string) ([]*domain.Conversation, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Conversation
	for _, c := range r.conversations {
		if c.SupplierID == supplierID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortConversations(out)
	return out, nil
}

func sortConversations(cs []*domain.Conversation) {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LastMessageAt.After(cs[j].LastMessageAt)
	})
}

func (r *memConversationRepo) TouchLastMessage(_ context.Context, id string, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conversations[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.LastMessageAt = at
	c.UpdatedAt = at
	return nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.Message
	err      error
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{}
}

func (r *memMessageRepo) Save(_ context.Context, m *domain.Message) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *memMessageRepo) ListByConversation(_ context.Context, conversationID string, limit, offset int) ([]*domain.Message, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMessageRepo) MarkRead(_ context.Context, conversationID, recipientID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ConversationID == conversationID && m.RecipientID == recipientID {
			m.Read = true
		}
	}
	return nil
}

func (r *memMessageRepo) CountUnread(_ context.Context, recipientID string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, m := range r.messages {
		if m.RecipientID == recipientID && !m.Read {
			count++
		}
	}
	return count, nil
}

type memApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*domain.SupplierApplication
	err          error
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{applications: make(map[string]*domain.SupplierApplication)}
}

func (r *memApplicationRepo) Save(_ context.Context, a *domain.SupplierApplication) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.applications[a.ID] = &cp
	return nil
}

func (r *memApplicationRepo) FindByID(_ context.Context, id string) (*domain.SupplierApplication, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.applications[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memApplicationRepo) ListBySchool(_ context.Context, schoolID string) ([]*domain.SupplierApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SupplierApplication
	for _, a := range r.applications {
		if a.SchoolID == schoolID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) ListBySupplier(_ context.Context, supplierID string) ([]*domain.SupplierApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SupplierApplication
	for _, a := range r.applications {
		if a.SupplierID == supplierID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = at
	return nil
}

type memRatingRepo struct {
	mu      sync.Mutex
	ratings map[string]*domain.SupplierRating
	err     error
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{ratings: make(map[string]*domain.SupplierRating)}
}

func (r *memRatingRepo) Save(_ context.Context, rating *domain.SupplierRating) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rating
	r.ratings[rating.ID] = &cp
	return nil
}

func (r *memRatingRepo) Update(_ context.Context, rating *domain.SupplierRating) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ratings[rating.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *rating
	r.ratings[rating.ID] = &cp
	return nil
}

func (r *memRatingRepo) FindByID(_ context.Context, id string) (*domain.SupplierRating, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if rating, ok := r.ratings[id]; ok {
		cp := *rating
		return &cp, nil
	}
	return nil, nil
}

func (r *memRatingRepo) FindByPair(_ context.Context, schoolID, supplierID string) (*domain.SupplierRating, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rating := range r.ratings {
		if rating.SchoolID == schoolID && rating.SupplierID == supplierID {
			cp := *rating
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRatingRepo) ListBySupplier(_ context.Context, supplierID string) ([]*domain.SupplierRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SupplierRating
	for _, rating := range r.ratings {
		if rating.SupplierID == supplierID {
			cp := *rating
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRatingRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ratings, id)
	return nil
}

type memPaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*domain.RegistrationPayment
	err      error
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: make(map[string]*domain.RegistrationPayment)}
}

func (r *memPaymentRepo) Save(_ context.Context, p *domain.RegistrationPayment) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *memPaymentRepo) FindByID(_ context.Context, id string) (*domain.RegistrationPayment, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memPaymentRepo) ListBySupplier(_ context.Context, supplierID string) ([]*domain.RegistrationPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.RegistrationPayment
	for _, p := range r.payments {
		if p.SupplierID == supplierID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus, providerRef string, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	p.ProviderRef = providerRef
	p.UpdatedAt = at
	return nil
}

type memComplaintRepo struct {
	mu         sync.Mutex
	complaints map[string]*domain.LegalComplaint
	err        error
}

func newMemComplaintRepo() *memComplaintRepo {
	return &memComplaintRepo{complaints: make(map[string]*domain.LegalComplaint)}
}

func (r *memComplaintRepo) Save(_ context.Context, c *domain.LegalComplaint) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.complaints[c.ID] = &cp
	return nil
}

func (r *memComplaintRepo) FindByID(_ context.Context, id string) (*domain.LegalComplaint, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.complaints[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memComplaintRepo) ListAll(_ context.Context) ([]*domain.LegalComplaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.LegalComplaint
	for _, c := range r.complaints {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memComplaintRepo) ListByParty(_ context.Context, partyID string) ([]*domain.LegalComplaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.LegalComplaint
	for _, c := range r.complaints {
		if c.ComplainantID == partyID || c.RespondentID == partyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memComplaintRepo) UpdateStatus(_ context.Context, id string, status domain.ComplaintStatus, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = at
	return nil
}

type memSettingRepo struct {
	mu       sync.Mutex
	settings map[string]*domain.PlatformSetting
	err      error
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{settings: make(map[string]*domain.PlatformSetting)}
}

func settingKey(scope, scopeID, key string) string {
	return scope + "|" + scopeID + "|" + key
}

func (r *memSettingRepo) Upsert(_ context.Context, s *domain.PlatformSetting) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.settings[settingKey(s.Scope, s.ScopeID, s.Key)] = &cp
	return nil
}

func (r *memSettingRepo) Find(_ context.Context, scope, scopeID, key string) (*domain.PlatformSetting, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.settings[settingKey(scope, scopeID, key)]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSettingRepo) ListByScope(_ context.Context, scope, scopeID string) ([]*domain.PlatformSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.PlatformSetting
	for _, s := range r.settings {
		if s.Scope == scope && s.ScopeID == scopeID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memContactCache records invalidations so tests can assert on them.
type memContactCache struct {
	mu           sync.Mutex
	contacts     map[string][]domain.Contact
	unread       map[string]int64
	invalidated  []string
	unreadWipes  []string
	contactsHits int
}

func newMemContactCache() *memContactCache {
	return &memContactCache{
		contacts: make(map[string][]domain.Contact),
		unread:   make(map[string]int64),
	}
}

func (c *memContactCache) GetContacts(_ context.Context, userID string) ([]domain.Contact, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	contacts, ok := c.contacts[userID]
	if ok {
		c.contactsHits++
	}
	return contacts, ok
}

func (c *memContactCache) SetContacts(_ context.Context, userID string, contacts []domain.Contact) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contacts[userID] = contacts
	return nil
}

func (c *memContactCache) InvalidateContacts(_ context.Context, userIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range userIDs {
		delete(c.contacts, id)
		c.invalidated = append(c.invalidated, id)
	}
	return nil
}

func (c *memContactCache) GetUnreadCount(_ context.Context, userID string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.unread[userID]
	return count, ok
}

func (c *memContactCache) SetUnreadCount(_ context.Context, userID string, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unread[userID] = count
	return nil
}

func (c *memContactCache) InvalidateUnreadCount(_ context.Context, userIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range userIDs {
		delete(c.unread, id)
		c.unreadWipes = append(c.unreadWipes, id)
	}
	return nil
}

type memEventPublisher struct {
	mu     sync.Mutex
	events []*domain.MessageSentEvent
	err    error
}

func (p *memEventPublisher) PublishMessageSent(_ context.Context, ev *domain.MessageSentEvent) error {
	if p.err != nil {
		return p.err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

// fakeTokenService issues predictable tokens of the form kind:userID.
type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(userID, _ string, _ domain.Role) (string, time.Time, error) {
	return "access:" + userID, time.Now().Add(time.Hour), nil
}

func (fakeTokenService) GenerateRefreshToken(userID, _ string, _ domain.Role) (string, time.Time, error) {
	return "refresh:" + userID, time.Now().Add(24 * time.Hour), nil
}

func (fakeTokenService) ValidateToken(token string) (*domain.TokenClaims, error) {
	if len(token) > 7 && token[:7] == "access:" {
		return &domain.TokenClaims{UserID: token[7:]}, nil
	}
	return nil, domain.ErrInvalidToken
}

func (fakeTokenService) RefreshToken(refreshToken string) (string, time.Time, error) {
	if len(refreshToken) > 8 && refreshToken[:8] == "refresh:" {
		return "access:" + refreshToken[8:], time.Now().Add(time.Hour), nil
	}
	return "", time.Time{}, domain.ErrInvalidToken
}

// fakePasswordService hashes by prefixing; good enough for service tests.
type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) Compare(hashedPassword, password string) bool {
	return hashedPassword == "hashed:"+password
}

func seedProfile(repo *memProfileRepo, id, name string, role domain.Role, org string) {
	repo.profiles[id] = &domain.Profile{
		ID:           id,
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", id),
		PasswordHash: "hashed:secret",
		Role:         role,
		Organization: org,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}
