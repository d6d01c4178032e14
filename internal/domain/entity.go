package domain

import (
	"time"
)

// Profile is a registered account: a school, a supplier, or a platform admin.
type Profile struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	// Organization is the trading name shown to schools. Suppliers only.
	Organization string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Conversation pairs one school with one supplier. At most one row exists
// per (school, supplier) pair; the unique index on the table enforces it.
type Conversation struct {
	ID            string
	SchoolID      string
	SupplierID    string
	LastMessageAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Message is a single chat message inside a conversation. Messages are
// append-only; the read flag moves false -> true and never back.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderRole     Role
	RecipientID    string
	RecipientRole  Role
	Content        string
	Read           bool
	CreatedAt      time.Time
}

// Contact is the derived counterparty summary shown in a contact list.
// Never persisted.
type Contact struct {
	ID     string
	Name   string
	Role   Role
	Avatar string
}

// Avatar glyphs for the two counterparty kinds.
const (
	AvatarSupplier = "🏢"
	AvatarSchool   = "🏫"
)

// Fallback display names when the joined profile row is missing.
const (
	FallbackSupplierName = "Unknown Supplier"
	FallbackSchoolName   = "School User"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// CanTransitionTo reports whether the status change is allowed. Only
// pending applications move, and only to a terminal state.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return s == ApplicationPending &&
		(next == ApplicationApproved || next == ApplicationRejected)
}

// SupplierApplication is a supplier's pitch to serve a school.
type SupplierApplication struct {
	ID          string
	SupplierID  string
	SchoolID    string
	ServiceType string
	Proposal    string
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SupplierRating is a school's star rating of a supplier. One rating per
// (school, supplier) pair; re-rating updates in place.
type SupplierRating struct {
	ID         string
	SupplierID string
	SchoolID   string
	Stars      int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "initiated"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return s == PaymentInitiated &&
		(next == PaymentPaid || next == PaymentFailed)
}

// RegistrationPayment tracks a supplier's one-time registration fee.
type RegistrationPayment struct {
	ID          string
	SupplierID  string
	Amount      int64
	Currency    string
	ProviderRef string
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "open"
	ComplaintInReview ComplaintStatus = "in_review"
	ComplaintResolved ComplaintStatus = "resolved"
)

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	switch s {
	case ComplaintOpen:
		return next == ComplaintInReview || next == ComplaintResolved
	case ComplaintInReview:
		return next == ComplaintResolved
	}
	return false
}

// LegalComplaint is a dispute filed by one party against another.
type LegalComplaint struct {
	ID            string
	ComplainantID string
	RespondentID  string
	Subject       string
	Details       string
	Status        ComplaintStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PlatformSetting is a server-side configuration row keyed by the entity it
// governs. These replace any client-local toggles: the database is the only
// source of truth for admin switches like rating enablement.
type PlatformSetting struct {
	ID        string
	Scope     string // "supplier", "rating-section", "global"
	ScopeID   string // entity id within the scope, empty for global
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Well-known setting scopes and keys.
const (
	SettingScopeGlobal        = "global"
	SettingScopeSupplier      = "supplier"
	SettingScopeRatingSection = "rating-section"

	SettingKeyRatingEnabled   = "rating_enabled"
	SettingKeyRegistrationFee = "registration_fee"
)
