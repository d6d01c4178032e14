package dto

type RegisterReq struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"required,oneof=school supplier"`
	Organization string `json:"organization"`
}

type RegisterResp struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResp struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type CreateConversationReq struct {
	SchoolID   string `json:"school_id"`
	SupplierID string `json:"supplier_id"`
}

type SendMessageReq struct {
	RecipientID   string `json:"recipient_id" binding:"required"`
	RecipientRole string `json:"recipient_role" binding:"required,oneof=school supplier"`
	Content       string `json:"content" binding:"required"`
}

type SubmitApplicationReq struct {
	SchoolID    string `json:"school_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Proposal    string `json:"proposal"`
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type SubmitRatingReq struct {
	SupplierID string `json:"supplier_id" binding:"required"`
	Stars      int    `json:"stars" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

type PaymentCallbackReq struct {
	Succeeded   bool   `json:"succeeded"`
	ProviderRef string `json:"provider_ref"`
}

type FileComplaintReq struct {
	RespondentID string `json:"respondent_id" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Details      string `json:"details"`
}

type PutSettingReq struct {
	Scope   string `json:"scope" binding:"required,oneof=global supplier rating-section"`
	ScopeID string `json:"scope_id"`
	Key     string `json:"key" binding:"required"`
	Value   string `json:"value" binding:"required"`
}
