package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vi-fly/vendor-elite-backend/internal/application"
	"github.com/Vi-fly/vendor-elite-backend/internal/application/dto"
	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/middleware"
)

type MessagingHandler struct {
	messages *application.MessageService
}

func NewMessagingHandler(messages *application.MessageService) *MessagingHandler {
	return &MessagingHandler{messages: messages}
}

// Contacts lists the caller's conversation counterparties.
func (h *MessagingHandler) Contacts(c *gin.Context) {
	userID, _ := middleware.CallerID(c)
	role, _ := middleware.CallerRole(c)
	contacts := h.messages.ResolveContacts(c.Request.Context(), userID, role)
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// CreateConversation resolves or creates the conversation between a school
// and a supplier. The caller supplies the counterparty; their own side
// comes from the token.
func (h *MessagingHandler) CreateConversation(c *gin.Context) {
	var req dto.CreateConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.CallerID(c)
	role, _ := middleware.CallerRole(c)
	schoolID, supplierID := req.SchoolID, req.SupplierID
	switch role {
	case domain.RoleSchool:
		schoolID = userID
	case domain.RoleSupplier:
		supplierID = userID
	}

	conv, err := h.messages.GetOrCreateConversation(c.Request.Context(), schoolID, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *MessagingHandler) ListMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	messages, err := h.messages.GetMessages(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *MessagingHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.CallerID(c)
	role, _ := middleware.CallerRole(c)
	msg, err := h.messages.SendMessage(
		c.Request.Context(),
		c.Param("id"),
		userID,
		role,
		req.RecipientID,
		domain.Role(req.RecipientRole),
		req.Content,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessagingHandler) MarkRead(c *gin.Context) {
	userID, _ := middleware.CallerID(c)
	if err := h.messages.MarkConversationRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessagingHandler) UnreadCount(c *gin.Context) {
	userID, _ := middleware.CallerID(c)
	count, err := h.messages.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
