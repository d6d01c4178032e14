package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vi-fly/vendor-elite-backend/internal/application"
	"github.com/Vi-fly/vendor-elite-backend/internal/application/dto"
	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/middleware"
)

// MarketplaceHandler covers applications, ratings, payments and
// complaints.
type MarketplaceHandler struct {
	applications *application.ApplicationService
	ratings      *application.RatingService
	payments     *application.PaymentService
	complaints   *application.ComplaintService
}

func NewMarketplaceHandler(
	applications *application.ApplicationService,
	ratings *application.RatingService,
	payments *application.PaymentService,
	complaints *application.ComplaintService,
) *MarketplaceHandler {
	return &MarketplaceHandler{
		applications: applications,
		ratings:      ratings,
		payments:     payments,
		complaints:   complaints,
	}
}

func (h *MarketplaceHandler) SubmitApplication(c *gin.Context) {
	var req dto.SubmitApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplierID, _ := middleware.CallerID(c)
	app, err := h.applications.Submit(c.Request.Context(), supplierID, req.SchoolID, req.ServiceType, req.Proposal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *MarketplaceHandler) ListApplications(c *gin.Context) {
	userID, _ := middleware.CallerID(c)
	role, _ := middleware.CallerRole(c)
	apps, err := h.applications.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *MarketplaceHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, _ := middleware.CallerID(c)
	role, _ := middleware.CallerRole(c)
	err := h.applications.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ApplicationStatus(req.Status), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketplaceHandler) SubmitRating(c *gin.Context) {
	var req dto.SubmitRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schoolID, _ := middleware.CallerID(c)
	rating, err := h.ratings.Submit(c.Request.Context(), schoolID, req.SupplierID, req.Stars, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *MarketplaceHandler) ListSupplierRatings(c *gin.Context) {
	ratings, err := h.ratings.ListBySupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (h *MarketplaceHandler) DeleteRating(c *gin.Context) {
	schoolID, _ := middleware.CallerID(c)
	if err := h.ratings.Delete(c.Request.Context(), c.Param("id"), schoolID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketplaceHandler) InitiatePayment(c *gin.Context) {
	supplierID, _ := middleware.CallerID(c)
	payment, err := h.payments.Initiate(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// PaymentCallback is invoked by the payment provider, not by end users.
func (h *MarketplaceHandler) PaymentCallback(c *gin.Context) {
	var req dto.PaymentCallbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.payments.Callback(c.Request.Context(), c.Param("id"), req.Succeeded, req.ProviderRef); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MarketplaceHandler) ListPayments(c *gin.Context) {
	supplierID, _ := middleware.CallerID(c)
	payments, err := h.payments.ListBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *MarketplaceHandler) FileComplaint(c *gin.Context) {
	var req dto.FileComplaintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, _ := middleware.CallerID(c)
	complaint, err := h.complaints.File(c.Request.Context(), userID, req.RespondentID, req.Subject, req.Details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

func (h *MarketplaceHandler) ListComplaints(c *gin.Context) {
	userID, _ := middleware.CallerID(c)
	role, _ := middleware.CallerRole(c)
	complaints, err := h.complaints.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

func (h *MarketplaceHandler) UpdateComplaintStatus(c *gin.Context) {
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.complaints.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ComplaintStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
