package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/taskboard/backend/internal/application/billing"
	"github.com/taskboard/backend/internal/domain/shared"
)

// Maximum webhook payload size (64KB - Stripe webhooks are typically small)
const maxWebhookPayloadSize = 65536

// WebhookProcessor verifies and applies payment provider webhook events
type WebhookProcessor interface {
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (*billingapp.WebhookResult, error)
}

// SessionIssuer issues billing sessions and reports subscription state
type SessionIssuer interface {
	CreateBillingSession(ctx context.Context, accountID uuid.UUID, origin string) (*billingapp.SessionResult, error)
	GetSubscription(ctx context.Context, accountID uuid.UUID) (*billingapp.SubscriptionInfo, error)
}

// BillingHandler handles billing session and webhook endpoints
type BillingHandler struct {
	BaseHandler
	webhookService WebhookProcessor
	sessionService SessionIssuer
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(webhookService WebhookProcessor, sessionService SessionIssuer) *BillingHandler {
	return &BillingHandler{
		webhookService: webhookService,
		sessionService: sessionService,
	}
}

// RegisterRoutes registers billing routes
// The webhook endpoint is called by Stripe and must stay outside authentication
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/stripe", h.HandleWebhook)

	billing := rg.Group("/billing")
	{
		billing.POST("/session", h.CreateSession)
		billing.GET("/subscription", h.GetSubscription)
	}
}

// HandleWebhook godoc
//
//	@ID				handleStripeWebhook
//	@Summary		Handle Stripe webhook
//	@Description	Receive and process webhook events from Stripe for subscription management
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Stripe webhook signature"
//	@Success		200					{object}	map[string]bool		"Webhook received"
//	@Failure		400					{object}	map[string]string	"Verification or processing failure"
//	@Failure		413					{object}	map[string]string	"Payload too large"
//	@Router			/webhooks/stripe [post]
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	// Stripe requires the raw body for signature verification
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookPayloadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if len(payload) > maxWebhookPayloadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Payload too large"})
		return
	}

	// A delivery without a signature can never verify; reject it before
	// anything in the payload is looked at
	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Stripe-Signature header"})
		return
	}

	if _, err := h.webhookService.ProcessWebhook(c.Request.Context(), payload, signature); err != nil {
		c.JSON(webhookErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// webhookErrorStatus maps a webhook processing failure to a response status.
// Verification failures are the caller's fault; anything else is ours, and a
// 5xx makes Stripe redeliver the event.
func webhookErrorStatus(err error) int {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case shared.CodeVerificationFailed, shared.CodeInvalidInput:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// CreateSessionResponse represents the issued session redirect
type CreateSessionResponse struct {
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_123"`
}

// CreateSession godoc
//
//	@ID				createBillingSession
//	@Summary		Create a billing session
//	@Description	Issue a Stripe checkout session for free accounts or a billing portal session for premium accounts
//	@Tags			billing
//	@Produce		json
//	@Success		200	{object}	CreateSessionResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/billing/session [post]
func (h *BillingHandler) CreateSession(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account ID not found in token")
		return
	}

	result, err := h.sessionService.CreateBillingSession(c.Request.Context(), accountID, c.GetHeader("Origin"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": result.URL})
}

// GetSubscription godoc
//
//	@ID				getSubscription
//	@Summary		Get current subscription
//	@Description	Get the account's current plan, task quota, and billing linkage
//	@Tags			billing
//	@Produce		json
//	@Success		200	{object}	APIResponse[billingapp.SubscriptionInfo]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/billing/subscription [get]
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account ID not found in token")
		return
	}

	info, err := h.sessionService.GetSubscription(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
