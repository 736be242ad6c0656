package contact

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/pkg/response"
)

// Mailer delivers a contact notification. Optional; nil means outbound
// email is not configured and submissions are stored only.
type Mailer interface {
	SendContact(name, email, message string) error
}

// SubmitRequest is the body for POST /api/contact.
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

// Handler handles contact form HTTP endpoints.
type Handler struct {
	repo   *Repository
	mailer Mailer
	logger *zap.Logger
}

// NewHandler creates a contact handler.
func NewHandler(repo *Repository, mailer Mailer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, mailer: mailer, logger: logger}
}

// Submit handles POST /api/contact. The message is persisted best-effort
// and then delivered best-effort; the two outcomes reconcile into "sent",
// "saved_only" (200 without mail config, 202 on delivery failure) or a 500
// when neither side effect took hold.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	var savedID *string
	msg := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if id, err := h.repo.Save(c.Request.Context(), msg); err != nil {
		// Persistence must not block delivery.
		h.logger.Warn("contact message not persisted", zap.Error(err))
	} else {
		savedID = &id
	}

	if h.mailer != nil {
		if err := h.mailer.SendContact(req.Name, req.Email, req.Message); err != nil {
			h.logger.Error("contact mail delivery failed", zap.Error(err))
			c.JSON(http.StatusAccepted, gin.H{
				"status":   "saved_only",
				"warning":  err.Error(),
				"saved_id": savedID,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "sent", "saved_id": savedID})
		return
	}

	if savedID != nil {
		c.JSON(http.StatusOK, gin.H{"status": "saved_only", "saved_id": savedID})
		return
	}
	response.Internal(c, "email not configured and document store unavailable")
}
