package handlers

import (
	"net/http"

	"channel-relay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivationHandler redeems activation tokens for the authenticated caller
type ActivationHandler struct {
	admin service.AdminServiceInterface
}

// NewActivationHandler creates a new activation handler
func NewActivationHandler(admin service.AdminServiceInterface) *ActivationHandler {
	return &ActivationHandler{admin: admin}
}

// ActivateBody is the payload of POST /activation
type ActivateBody struct {
	Token string `json:"token" example:"q3VxZ0lYb2FfS3J3"`
}

// ActivationResponse names the tenant the caller now owns
type ActivationResponse struct {
	TenantID uuid.UUID `json:"tenant_id"`
}

// Activate redeems a token and makes the caller the tenant owner
// @Summary Redeem activation token
// @Description Redeem a single-use activation token; the caller becomes the owner of its tenant
// @Tags activation
// @Accept json
// @Produce json
// @Param activation body ActivateBody true "Token"
// @Success 200 {object} ActivationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Token already used"
// @Security BearerAuth
// @Router /activation [post]
func (h *ActivationHandler) Activate(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var body ActivateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tenantID, err := h.admin.Activate(c.Request.Context(), caller, body.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ActivationResponse{TenantID: tenantID})
}
