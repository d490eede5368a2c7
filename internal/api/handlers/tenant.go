package handlers

import (
	"net/http"

	"channel-relay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles tenant administration reserved for the bot owner
type TenantHandler struct {
	admin service.AdminServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(admin service.AdminServiceInterface) *TenantHandler {
	return &TenantHandler{admin: admin}
}

// CreateTenantBody is the payload of POST /tenants
type CreateTenantBody struct {
	Name string `json:"name" example:"acme"`
}

// TokenResponse carries a freshly issued activation token
type TokenResponse struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Token    string    `json:"token"`
}

// CreateTenant creates an unowned tenant and returns its first activation token
// @Summary Create tenant
// @Description Create a tenant without an owner and issue its first activation token (bot owner only)
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body CreateTenantBody true "Tenant"
// @Success 201 {object} service.CreatedTenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var body CreateTenantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	created, err := h.admin.CreateTenant(c.Request.Context(), caller, body.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListTenants lists every tenant
// @Summary List tenants
// @Description List every tenant with its owner (bot owner only)
// @Tags tenants
// @Produce json
// @Success 200 {array} service.TenantResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	tenants, err := h.admin.ListTenants(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	if tenants == nil {
		tenants = []service.TenantResponse{}
	}
	c.JSON(http.StatusOK, tenants)
}

// IssueToken issues another activation token for a tenant
// @Summary Issue activation token
// @Description Issue an additional single-use activation token for a tenant (bot owner only)
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id}/tokens [post]
func (h *TenantHandler) IssueToken(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid tenant ID"})
		return
	}

	token, err := h.admin.IssueToken(c.Request.Context(), caller, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, TokenResponse{TenantID: tenantID, Token: token})
}
