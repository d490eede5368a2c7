package handlers

import (
	"context"
	"net/http"

	"channel-relay/internal/service"

	"github.com/gin-gonic/gin"
)

// RoutingHandler manages the caller's tenant sources and destinations
type RoutingHandler struct {
	admin service.AdminServiceInterface
}

// NewRoutingHandler creates a new routing handler
func NewRoutingHandler(admin service.AdminServiceInterface) *RoutingHandler {
	return &RoutingHandler{admin: admin}
}

type bindFunc func(ctx context.Context, caller int64, ref service.ChatRef) (*service.Binding, error)
type listFunc func(ctx context.Context, caller int64) ([]service.Binding, error)

// ListSources lists the caller's source chats
// @Summary List sources
// @Tags routing
// @Produce json
// @Success 200 {array} service.Binding
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /sources [get]
func (h *RoutingHandler) ListSources(c *gin.Context) {
	h.list(c, h.admin.ListSources)
}

// AddSource binds a chat as a source of the caller's tenant
// @Summary Add source
// @Description Bind a chat, given as a numeric id or @username, as a source of the caller's tenant
// @Tags routing
// @Accept json
// @Produce json
// @Param source body service.ChatRef true "Chat reference"
// @Success 201 {object} service.Binding
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /sources [post]
func (h *RoutingHandler) AddSource(c *gin.Context) {
	h.bind(c, http.StatusCreated, h.admin.AddSource)
}

// RemoveSource unbinds a source chat
// @Summary Remove source
// @Tags routing
// @Accept json
// @Produce json
// @Param source body service.ChatRef true "Chat reference"
// @Success 200 {object} service.Binding
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sources [delete]
func (h *RoutingHandler) RemoveSource(c *gin.Context) {
	h.bind(c, http.StatusOK, h.admin.RemoveSource)
}

// ListDestinations lists the caller's destination chats
// @Summary List destinations
// @Tags routing
// @Produce json
// @Success 200 {array} service.Binding
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /destinations [get]
func (h *RoutingHandler) ListDestinations(c *gin.Context) {
	h.list(c, h.admin.ListDestinations)
}

// AddDestination binds a chat as a destination of the caller's tenant
// @Summary Add destination
// @Description Bind a chat, given as a numeric id or @username, as a destination of the caller's tenant
// @Tags routing
// @Accept json
// @Produce json
// @Param destination body service.ChatRef true "Chat reference"
// @Success 201 {object} service.Binding
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /destinations [post]
func (h *RoutingHandler) AddDestination(c *gin.Context) {
	h.bind(c, http.StatusCreated, h.admin.AddDestination)
}

// RemoveDestination unbinds a destination chat
// @Summary Remove destination
// @Tags routing
// @Accept json
// @Produce json
// @Param destination body service.ChatRef true "Chat reference"
// @Success 200 {object} service.Binding
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /destinations [delete]
func (h *RoutingHandler) RemoveDestination(c *gin.Context) {
	h.bind(c, http.StatusOK, h.admin.RemoveDestination)
}

func (h *RoutingHandler) bind(c *gin.Context, status int, fn bindFunc) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var ref service.ChatRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	binding, err := fn(c.Request.Context(), caller, ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, binding)
}

func (h *RoutingHandler) list(c *gin.Context, fn listFunc) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	bindings, err := fn(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	if bindings == nil {
		bindings = []service.Binding{}
	}
	c.JSON(http.StatusOK, bindings)
}
