package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bahikhata/bahikhata_backend/internal/core/ports/services"
	"github.com/bahikhata/bahikhata_backend/internal/dto"
	"github.com/bahikhata/bahikhata_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests for client master data
type clientHandler struct {
	clientService portssvc.ClientService
}

// registerClientRoutes registers routes related to clients
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientService) {
	h := &clientHandler{clientService: clientService}

	rg.GET("", h.getClient)
}

// getClient godoc
// @Summary Get client details
// @Description Retrieves master data for a single client
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to retrieve client"
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	logger = logger.With(slog.String("client_id", clientID))
	logger.Info("Received request to get client")

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondReportError(c, logger, err, "client lookup")
		return
	}

	logger.Info("Client retrieved successfully")
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}
