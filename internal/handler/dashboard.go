package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresGigant/pedidos-comerciales/internal/apierror"
	"github.com/AndresGigant/pedidos-comerciales/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary      Resumen de pedidos
// @Description  KPIs agregados sobre todo el historial
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo calcular el resumen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
