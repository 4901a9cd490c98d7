package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresGigant/pedidos-comerciales/internal/apierror"
	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
	"github.com/AndresGigant/pedidos-comerciales/internal/middleware"
	"github.com/AndresGigant/pedidos-comerciales/internal/model"
)

// HistorialHandler reads the order history straight from the ledger —
// there is no business logic beyond the per-role filter.
type HistorialHandler struct{ historial ledger.Ledger }

func NewHistorialHandler(historial ledger.Ledger) *HistorialHandler {
	return &HistorialHandler{historial: historial}
}

// Listar godoc
// @Summary      Historial de pedidos
// @Description  Últimos N renglones del historial. Un comercial ve solo sus propios pedidos; un admin ve todos.
// @Tags         historial
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Renglones (default 20)"
// @Success      200 {object} dto.HistorialResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/historial [get]
func (h *HistorialHandler) Listar(c *gin.Context) {
	var filter dto.HistorialFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	claims := middleware.GetClaims(c)

	var lineas []model.LineaPedido
	var err error
	if claims.Rol == "comercial" {
		// El nombre del comercial en el historial es su username de sesión.
		lineas, err = h.historial.ReadFiltered(func(ln model.LineaPedido) bool {
			return ln.Comercial == claims.Username
		})
		if err == nil && len(lineas) > filter.Limit {
			lineas = lineas[len(lineas)-filter.Limit:]
		}
	} else {
		lineas, err = h.historial.ReadTail(filter.Limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo leer el historial"))
		return
	}

	resp := dto.HistorialResponse{Data: make([]dto.LineaHistorial, 0, len(lineas)), Total: len(lineas)}
	for _, ln := range lineas {
		resp.Data = append(resp.Data, dto.LineaHistorial{
			Codigo:    ln.Codigo,
			Articulo:  ln.Articulo,
			Cantidad:  ln.Cantidad,
			Color:     ln.Color,
			Cliente:   ln.Cliente,
			Comercial: ln.Comercial,
			Fecha:     ln.Fecha,
		})
	}
	c.JSON(http.StatusOK, resp)
}
