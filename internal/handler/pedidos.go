package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresGigant/pedidos-comerciales/internal/apierror"
	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
	"github.com/AndresGigant/pedidos-comerciales/internal/service"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// GenerarPedido godoc
// @Summary      Generar un pedido
// @Description  Valida el pedido, lo agrega al historial y devuelve el PDF de resumen. Si la validación falla no se persiste nada y no se genera documento.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GenerarPedidoRequest true "Pedido"
// @Success      201  {object} dto.PedidoGeneradoResponse
// @Failure      422  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      500  {object} apierror.APIError
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) GenerarPedido(c *gin.Context) {
	var req dto.GenerarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.GenerarPedido(c.Request.Context(), req)
	if err != nil {
		status := statusForPedidoError(err)
		c.JSON(status, apierror.New(mensajeForPedidoError(err)))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// statusForPedidoError maps the submission error taxonomy onto HTTP codes:
// user-input rejections are 422, catalog drift is 409, everything touching
// the historial or the renderer is 500.
func statusForPedidoError(err error) int {
	switch {
	case errors.Is(err, service.ErrSeleccionIncompleta),
		errors.Is(err, service.ErrCantidadInvalida),
		errors.Is(err, service.ErrColorFaltante):
		return http.StatusUnprocessableEntity
	default:
		var codigoErr *service.CodigoDesconocidoError
		if errors.As(err, &codigoErr) {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	}
}

// mensajeForPedidoError strips internal detail from system errors; user
// rejections pass through verbatim.
func mensajeForPedidoError(err error) string {
	switch {
	case errors.Is(err, service.ErrPersistencia):
		return service.ErrPersistencia.Error()
	case errors.Is(err, service.ErrDocumento):
		return service.ErrDocumento.Error()
	default:
		return err.Error()
	}
}
