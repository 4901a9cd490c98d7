package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresGigant/pedidos-comerciales/internal/apierror"
	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
)

type StockHandler struct{ catalogo catalog.Store }

func NewStockHandler(catalogo catalog.Store) *StockHandler {
	return &StockHandler{catalogo: catalogo}
}

// Consultar godoc
// @Summary      Stock por color
// @Description  Vista filtrable de la hoja de stock del catálogo
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        serie query []string false "Series a incluir"
// @Param        color query []string false "Colores a incluir"
// @Success      200 {object} catalog.StockTable
// @Router       /v1/stock [get]
func (h *StockHandler) Consultar(c *gin.Context) {
	var filter dto.StockFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	tabla := h.catalogo.Stock(catalog.StockFilter{
		Series:  filter.Series,
		Colores: filter.Colores,
	})
	c.JSON(http.StatusOK, tabla)
}
