package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
)

// CatalogoHandler sirve las listas de opciones con las que el cliente arma
// el formulario de pedido.
type CatalogoHandler struct{ catalogo catalog.Store }

func NewCatalogoHandler(catalogo catalog.Store) *CatalogoHandler {
	return &CatalogoHandler{catalogo: catalogo}
}

// Clientes godoc
// @Summary      Lista de clientes
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} string
// @Router       /v1/catalogo/clientes [get]
func (h *CatalogoHandler) Clientes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Clientes())
}

// Comerciales godoc
// @Summary      Lista de comerciales
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} string
// @Router       /v1/catalogo/comerciales [get]
func (h *CatalogoHandler) Comerciales(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Comerciales())
}

// Articulos godoc
// @Summary      Lista de artículos
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Articulo
// @Router       /v1/catalogo/articulos [get]
func (h *CatalogoHandler) Articulos(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Articulos())
}

// Colores godoc
// @Summary      Lista de colores válidos
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} string
// @Router       /v1/catalogo/colores [get]
func (h *CatalogoHandler) Colores(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Colores())
}
