package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GenerarPedidoRequest mirrors the order form: Cantidades and Colores are
// positionally aligned with Codigos and may be shorter when the UI has not
// rendered every row yet — absent positions count as missing entries.
// Field-level checks live in the service (the rejection precedence matters),
// not in validator tags.
type GenerarPedidoRequest struct {
	Cliente    string    `json:"cliente"`
	Comercial  string    `json:"comercial"`
	Codigos    []string  `json:"codigos"`
	Cantidades []*int    `json:"cantidades"`
	Colores    []*string `json:"colores"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaPedidoResponse struct {
	Codigo   string `json:"codigo"`
	Articulo string `json:"articulo"`
	Cantidad int    `json:"cantidad"`
	Color    string `json:"color"`
}

// PedidoGeneradoResponse carries the rendered document. Documento is
// base64-encoded by encoding/json; NombreArchivo is the suggested filename.
type PedidoGeneradoResponse struct {
	Mensaje       string                `json:"mensaje"`
	NombreArchivo string                `json:"nombre_archivo"`
	Documento     []byte                `json:"documento"`
	Fecha         string                `json:"fecha"`
	Lineas        []LineaPedidoResponse `json:"lineas"`
}

// ─── Historial ───────────────────────────────────────────────────────────────

type HistorialFilter struct {
	Limit int `form:"limit,default=20" validate:"omitempty,min=1,max=500"`
}

type HistorialResponse struct {
	Data  []LineaHistorial `json:"data"`
	Total int              `json:"total"`
}

type LineaHistorial struct {
	Codigo    string `json:"codigo"`
	Articulo  string `json:"articulo"`
	Cantidad  int    `json:"cantidad"`
	Color     string `json:"color"`
	Cliente   string `json:"cliente"`
	Comercial string `json:"comercial"`
	Fecha     string `json:"fecha"`
}

// ─── Stock ───────────────────────────────────────────────────────────────────

type StockFilter struct {
	Series  []string `form:"serie"`
	Colores []string `form:"color"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type DashboardResponse struct {
	TotalPedidos      int            `json:"total_pedidos"`
	ColorMasVendido   string         `json:"color_mas_vendido"`
	ArticuloMasPedido string         `json:"articulo_mas_pedido"`
	PedidosPorCliente map[string]int `json:"pedidos_por_cliente"`
	PedidosPorColor   map[string]int `json:"pedidos_por_color"`
	PedidosPorCodigo  map[string]int `json:"pedidos_por_codigo"`
}
