package model

// Articulo is one catalog entry, loaded once at startup from the reference
// workbook. Codigo is always the string form — the source sheet mixes numeric
// and text cells, so lookups canonicalize on load.
type Articulo struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"articulo"`
}

// LineaPedido is one persisted order line — one row of the historial CSV.
// Cantidad is a positive integer and Fecha is "DD/MM/YYYY"; both invariants
// are enforced before a LineaPedido is ever constructed.
type LineaPedido struct {
	Codigo    string `json:"codigo"`
	Articulo  string `json:"articulo"`
	Cantidad  int    `json:"cantidad"`
	Color     string `json:"color"`
	Cliente   string `json:"cliente"`
	Comercial string `json:"comercial"`
	Fecha     string `json:"fecha"`
}
