package tests

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
	"github.com/AndresGigant/pedidos-comerciales/internal/model"
	"github.com/AndresGigant/pedidos-comerciales/internal/service"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubCatalog is an in-memory catalog.Store for testing.
type stubCatalog struct {
	articulos map[string]model.Articulo
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{articulos: map[string]model.Articulo{
		"A001": {Codigo: "A001", Nombre: "Camisa Lino"},
		"B002": {Codigo: "B002", Nombre: "Pantalón Chino"},
	}}
}

func (s *stubCatalog) Resolve(codigo string) (model.Articulo, bool) {
	a, ok := s.articulos[codigo]
	return a, ok
}
func (s *stubCatalog) Colores() []string           { return []string{"Azul", "Rojo"} }
func (s *stubCatalog) Clientes() []string          { return []string{"Cliente Uno"} }
func (s *stubCatalog) Comerciales() []string       { return []string{"Juan"} }
func (s *stubCatalog) Articulos() []model.Articulo { return nil }
func (s *stubCatalog) Stock(catalog.StockFilter) catalog.StockTable {
	return catalog.StockTable{}
}

var _ catalog.Store = (*stubCatalog)(nil)

// failingLedger simulates a persistence failure on Append.
type failingLedger struct{ ledger.Ledger }

func (f *failingLedger) Append([]model.LineaPedido) error {
	return errors.New("disco lleno")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func newTestLedger(t *testing.T) (ledger.Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "historial_pedidos.csv")
	return ledger.New(path), path
}

func newTestService(t *testing.T) (service.PedidoService, ledger.Ledger, string) {
	t.Helper()
	l, path := newTestLedger(t)
	svc := service.NewPedidoService(newStubCatalog(), l, nil, nil, nil)
	return svc, l, path
}

func validRequest() dto.GenerarPedidoRequest {
	return dto.GenerarPedidoRequest{
		Cliente:    "Cliente Uno",
		Comercial:  "Juan",
		Codigos:    []string{"A001"},
		Cantidades: []*int{intPtr(3)},
		Colores:    []*string{strPtr("Azul")},
	}
}

// ── GenerarPedido: camino feliz ───────────────────────────────────────────────

func TestGenerarPedido_Success(t *testing.T) {
	svc, l, path := newTestService(t)

	resp, err := svc.GenerarPedido(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Pedido generado correctamente.", resp.Mensaje)
	assert.Equal(t, "pedido.pdf", resp.NombreArchivo)
	assert.True(t, bytes.HasPrefix(resp.Documento, []byte("%PDF")))
	require.Len(t, resp.Lineas, 1)
	assert.Equal(t, "A001", resp.Lineas[0].Codigo)
	assert.Equal(t, "Camisa Lino", resp.Lineas[0].Articulo)
	assert.Equal(t, 3, resp.Lineas[0].Cantidad)
	assert.Equal(t, "Azul", resp.Lineas[0].Color)

	// El historial guarda exactamente la línea del pedido.
	lineas, err := l.ReadAll()
	require.NoError(t, err)
	require.Len(t, lineas, 1)
	assert.Equal(t, "A001", lineas[0].Codigo)
	assert.Equal(t, "Camisa Lino", lineas[0].Articulo)
	assert.Equal(t, 3, lineas[0].Cantidad)
	assert.Equal(t, "Azul", lineas[0].Color)
	assert.Equal(t, "Cliente Uno", lineas[0].Cliente)
	assert.Equal(t, "Juan", lineas[0].Comercial)
	assert.Equal(t, resp.Fecha, lineas[0].Fecha)

	// El archivo recién creado arranca con la cabecera contractual.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("Código,Artículo,Cantidad,Color,Cliente,Comercial,Fecha")))
}

func TestGenerarPedido_MultilineaConservaOrden(t *testing.T) {
	svc, l, _ := newTestService(t)

	req := dto.GenerarPedidoRequest{
		Cliente:    "Cliente Uno",
		Comercial:  "Juan",
		Codigos:    []string{"A001", "B002"},
		Cantidades: []*int{intPtr(1), intPtr(2)},
		Colores:    []*string{strPtr("Azul"), strPtr("Rojo")},
	}
	_, err := svc.GenerarPedido(context.Background(), req)
	require.NoError(t, err)

	lineas, err := l.ReadAll()
	require.NoError(t, err)
	require.Len(t, lineas, 2)
	assert.Equal(t, "A001", lineas[0].Codigo)
	assert.Equal(t, "B002", lineas[1].Codigo)
}

func TestGenerarPedido_AppendsNoDestruyenHistorial(t *testing.T) {
	svc, l, _ := newTestService(t)

	_, err := svc.GenerarPedido(context.Background(), validRequest())
	require.NoError(t, err)

	segundo := validRequest()
	segundo.Codigos = []string{"B002"}
	_, err = svc.GenerarPedido(context.Background(), segundo)
	require.NoError(t, err)

	lineas, err := l.ReadAll()
	require.NoError(t, err)
	require.Len(t, lineas, 2)
	assert.Equal(t, "A001", lineas[0].Codigo)
	assert.Equal(t, "B002", lineas[1].Codigo)
}

// ── GenerarPedido: rechazos de usuario ────────────────────────────────────────

func TestGenerarPedido_SeleccionIncompleta(t *testing.T) {
	svc, l, path := newTestService(t)

	casos := []dto.GenerarPedidoRequest{
		{Comercial: "Juan", Codigos: []string{"A001"}},               // sin cliente
		{Cliente: "Cliente Uno", Codigos: []string{"A001"}},          // sin comercial
		{Cliente: "Cliente Uno", Comercial: "Juan"},                  // sin artículos
		{Cliente: "   ", Comercial: "Juan", Codigos: []string{"A001"}}, // cliente en blanco
	}
	for _, req := range casos {
		_, err := svc.GenerarPedido(context.Background(), req)
		assert.ErrorIs(t, err, service.ErrSeleccionIncompleta)
	}

	// Nada se persiste: el archivo ni siquiera existe.
	lineas, err := l.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, lineas)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerarPedido_CantidadInvalida(t *testing.T) {
	svc, l, _ := newTestService(t)

	casos := [][]*int{
		{intPtr(0)},
		{intPtr(-5)},
		{nil},
		{}, // arreglo más corto que Codigos
	}
	for _, cantidades := range casos {
		req := validRequest()
		req.Cantidades = cantidades
		_, err := svc.GenerarPedido(context.Background(), req)
		assert.ErrorIs(t, err, service.ErrCantidadInvalida)
	}

	lineas, err := l.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, lineas)
}

func TestGenerarPedido_ColorFaltante(t *testing.T) {
	svc, l, _ := newTestService(t)

	casos := [][]*string{
		{nil},
		{strPtr("")},
		{strPtr("   ")},
		{}, // arreglo más corto que Codigos
	}
	for _, colores := range casos {
		req := validRequest()
		req.Colores = colores
		_, err := svc.GenerarPedido(context.Background(), req)
		assert.ErrorIs(t, err, service.ErrColorFaltante)
	}

	lineas, err := l.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, lineas)
}

// La precedencia importa: con cantidad y color inválidos a la vez gana la
// cantidad, y con selección incompleta gana la selección.
func TestGenerarPedido_PrecedenciaDeRechazos(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.Cantidades = []*int{nil}
	req.Colores = []*string{nil}
	_, err := svc.GenerarPedido(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrCantidadInvalida)

	req = validRequest()
	req.Cliente = ""
	req.Cantidades = []*int{nil}
	_, err = svc.GenerarPedido(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrSeleccionIncompleta)
}

// Con varias líneas, TODAS las cantidades se revisan antes que cualquier
// color: una cantidad mala en la segunda línea gana a un color malo en la
// primera.
func TestGenerarPedido_CantidadesAntesQueColores(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := dto.GenerarPedidoRequest{
		Cliente:    "Cliente Uno",
		Comercial:  "Juan",
		Codigos:    []string{"A001", "B002"},
		Cantidades: []*int{intPtr(1), nil},
		Colores:    []*string{nil, strPtr("Rojo")},
	}
	_, err := svc.GenerarPedido(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrCantidadInvalida)
}

// ── GenerarPedido: errores de sistema ─────────────────────────────────────────

func TestGenerarPedido_CodigoDesconocidoNoPersiste(t *testing.T) {
	svc, l, _ := newTestService(t)

	req := dto.GenerarPedidoRequest{
		Cliente:    "Cliente Uno",
		Comercial:  "Juan",
		Codigos:    []string{"A001", "ZZZ"},
		Cantidades: []*int{intPtr(1), intPtr(1)},
		Colores:    []*string{strPtr("Azul"), strPtr("Rojo")},
	}
	_, err := svc.GenerarPedido(context.Background(), req)

	var codErr *service.CodigoDesconocidoError
	require.ErrorAs(t, err, &codErr)
	assert.Equal(t, "ZZZ", codErr.Codigo)

	// El código malo aborta el pedido completo, incluida la línea válida.
	lineas, err := l.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, lineas)
}

func TestGenerarPedido_FalloDePersistenciaSinDocumento(t *testing.T) {
	l, _ := newTestLedger(t)
	svc := service.NewPedidoService(newStubCatalog(), &failingLedger{l}, nil, nil, nil)

	resp, err := svc.GenerarPedido(context.Background(), validRequest())
	assert.ErrorIs(t, err, service.ErrPersistencia)
	assert.Nil(t, resp)
}
