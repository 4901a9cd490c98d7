package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
	"github.com/AndresGigant/pedidos-comerciales/internal/config"
	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
	"github.com/AndresGigant/pedidos-comerciales/internal/infra"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
	"github.com/AndresGigant/pedidos-comerciales/internal/model"
	"github.com/AndresGigant/pedidos-comerciales/internal/worker"
)

const fechaLayout = "02/01/2006"

type PedidoService interface {
	GenerarPedido(ctx context.Context, req dto.GenerarPedidoRequest) (*dto.PedidoGeneradoResponse, error)
}

type pedidoService struct {
	catalogo   catalog.Store
	historial  ledger.Ledger
	dispatcher *worker.Dispatcher // nil = email copy disabled
	rdb        *redis.Client      // nil = no dashboard cache to invalidate
	cfg        *config.Config     // nil in unit tests
}

func NewPedidoService(
	catalogo catalog.Store,
	historial ledger.Ledger,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
	cfg *config.Config,
) PedidoService {
	return &pedidoService{
		catalogo:   catalogo,
		historial:  historial,
		dispatcher: dispatcher,
		rdb:        rdb,
		cfg:        cfg,
	}
}

// ── GenerarPedido ─────────────────────────────────────────────────────────────
// The submission pipeline: validate → resolve → persist → render.
//   1. Field validation, short-circuit on the first rejection.
//   2. Resolve every code against the catalog BEFORE touching the ledger —
//      an unknown code aborts the whole submission, nothing partial is written.
//   3. Append all lines to the historial. On failure the document is never
//      rendered: the document is the user's only proof the order was placed,
//      so it must never exist for an order that was not durably recorded.
//   4. Render the PDF from the exact lines that were persisted.
//   5. (best effort) enqueue an email copy — never affects the outcome.

func (s *pedidoService) GenerarPedido(ctx context.Context, req dto.GenerarPedidoRequest) (*dto.PedidoGeneradoResponse, error) {
	if err := validarPedido(req); err != nil {
		return nil, err
	}

	cliente := strings.TrimSpace(req.Cliente)
	comercial := strings.TrimSpace(req.Comercial)
	fecha := time.Now().Format(fechaLayout)

	lineas := make([]model.LineaPedido, 0, len(req.Codigos))
	for i, codigo := range req.Codigos {
		articulo, ok := s.catalogo.Resolve(codigo)
		if !ok {
			log.Error().Str("codigo", codigo).Msg("pedido: código sin artículo en el catálogo")
			return nil, &CodigoDesconocidoError{Codigo: codigo}
		}
		lineas = append(lineas, model.LineaPedido{
			Codigo:    articulo.Codigo,
			Articulo:  articulo.Nombre,
			Cantidad:  *req.Cantidades[i],
			Color:     strings.TrimSpace(*req.Colores[i]),
			Cliente:   cliente,
			Comercial: comercial,
			Fecha:     fecha,
		})
	}

	if err := s.historial.Append(lineas); err != nil {
		log.Error().Err(err).Msg("pedido: fallo al escribir el historial")
		return nil, fmt.Errorf("%w: %v", ErrPersistencia, err)
	}
	s.invalidarDashboard(ctx)

	doc, err := infra.GenerarPedidoPDF(cliente, comercial, fecha, lineas)
	if err != nil {
		log.Error().Err(err).Msg("pedido: fallo al renderizar el documento")
		return nil, fmt.Errorf("%w: %v", ErrDocumento, err)
	}

	s.enviarCopia(ctx, cliente, fecha, doc)

	resp := &dto.PedidoGeneradoResponse{
		Mensaje:       "Pedido generado correctamente.",
		NombreArchivo: "pedido.pdf",
		Documento:     doc,
		Fecha:         fecha,
		Lineas:        make([]dto.LineaPedidoResponse, 0, len(lineas)),
	}
	for _, ln := range lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaPedidoResponse{
			Codigo:   ln.Codigo,
			Articulo: ln.Articulo,
			Cantidad: ln.Cantidad,
			Color:    ln.Color,
		})
	}
	return resp, nil
}

func (s *pedidoService) invalidarDashboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, dashboardCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("pedido: no se pudo invalidar la cache del dashboard")
	}
}

// enviarCopia stores a copy of the PDF and enqueues the email job.
// Best effort end to end: any failure is logged and swallowed.
func (s *pedidoService) enviarCopia(ctx context.Context, cliente, fecha string, doc []byte) {
	if s.dispatcher == nil || s.cfg == nil || s.cfg.PedidoEmailTo == "" {
		return
	}
	if err := os.MkdirAll(s.cfg.PDFStoragePath, 0755); err != nil {
		log.Warn().Err(err).Msg("pedido: no se pudo crear el directorio de PDFs")
		return
	}
	name := fmt.Sprintf("pedido_%d.pdf", time.Now().UnixNano())
	path := filepath.Join(s.cfg.PDFStoragePath, name)
	if err := os.WriteFile(path, doc, 0644); err != nil {
		log.Warn().Err(err).Msg("pedido: no se pudo guardar la copia del PDF")
		return
	}

	payload := worker.EmailJobPayload{
		ToEmail: s.cfg.PedidoEmailTo,
		Subject: fmt.Sprintf("Pedido de %s — %s", cliente, fecha),
		Body:    fmt.Sprintf("Se adjunta el resumen del pedido de %s generado el %s.", cliente, fecha),
		PDFPath: path,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Msg("pedido: no se pudo encolar la copia por correo")
	}
}
