package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
)

const (
	dashboardCacheKey = "dashboard:resumen"
	dashboardCacheTTL = 60 * time.Second
)

type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	historial ledger.Ledger
	rdb       *redis.Client // nil = no cache
}

func NewDashboardService(historial ledger.Ledger, rdb *redis.Client) DashboardService {
	return &dashboardService{historial: historial, rdb: rdb}
}

// Resumen aggregates the whole historial into the dashboard KPIs.
// Cache-aside through Redis, best effort: a cache failure falls back to a
// full read, never to an error.
func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	lineas, err := s.historial.ReadAll()
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalPedidos:      len(lineas),
		PedidosPorCliente: map[string]int{},
		PedidosPorColor:   map[string]int{},
		PedidosPorCodigo:  map[string]int{},
	}
	for _, ln := range lineas {
		resp.PedidosPorCliente[ln.Cliente]++
		resp.PedidosPorColor[ln.Color]++
		resp.PedidosPorCodigo[ln.Codigo]++
	}
	resp.ColorMasVendido = moda(resp.PedidosPorColor)
	resp.ArticuloMasPedido = moda(resp.PedidosPorCodigo)

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, b, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard: no se pudo poblar la cache")
			}
		}
	}
	return resp, nil
}

// moda returns the most frequent key; ties break to the lexicographically
// smallest key so the result is stable. Empty input yields "-".
func moda(counts map[string]int) string {
	best, bestCount := "-", 0
	for k, c := range counts {
		if c > bestCount || (c == bestCount && bestCount > 0 && k < best) {
			best, bestCount = k, c
		}
	}
	return best
}
