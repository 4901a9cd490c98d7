package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
	"github.com/AndresGigant/pedidos-comerciales/internal/model"
)

func renglon(codigo, color, cliente string) model.LineaPedido {
	return model.LineaPedido{
		Codigo: codigo, Articulo: "Artículo " + codigo, Cantidad: 1,
		Color: color, Cliente: cliente, Comercial: "Juan", Fecha: "01/09/2026",
	}
}

func TestResumen_HistorialVacio(t *testing.T) {
	l := ledger.New(filepath.Join(t.TempDir(), "historial.csv"))
	svc := NewDashboardService(l, nil)

	resp, err := svc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalPedidos)
	assert.Equal(t, "-", resp.ColorMasVendido)
	assert.Equal(t, "-", resp.ArticuloMasPedido)
	assert.Empty(t, resp.PedidosPorCliente)
}

func TestResumen_AgregaTodoElHistorial(t *testing.T) {
	l := ledger.New(filepath.Join(t.TempDir(), "historial.csv"))
	require.NoError(t, l.Append([]model.LineaPedido{
		renglon("A001", "Azul", "Cliente Uno"),
		renglon("A001", "Azul", "Cliente Dos"),
		renglon("B002", "Rojo", "Cliente Uno"),
	}))
	svc := NewDashboardService(l, nil)

	resp, err := svc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalPedidos)
	assert.Equal(t, "Azul", resp.ColorMasVendido)
	assert.Equal(t, "A001", resp.ArticuloMasPedido)
	assert.Equal(t, 2, resp.PedidosPorCliente["Cliente Uno"])
	assert.Equal(t, 1, resp.PedidosPorCliente["Cliente Dos"])
	assert.Equal(t, 2, resp.PedidosPorColor["Azul"])
	assert.Equal(t, 1, resp.PedidosPorCodigo["B002"])
}

func TestModa_EmpateResuelveAlMenor(t *testing.T) {
	assert.Equal(t, "Azul", moda(map[string]int{"Rojo": 2, "Azul": 2}))
	assert.Equal(t, "-", moda(map[string]int{}))
	assert.Equal(t, "Rojo", moda(map[string]int{"Rojo": 3, "Azul": 2}))
}
