package infra

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresGigant/pedidos-comerciales/internal/model"
)

func lineasDePrueba() []model.LineaPedido {
	return []model.LineaPedido{
		{Codigo: "A001", Articulo: "Camisa Lino", Cantidad: 3, Color: "Azul"},
		{Codigo: "B002", Articulo: "Pantalón Chino", Cantidad: 1, Color: "Caqui"},
	}
}

func TestGenerarPedidoPDF_EsUnPDF(t *testing.T) {
	doc, err := GenerarPedidoPDF("Cliente Uno", "Juan", "01/09/2026", lineasDePrueba())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Greater(t, len(doc), 500)
}

// Mismas entradas, mismos bytes: la fecha de creación está fijada y los
// diccionarios de recursos se emiten ordenados. Se renderiza varias veces
// porque el orden de los recursos solo varía entre ejecuciones.
func TestGenerarPedidoPDF_EsDeterminista(t *testing.T) {
	primero, err := GenerarPedidoPDF("Cliente Uno", "Juan", "01/09/2026", lineasDePrueba())
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		otro, err := GenerarPedidoPDF("Cliente Uno", "Juan", "01/09/2026", lineasDePrueba())
		require.NoError(t, err)
		require.Equal(t, primero, otro)
	}
}

func TestGenerarPedidoPDF_EntradasDistintasCambianElDocumento(t *testing.T) {
	a, err := GenerarPedidoPDF("Cliente Uno", "Juan", "01/09/2026", lineasDePrueba())
	require.NoError(t, err)
	b, err := GenerarPedidoPDF("Cliente Dos", "Juan", "01/09/2026", lineasDePrueba())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerarPedidoPDF_SinLineas(t *testing.T) {
	doc, err := GenerarPedidoPDF("Cliente Uno", "Juan", "01/09/2026", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
