package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a minimal catalog workbook for tests.
func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	path := filepath.Join(t.TempDir(), "catalogo.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func defaultSheets() map[string][][]interface{} {
	return map[string][][]interface{}{
		"clientes": {
			{"Nombre Comercial"},
			{"Cliente Uno"},
			{"Cliente Dos"},
		},
		"articulos": {
			{"codigo", "articulos"},
			{"A001", "Camisa Lino"},
			{"B002", "Pantalón Chino"},
		},
		"comerciales": {
			{"comerciales"},
			{"Juan"},
			{"María"},
		},
		"stock  por color": {
			{"SERIE", "COLOR", "Unidades"},
			{"Verano", "Azul", "10"},
			{"Verano", "Rojo", "4"},
			{"Invierno", "Azul", "7"},
		},
	}
}

func TestLoad_CatalogoCompleto(t *testing.T) {
	s, err := Load(writeWorkbook(t, defaultSheets()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Cliente Uno", "Cliente Dos"}, s.Clientes())
	assert.Equal(t, []string{"Juan", "María"}, s.Comerciales())

	arts := s.Articulos()
	require.Len(t, arts, 2)
	assert.Equal(t, "A001", arts[0].Codigo)
	assert.Equal(t, "Camisa Lino", arts[0].Nombre)

	// Colores: distintos y ordenados, tomados de la hoja de stock.
	assert.Equal(t, []string{"Azul", "Rojo"}, s.Colores())
}

func TestLoad_ResolveConEspacios(t *testing.T) {
	s, err := Load(writeWorkbook(t, defaultSheets()))
	require.NoError(t, err)

	a, ok := s.Resolve("  A001  ")
	require.True(t, ok)
	assert.Equal(t, "Camisa Lino", a.Nombre)

	_, ok = s.Resolve("ZZZ")
	assert.False(t, ok)
}

func TestLoad_ArticuloIncompletoSeDescarta(t *testing.T) {
	sheets := defaultSheets()
	sheets["articulos"] = [][]interface{}{
		{"codigo", "articulos"},
		{"A001", "Camisa Lino"},
		{"B002", ""}, // sin nombre
		{"", "Huérfano"},
	}
	s, err := Load(writeWorkbook(t, sheets))
	require.NoError(t, err)

	assert.Len(t, s.Articulos(), 1)
	_, ok := s.Resolve("B002")
	assert.False(t, ok)
}

// Una hoja de referencia sin ningún renglón válido es un error de carga,
// igual que la de artículos.
func TestLoad_HojaDeReferenciaVaciaEsFatal(t *testing.T) {
	sinClientes := defaultSheets()
	sinClientes["clientes"] = [][]interface{}{
		{"Nombre Comercial"},
		{""},
	}
	_, err := Load(writeWorkbook(t, sinClientes))
	assert.Error(t, err)

	sinComerciales := defaultSheets()
	sinComerciales["comerciales"] = [][]interface{}{
		{"comerciales"},
	}
	_, err = Load(writeWorkbook(t, sinComerciales))
	assert.Error(t, err)

	sinArticulos := defaultSheets()
	sinArticulos["articulos"] = [][]interface{}{
		{"codigo", "articulos"},
		{"", ""},
	}
	_, err = Load(writeWorkbook(t, sinArticulos))
	assert.Error(t, err)
}

func TestLoad_HojaFaltanteEsFatal(t *testing.T) {
	sheets := defaultSheets()
	delete(sheets, "comerciales")

	_, err := Load(writeWorkbook(t, sheets))
	assert.Error(t, err)
}

func TestLoad_ColumnaFaltanteEsFatal(t *testing.T) {
	sheets := defaultSheets()
	sheets["clientes"] = [][]interface{}{
		{"Otra Columna"},
		{"Cliente Uno"},
	}
	_, err := Load(writeWorkbook(t, sheets))
	assert.Error(t, err)
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no_existe.xlsx"))
	assert.Error(t, err)
}

func TestStock_Filtros(t *testing.T) {
	s, err := Load(writeWorkbook(t, defaultSheets()))
	require.NoError(t, err)

	todo := s.Stock(StockFilter{})
	assert.Equal(t, []string{"SERIE", "COLOR", "Unidades"}, todo.Columnas)
	assert.Len(t, todo.Filas, 3)

	verano := s.Stock(StockFilter{Series: []string{"Verano"}})
	assert.Len(t, verano.Filas, 2)

	veranoAzul := s.Stock(StockFilter{Series: []string{"Verano"}, Colores: []string{"Azul"}})
	require.Len(t, veranoAzul.Filas, 1)
	assert.Equal(t, []string{"Verano", "Azul", "10"}, veranoAzul.Filas[0])

	vacio := s.Stock(StockFilter{Colores: []string{"Negro"}})
	assert.Empty(t, vacio.Filas)
}
