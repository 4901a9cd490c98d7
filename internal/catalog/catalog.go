// Package catalog loads the read-only reference workbook (clients, articles,
// sales reps, stock by color) once at process start and serves lookups for
// the rest of the process lifetime. The backing data is never mutated.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/AndresGigant/pedidos-comerciales/internal/model"
)

// Sheet and column names of the reference workbook. The stock sheet name
// carries a double space in the source file.
const (
	sheetClientes    = "clientes"
	sheetArticulos   = "articulos"
	sheetComerciales = "comerciales"
	sheetStock       = "stock  por color"

	colNombreComercial = "Nombre Comercial"
	colCodigo          = "codigo"
	colArticulos       = "articulos"
	colComerciales     = "comerciales"
	colSerie           = "SERIE"
	colColor           = "COLOR"
)

// StockFilter narrows the stock view; empty slices mean "no filter".
type StockFilter struct {
	Series  []string
	Colores []string
}

// StockTable is the filtered stock view: the sheet's own columns plus rows.
type StockTable struct {
	Columnas []string   `json:"columnas"`
	Filas    [][]string `json:"filas"`
}

// Store exposes catalog lookups. Implementations are immutable after load.
type Store interface {
	// Resolve returns the article for a (string-canonicalized) code.
	Resolve(codigo string) (model.Articulo, bool)
	// Colores returns the distinct valid color labels, sorted.
	Colores() []string
	Clientes() []string
	Comerciales() []string
	Articulos() []model.Articulo
	Stock(f StockFilter) StockTable
}

type store struct {
	articulos   map[string]model.Articulo
	orden       []string // article codes in sheet order
	colores     []string
	clientes    []string
	comerciales []string

	stockCols []string
	stockRows [][]string
	serieIdx  int
	colorIdx  int
}

// Load reads the workbook at path and builds an immutable Store.
// A missing sheet, a missing required column, or a reference sheet with no
// valid rows at all is a fatal load error; a row missing a required field
// is dropped with a warning.
func Load(path string) (Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	s := &store{articulos: make(map[string]model.Articulo)}

	if err := s.loadClientes(f); err != nil {
		return nil, err
	}
	if err := s.loadArticulos(f); err != nil {
		return nil, err
	}
	if err := s.loadComerciales(f); err != nil {
		return nil, err
	}
	if err := s.loadStock(f); err != nil {
		return nil, err
	}

	log.Info().
		Int("clientes", len(s.clientes)).
		Int("articulos", len(s.articulos)).
		Int("comerciales", len(s.comerciales)).
		Int("colores", len(s.colores)).
		Str("path", path).
		Msg("catalogo cargado")
	return s, nil
}

func (s *store) loadClientes(f *excelize.File) error {
	rows, err := sheetRows(f, sheetClientes)
	if err != nil {
		return err
	}
	idx, err := columnIndex(rows, sheetClientes, colNombreComercial)
	if err != nil {
		return err
	}
	for _, row := range rows[1:] {
		nombre := cell(row, idx)
		if nombre == "" {
			continue
		}
		s.clientes = append(s.clientes, nombre)
	}
	if len(s.clientes) == 0 {
		return fmt.Errorf("catalog: hoja %q sin clientes validos", sheetClientes)
	}
	return nil
}

func (s *store) loadArticulos(f *excelize.File) error {
	rows, err := sheetRows(f, sheetArticulos)
	if err != nil {
		return err
	}
	codIdx, err := columnIndex(rows, sheetArticulos, colCodigo)
	if err != nil {
		return err
	}
	artIdx, err := columnIndex(rows, sheetArticulos, colArticulos)
	if err != nil {
		return err
	}
	for i, row := range rows[1:] {
		codigo := cell(row, codIdx)
		nombre := cell(row, artIdx)
		if codigo == "" || nombre == "" {
			log.Warn().Int("fila", i+2).Msg("catalogo: articulo incompleto descartado")
			continue
		}
		if _, dup := s.articulos[codigo]; !dup {
			s.orden = append(s.orden, codigo)
		}
		s.articulos[codigo] = model.Articulo{Codigo: codigo, Nombre: nombre}
	}
	if len(s.articulos) == 0 {
		return fmt.Errorf("catalog: hoja %q sin articulos validos", sheetArticulos)
	}
	return nil
}

func (s *store) loadComerciales(f *excelize.File) error {
	rows, err := sheetRows(f, sheetComerciales)
	if err != nil {
		return err
	}
	idx, err := columnIndex(rows, sheetComerciales, colComerciales)
	if err != nil {
		return err
	}
	for _, row := range rows[1:] {
		nombre := cell(row, idx)
		if nombre == "" {
			continue
		}
		s.comerciales = append(s.comerciales, nombre)
	}
	if len(s.comerciales) == 0 {
		return fmt.Errorf("catalog: hoja %q sin comerciales validos", sheetComerciales)
	}
	return nil
}

func (s *store) loadStock(f *excelize.File) error {
	rows, err := sheetRows(f, sheetStock)
	if err != nil {
		return err
	}
	s.serieIdx, err = columnIndex(rows, sheetStock, colSerie)
	if err != nil {
		return err
	}
	s.colorIdx, err = columnIndex(rows, sheetStock, colColor)
	if err != nil {
		return err
	}
	for _, h := range rows[0] {
		s.stockCols = append(s.stockCols, strings.TrimSpace(h))
	}

	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		if cell(row, s.serieIdx) == "" && cell(row, s.colorIdx) == "" {
			continue
		}
		// Pad short rows so the view always has one cell per column.
		padded := make([]string, len(s.stockCols))
		for j := range padded {
			padded[j] = cell(row, j)
		}
		s.stockRows = append(s.stockRows, padded)

		if color := padded[s.colorIdx]; color != "" && !seen[color] {
			seen[color] = true
			s.colores = append(s.colores, color)
		}
	}
	sort.Strings(s.colores)
	return nil
}

func (s *store) Resolve(codigo string) (model.Articulo, bool) {
	a, ok := s.articulos[strings.TrimSpace(codigo)]
	return a, ok
}

func (s *store) Colores() []string { return append([]string(nil), s.colores...) }

func (s *store) Clientes() []string { return append([]string(nil), s.clientes...) }

func (s *store) Comerciales() []string { return append([]string(nil), s.comerciales...) }

func (s *store) Articulos() []model.Articulo {
	out := make([]model.Articulo, 0, len(s.orden))
	for _, cod := range s.orden {
		out = append(out, s.articulos[cod])
	}
	return out
}

func (s *store) Stock(f StockFilter) StockTable {
	t := StockTable{Columnas: append([]string(nil), s.stockCols...), Filas: [][]string{}}
	series := toSet(f.Series)
	colores := toSet(f.Colores)
	for _, row := range s.stockRows {
		if len(series) > 0 && !series[row[s.serieIdx]] {
			continue
		}
		if len(colores) > 0 && !colores[row[s.colorIdx]] {
			continue
		}
		t.Filas = append(t.Filas, row)
	}
	return t
}

// ── helpers ──────────────────────────────────────────────────────────────────

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("catalog: hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog: hoja %q vacia", sheet)
	}
	return rows, nil
}

// columnIndex finds a column by its whitespace-trimmed header name.
func columnIndex(rows [][]string, sheet, name string) (int, error) {
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("catalog: hoja %q sin columna %q", sheet, name)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func toSet(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		if v != "" {
			m[v] = true
		}
	}
	return m
}
