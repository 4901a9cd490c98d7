// Package ledger owns the order history: an append-only CSV file whose row
// order is the record. Appends rewrite the file wholesale (load, concatenate,
// write back) — acceptable at this volume, and the first thing to replace if
// volumes ever grow. There is no cross-process locking: two processes racing
// the read-modify-write sequence can lose one writer's rows (last writer
// wins); the system assumes a single mutator at a time.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/AndresGigant/pedidos-comerciales/internal/model"
)

// Columnas is the contractual header of the historial file. A file whose
// header differs is corrupt, not merely outdated.
var Columnas = []string{"Código", "Artículo", "Cantidad", "Color", "Cliente", "Comercial", "Fecha"}

// ErrEsquemaInvalido marks a historial file whose header does not match
// Columnas exactly.
var ErrEsquemaInvalido = errors.New("historial con esquema invalido")

// Ledger is the append-only order history.
type Ledger interface {
	Append(lineas []model.LineaPedido) error
	ReadAll() ([]model.LineaPedido, error)
	// ReadTail returns the last n rows in insertion order.
	ReadTail(n int) ([]model.LineaPedido, error)
	ReadFiltered(keep func(model.LineaPedido) bool) ([]model.LineaPedido, error)
}

type csvLedger struct {
	path string
	// Guards the in-process read-modify-write; does nothing for other processes.
	mu sync.Mutex
}

// New returns a Ledger backed by the CSV file at path. The file is created
// lazily on the first Append.
func New(path string) Ledger {
	return &csvLedger{path: path}
}

func (l *csvLedger) Append(lineas []model.LineaPedido) error {
	if len(lineas) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	existentes, err := l.readLocked()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	todas := append(existentes, lineas...)

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("historial: crear directorio: %w", err)
		}
	}
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("historial: escribir %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columnas); err != nil {
		return fmt.Errorf("historial: escribir cabecera: %w", err)
	}
	for _, ln := range todas {
		record := []string{
			ln.Codigo, ln.Articulo, strconv.Itoa(ln.Cantidad),
			ln.Color, ln.Cliente, ln.Comercial, ln.Fecha,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("historial: escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("historial: volcar filas: %w", err)
	}
	return f.Sync()
}

func (l *csvLedger) ReadAll() ([]model.LineaPedido, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lineas, err := l.readLocked()
	if errors.Is(err, os.ErrNotExist) {
		return []model.LineaPedido{}, nil
	}
	return lineas, err
}

func (l *csvLedger) ReadTail(n int) ([]model.LineaPedido, error) {
	lineas, err := l.ReadAll()
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(lineas) > n {
		lineas = lineas[len(lineas)-n:]
	}
	return lineas, nil
}

func (l *csvLedger) ReadFiltered(keep func(model.LineaPedido) bool) ([]model.LineaPedido, error) {
	lineas, err := l.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([]model.LineaPedido, 0, len(lineas))
	for _, ln := range lineas {
		if keep(ln) {
			out = append(out, ln)
		}
	}
	return out, nil
}

// readLocked loads the whole file. Caller holds l.mu.
func (l *csvLedger) readLocked() ([]model.LineaPedido, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("historial: abrir %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("historial: leer %s: %w", l.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("historial: %s: %w", l.path, ErrEsquemaInvalido)
	}
	if !equalHeader(records[0]) {
		return nil, fmt.Errorf("historial: %s: cabecera %v: %w", l.path, records[0], ErrEsquemaInvalido)
	}

	lineas := make([]model.LineaPedido, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(Columnas) {
			return nil, fmt.Errorf("historial: fila %d con %d campos: %w", i+2, len(rec), ErrEsquemaInvalido)
		}
		cantidad, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("historial: fila %d cantidad %q: %w", i+2, rec[2], ErrEsquemaInvalido)
		}
		lineas = append(lineas, model.LineaPedido{
			Codigo:    rec[0],
			Articulo:  rec[1],
			Cantidad:  cantidad,
			Color:     rec[3],
			Cliente:   rec[4],
			Comercial: rec[5],
			Fecha:     rec[6],
		})
	}
	return lineas, nil
}

func equalHeader(got []string) bool {
	if len(got) != len(Columnas) {
		return false
	}
	for i := range Columnas {
		if got[i] != Columnas[i] {
			return false
		}
	}
	return true
}
