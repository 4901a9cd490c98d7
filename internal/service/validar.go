package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AndresGigant/pedidos-comerciales/internal/dto"
)

// User-input rejections. The message is surfaced verbatim; nothing is
// persisted and no document is produced.
var (
	ErrSeleccionIncompleta = errors.New("Selecciona cliente, comercial y artículos.")
	ErrCantidadInvalida    = errors.New("Ingresa cantidad válida.")
	ErrColorFaltante       = errors.New("Selecciona color.")
)

// ErrPersistencia marks a failed or corrupt historial write. Distinct from
// user-input errors so operators can tell "fix your order" from "system
// problem". No document is ever returned for an order that was not recorded.
var ErrPersistencia = errors.New("No se pudo registrar el pedido. Contacte al administrador.")

// ErrDocumento marks a render failure after the order was durably recorded.
var ErrDocumento = errors.New("El pedido fue registrado pero no se pudo generar el documento.")

// CodigoDesconocidoError reports a submitted code with no catalog match.
// Not a user error: the UI only offers catalog codes, so this means the UI
// options and the catalog have drifted apart.
type CodigoDesconocidoError struct {
	Codigo string
}

func (e *CodigoDesconocidoError) Error() string {
	return fmt.Sprintf("el código %q no existe en el catálogo", e.Codigo)
}

// validarPedido applies the rejection precedence: incomplete selection first,
// then quantities, then colors — first failure wins. Cantidades and Colores
// are positionally aligned with Codigos and may be shorter; an absent
// position counts as a missing entry, never an index fault.
func validarPedido(req dto.GenerarPedidoRequest) error {
	if strings.TrimSpace(req.Cliente) == "" ||
		strings.TrimSpace(req.Comercial) == "" ||
		len(req.Codigos) == 0 {
		return ErrSeleccionIncompleta
	}
	for i := range req.Codigos {
		if i >= len(req.Cantidades) || req.Cantidades[i] == nil || *req.Cantidades[i] <= 0 {
			return ErrCantidadInvalida
		}
	}
	for i := range req.Codigos {
		if i >= len(req.Colores) || req.Colores[i] == nil || strings.TrimSpace(*req.Colores[i]) == "" {
			return ErrColorFaltante
		}
	}
	return nil
}
