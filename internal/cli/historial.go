package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndresGigant/pedidos-comerciales/internal/config"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
)

var (
	historialLimit     int
	historialComercial string
)

var historialCmd = &cobra.Command{
	Use:   "historial",
	Short: "Muestra los últimos renglones del historial de pedidos",
	RunE:  mostrarHistorial,
}

func init() {
	rootCmd.AddCommand(historialCmd)

	historialCmd.Flags().IntVar(&historialLimit, "limit", 20, "Renglones a mostrar")
	historialCmd.Flags().StringVar(&historialComercial, "comercial", "", "Filtrar por comercial")
}

func mostrarHistorial(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	historial := ledger.New(cfg.HistorialPath)

	lineas, err := historial.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read historial: %w", err)
	}

	if historialComercial != "" {
		filtradas := lineas[:0]
		for _, ln := range lineas {
			if ln.Comercial == historialComercial {
				filtradas = append(filtradas, ln)
			}
		}
		lineas = filtradas
	}
	if len(lineas) > historialLimit {
		lineas = lineas[len(lineas)-historialLimit:]
	}

	if len(lineas) == 0 {
		fmt.Println("Historial vacío.")
		return nil
	}

	fmt.Printf("%-10s %-30s %8s %-12s %-20s %-15s %s\n",
		"Código", "Artículo", "Cantidad", "Color", "Cliente", "Comercial", "Fecha")
	for _, ln := range lineas {
		fmt.Printf("%-10s %-30s %8d %-12s %-20s %-15s %s\n",
			ln.Codigo, truncar(ln.Articulo, 30), ln.Cantidad, ln.Color,
			truncar(ln.Cliente, 20), ln.Comercial, ln.Fecha)
	}
	fmt.Printf("\n%d renglones\n", len(lineas))
	return nil
}

func truncar(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
