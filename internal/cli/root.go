package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pedidosctl",
	Short: "Herramientas de línea de comandos para pedidos-comerciales",
	Long: `pedidosctl opera directamente sobre los archivos del sistema de
pedidos (historial CSV y catálogo xlsx) sin pasar por el servidor HTTP.

Útil para inspeccionar el historial, verificar el catálogo y generar
hashes de contraseña para el alta manual de usuarios.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
