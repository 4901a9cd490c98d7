package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
	"github.com/AndresGigant/pedidos-comerciales/internal/config"
)

var coloresCmd = &cobra.Command{
	Use:   "colores",
	Short: "Lista los colores válidos del catálogo",
	Long: `Carga el catálogo xlsx y lista los colores distintos de la hoja de
stock. Sirve para verificar que el archivo de catálogo es legible antes de
desplegar el servidor.`,
	RunE: listarColores,
}

func init() {
	rootCmd.AddCommand(coloresCmd)
}

func listarColores(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalogo, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	colores := catalogo.Colores()
	for _, color := range colores {
		fmt.Println(color)
	}
	fmt.Printf("\n%d colores, %d artículos, %d clientes, %d comerciales\n",
		len(colores), len(catalogo.Articulos()), len(catalogo.Clientes()), len(catalogo.Comerciales()))
	return nil
}
