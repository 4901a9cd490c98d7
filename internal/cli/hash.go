package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Genera un hash bcrypt para alta manual de usuarios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := bcrypt.GenerateFromPassword([]byte(args[0]), 12)
		if err != nil {
			return err
		}
		fmt.Println(string(h))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
