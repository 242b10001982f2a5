package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/fonts"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List built-in fonts",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fonts.Names() {
			marker := ""
			if name == fonts.DefaultFont {
				marker = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}
