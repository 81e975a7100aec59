package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all pilot data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer st.Close()

		data, err := st.Export()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if out == "" || out == "-" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Exported to %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "File to write (default stdout)")
}
