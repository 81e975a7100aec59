package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import pilot data from a JSON export",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer st.Close()

		if err := st.Import(data); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Println("Pilot data imported.")
		return nil
	},
}
