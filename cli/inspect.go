package cli

import (
	"fmt"

	"github.com/TFMV/nowgen/storage/parquet"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Report schema, row count, and size of Parquet files",
	Long: `Report the schema, row count, and on-disk size of one or more Parquet
files without materializing their rows.

Examples:
  nowgen inspect parquet-file-sizes/example1.parquet
  nowgen inspect parquet-file-sizes/*.parquet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, logger, err := commandSetup(cmd)
	if err != nil {
		return err
	}

	for _, path := range args {
		info, err := parquet.Inspect(path)
		if err != nil {
			return err
		}

		logger.Info().
			Str("path", info.Path).
			Int64("rows", info.Rows).
			Int("columns", info.Columns).
			Int64("bytes", info.Size).
			Msg("Inspected file")

		fmt.Printf("📄 %s: %d rows × %d columns, %d bytes\n", info.Path, info.Rows, info.Columns, info.Size)
		for _, field := range info.Schema.Fields() {
			fmt.Printf("   %-16s %s\n", field.Name, field.Type)
		}
	}

	return nil
}
