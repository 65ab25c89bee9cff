package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/logger"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "expense-cli",
		Short: "Offline expense document, payment and numbering calculations",
		Long: `expense-cli runs the expense calculations without a database.

Reference data (currency, taxes, withholding, invoices) is read from the
input file together with the document or payment, and results are written
to stdout as JSON.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			stage, _ := helpers.StageFromEnv()
			logger.InitLoggerWithConfig(logger.LoggerConfig{
				Level:       level,
				Stage:       stage,
				EnableColor: true,
			})
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level written to stderr (debug, info, warn, error)")

	rootCmd.AddCommand(newDocumentCmd())
	rootCmd.AddCommand(newPaymentCmd())
	rootCmd.AddCommand(newSequentialCmd())
	return rootCmd
}

// readInput decodes a JSON file, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string, out any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to decode input %s: %w", path, err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
