package main

import (
	"fmt"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/spf13/cobra"
)

func newSequentialCmd() *cobra.Command {
	sequentialCmd := &cobra.Command{
		Use:   "sequential",
		Short: "Format and parse document numbers",
	}

	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Render a document number such as DEP-2025-0001",
		Example: `  expense-cli sequential format --prefix DEP --date-format yyyy --next 1
  expense-cli sequential format --prefix DEP --date-format yy-MM --next 42 --date 15/03/2025`,
		Args: cobra.NoArgs,
		RunE: runSequentialFormat,
	}
	formatCmd.Flags().String("prefix", "", "Number prefix, without '-'")
	formatCmd.Flags().String("date-format", string(business.DateFormatYYYY), "Date segment (yy, yyyy, yy-MM, yyyy-MM)")
	formatCmd.Flags().Int("next", 1, "Counter value")
	formatCmd.Flags().String("date", "", "Document date (dd/mm/yyyy, default: today)")
	_ = formatCmd.MarkFlagRequired("prefix")

	parseCmd := &cobra.Command{
		Use:     "parse <number>",
		Short:   "Recover prefix, date format and counter from a document number",
		Example: `  expense-cli sequential parse DEP-25-03-0042`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSequentialParse,
	}

	sequentialCmd.AddCommand(formatCmd, parseCmd)
	return sequentialCmd
}

func runSequentialFormat(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")
	dateFormat, _ := cmd.Flags().GetString("date-format")
	next, _ := cmd.Flags().GetInt("next")
	dateStr, _ := cmd.Flags().GetString("date")

	at := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse(helpers.DisplayDateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("invalid date format. Use dd/mm/yyyy: %w", err)
		}
		at = parsed
	}

	formatted, err := services.NewSequentialService(nil).Format(business.Sequential{
		Prefix:          prefix,
		DynamicSequence: business.DateFormat(dateFormat),
		Next:            next,
	}, at)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatted)
	return err
}

func runSequentialParse(cmd *cobra.Command, args []string) error {
	seq, err := services.NewSequentialService(nil).Parse(args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd, seq)
}
