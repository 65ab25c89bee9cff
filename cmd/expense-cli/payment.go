package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/spf13/cobra"
)

var errMissingInvoice = errors.New("allocation has no embedded expense invoice")

// paymentInput is a payment whose allocations embed the invoices they settle
type paymentInput struct {
	Payment business.ExpensePayment `json:"payment"`
}

func newPaymentCmd() *cobra.Command {
	paymentCmd := &cobra.Command{
		Use:   "payment",
		Short: "Expense payment allocation",
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compute allocation balances and validate a payment",
		Long: `Compute available, used and remaining amounts of a payment, the balance of
every allocated invoice and the validation message.

Use --mode EDIT for a saved payment whose allocations are already counted in
the invoices' amountPaid.`,
		Example: `  expense-cli payment reconcile --file payment.json
  expense-cli payment reconcile --file payment.json --mode EDIT`,
		RunE: runPaymentReconcile,
	}
	reconcileCmd.Flags().StringP("file", "f", "", "JSON file holding the payment (- for stdin)")
	reconcileCmd.Flags().String("mode", string(business.AllocationModeNew), "Allocation mode (NEW or EDIT)")
	_ = reconcileCmd.MarkFlagRequired("file")

	paymentCmd.AddCommand(reconcileCmd)
	return paymentCmd
}

func runPaymentReconcile(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	modeFlag, _ := cmd.Flags().GetString("mode")

	mode := business.AllocationMode(strings.ToUpper(modeFlag))
	if mode != business.AllocationModeNew && mode != business.AllocationModeEdit {
		return fmt.Errorf("invalid mode %q: must be %s or %s", modeFlag, business.AllocationModeNew, business.AllocationModeEdit)
	}

	var input paymentInput
	if err := readInput(cmd, path, &input); err != nil {
		return err
	}
	for _, allocation := range input.Payment.Invoices {
		if allocation.ExpenseInvoice == nil {
			return fmt.Errorf("%w: invoice %d", errMissingInvoice, allocation.ExpenseInvoiceID)
		}
	}

	paymentService := services.NewExpensePaymentService(
		nil,
		logger.WithComponent(logger.ComponentCLI),
		services.NewCurrencyService(),
		services.NewValidationService(),
	)
	if err := paymentService.CheckAmounts(input.Payment); err != nil {
		return err
	}
	return writeJSON(cmd, paymentService.ReconcileLoaded(input.Payment, mode))
}
