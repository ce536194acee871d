package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return database.Migrate(cmd.Context(), a.db)
		},
	}
}

func RefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Persist derived lease statuses and bill newly elapsed months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.billing.RefreshLeases(cmd.Context())

			fmt.Fprintf(cmd.OutOrStdout(), "checked %d leases, %d status changes, %d regenerated\n",
				res.Checked, res.StatusChanged, res.Regenerated)

			return err
		},
	}
}

func RegenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate <lease-id>",
		Short: "Rebuild a lease's invoices and reallocate its payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leaseID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid lease id: %w", err)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.billing.RegenerateInvoices(cmd.Context(), leaseID); err != nil {
				return err
			}

			invoices, err := a.billing.ListInvoices(cmd.Context(), leaseID)
			if err != nil {
				return err
			}

			printInvoices(cmd.OutOrStdout(), invoices)

			return nil
		},
	}
}

func addSettlementFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("use-deposit", false, "Apply the security deposit against the remaining due")
	cmd.Flags().String("transfer", "", "Amount of credit to pull from the tenant's other leases, e.g. 1,500.00")
	cmd.Flags().String("effective", "", "Termination date (YYYY-MM-DD) if earlier than the lease end")
	cmd.Flags().String("note", "", "Note recorded on transfers")
}

func settlementRequest(cmd *cobra.Command) (billing.SettlementRequest, error) {
	var req billing.SettlementRequest

	req.UseSecurityDeposit, _ = cmd.Flags().GetBool("use-deposit")
	req.Note, _ = cmd.Flags().GetString("note")

	if s, _ := cmd.Flags().GetString("transfer"); s != "" {
		amount, err := money.ParsePositive(s)
		if err != nil {
			return req, fmt.Errorf("invalid transfer amount: %w", err)
		}

		req.TransferAmount = &amount
	}

	if s, _ := cmd.Flags().GetString("effective"); s != "" {
		date, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return req, fmt.Errorf("invalid effective date: %w", err)
		}

		req.EffectiveDate = &date
	}

	return req, nil
}

func SettlementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlement <lease-id>",
		Short: "Preview the settlement of a lease without changing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettlement(cmd, args[0], false)
		},
	}

	addSettlementFlags(cmd)

	return cmd
}

func TerminateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminate <lease-id>",
		Short: "Settle and terminate a lease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettlement(cmd, args[0], true)
		},
	}

	addSettlementFlags(cmd)

	return cmd
}

func runSettlement(cmd *cobra.Command, rawID string, terminate bool) error {
	leaseID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid lease id: %w", err)
	}

	req, err := settlementRequest(cmd)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	var settlement *billing.Settlement
	if terminate {
		settlement, err = a.billing.TerminateLease(cmd.Context(), leaseID, req)
	} else {
		settlement, err = a.billing.ComputeSettlement(cmd.Context(), leaseID, req)
	}

	if err != nil {
		return err
	}

	printSettlement(cmd.OutOrStdout(), settlement)

	return nil
}

func LedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print the ledger of a tenant or a single lease",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, _ := cmd.Flags().GetString("tenant")
			lease, _ := cmd.Flags().GetString("lease")

			if (tenant == "") == (lease == "") {
				return fmt.Errorf("exactly one of --tenant or --lease is required")
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			var ledger *billing.Ledger

			if tenant != "" {
				id, err := uuid.Parse(tenant)
				if err != nil {
					return fmt.Errorf("invalid tenant id: %w", err)
				}

				ledger, err = a.billing.BuildTenantLedger(cmd.Context(), id)
				if err != nil {
					return err
				}
			} else {
				id, err := uuid.Parse(lease)
				if err != nil {
					return fmt.Errorf("invalid lease id: %w", err)
				}

				ledger, err = a.billing.BuildLeaseLedger(cmd.Context(), id)
				if err != nil {
					return err
				}
			}

			printLedger(cmd.OutOrStdout(), ledger)

			return nil
		},
	}

	cmd.Flags().String("tenant", "", "Tenant ID")
	cmd.Flags().String("lease", "", "Lease ID")

	return cmd
}

func ShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <shop-id> <amount>",
		Short: "Show one owner's share of an amount earned by a shop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shopID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid shop id: %w", err)
			}

			amount, err := money.Parse(args[1])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			share, err := a.ownership.Share(cmd.Context(), shopID, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s of %s\n", money.Format(share), money.Format(amount))

			return nil
		},
	}
}

func printInvoices(w io.Writer, invoices []*billing.Invoice) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tAmount\tPaid\tStatus\t")

	for _, inv := range invoices {
		status := "unpaid"
		if inv.IsPaid {
			status = "paid"
		} else if inv.PaidAmount > 0 {
			status = "partial"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			inv.Period(), money.Format(inv.Amount), money.Format(inv.PaidAmount), status)
	}

	tw.Flush()
}

func printSettlement(w io.Writer, s *billing.Settlement) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	lines := []struct {
		label  string
		amount int64
	}{
		{"Opening due", s.OpeningDue},
		{"Invoiced", s.Invoiced},
		{"Paid", s.Paid},
		{"Due", s.DueBeforeTransfers},
		{"Transferred", s.Transferred},
		{"Current due", s.CurrentDue},
		{"Deposit used", s.SecurityDepositUsed},
		{"Deposit refund", s.DepositRefund},
		{"Final settled", s.FinalSettledAmount},
	}

	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t\n", l.label, money.Format(l.amount))
	}

	tw.Flush()

	for _, t := range s.Transfers {
		fmt.Fprintf(w, "transfer %s from lease %s\n", money.Format(t.Amount), t.SourceLeaseID)
	}
}

func printLedger(w io.Writer, l *billing.Ledger) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tDescription\tDebit\tCredit\tBalance")

	for _, row := range l.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.Date.Format(time.DateOnly),
			row.Description,
			blankZero(row.Debit),
			blankZero(row.Credit),
			money.Format(row.Balance),
		)
	}

	tw.Flush()

	fmt.Fprintf(w, "Closing balance: %s\n", money.Format(l.ClosingBalance))
}

func blankZero(cents int64) string {
	if cents == 0 {
		return ""
	}

	return money.Format(cents)
}
