package billing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

// owing returns a lease with 20000 invoiced and 5000 paid, so 15000 is due.
func owing(deposit int64) (*billing.Lease, []*billing.Invoice, []*billing.Payment) {
	lease := newLease(10000, date(2024, time.January, 1), date(2024, time.December, 31))
	lease.ID = orderedID(100)
	lease.SecurityDeposit = deposit

	invs := invoices(lease.ID, month(2024, time.January), 10000, 10000)
	pays := []*billing.Payment{payment(lease, 5000, date(2024, time.January, 10))}

	return lease, invs, pays
}

// sibling returns an account on the same tenant holding credit.
func sibling(tenantID uuid.UUID, n byte, credit int64) billing.LeaseAccount {
	lease := newLease(10000, date(2023, time.January, 1), date(2023, time.December, 31))
	lease.ID = orderedID(n)
	lease.TenantID = tenantID

	return billing.LeaseAccount{
		Lease:    lease,
		Invoices: invoices(lease.ID, month(2023, time.January), 10000),
		Payments: []*billing.Payment{payment(lease, 10000+credit, date(2023, time.January, 5))},
	}
}

func settlementInput(lease *billing.Lease, invs []*billing.Invoice, pays []*billing.Payment, siblings ...billing.LeaseAccount) billing.SettlementInput {
	all := append([]*billing.Payment{}, pays...)
	for _, s := range siblings {
		all = append(all, s.Payments...)
	}

	for i := range siblings {
		siblings[i].Payments = all
	}

	return billing.SettlementInput{
		Lease:    lease,
		Invoices: invs,
		Payments: all,
		Siblings: siblings,
		Now:      date(2024, time.March, 1),
	}
}

func TestComputeSettlement_Deposit(t *testing.T) {
	tests := []struct {
		name       string
		deposit    int64
		useDeposit bool
		extraPaid  int64
		wantUsed   int64
		wantFinal  int64
		wantRefund int64
	}{
		{name: "DepositCoversPart", deposit: 10000, useDeposit: true, wantUsed: 10000, wantFinal: 5000},
		{name: "DepositCoversAll", deposit: 20000, useDeposit: true, wantUsed: 15000, wantFinal: 0, wantRefund: 5000},
		{name: "DepositNotUsed", deposit: 10000, wantFinal: 15000, wantRefund: 10000},
		{name: "CreditLeavesDepositUntouched", deposit: 10000, useDeposit: true, extraPaid: 20000, wantFinal: -5000, wantRefund: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lease, invs, pays := owing(tt.deposit)
			if tt.extraPaid > 0 {
				pays = append(pays, payment(lease, tt.extraPaid, date(2024, time.February, 10)))
			}

			in := settlementInput(lease, invs, pays)
			in.Request.UseSecurityDeposit = tt.useDeposit

			got, err := billing.ComputeSettlement(in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantUsed, got.SecurityDepositUsed)
			assert.Equal(t, tt.wantFinal, got.FinalSettledAmount)
			assert.Equal(t, tt.wantRefund, got.DepositRefund)
			assert.Equal(t, got.CurrentDue-got.SecurityDepositUsed, got.FinalSettledAmount)
			assert.LessOrEqual(t, got.SecurityDepositUsed, tt.deposit)
		})
	}
}

func TestComputeSettlement_Transfers(t *testing.T) {
	t.Run("DrainsSiblingsInIDOrder", func(t *testing.T) {
		lease, invs, pays := owing(10000)

		in := settlementInput(lease, invs, pays,
			sibling(lease.TenantID, 2, 4000),
			sibling(lease.TenantID, 1, 3000),
		)
		in.Request = billing.SettlementRequest{UseSecurityDeposit: true, TransferAmount: new(int64(5000))}

		got, err := billing.ComputeSettlement(in)
		require.NoError(t, err)

		require.Len(t, got.Transfers, 2)
		assert.Equal(t, orderedID(1), got.Transfers[0].SourceLeaseID)
		assert.Equal(t, int64(3000), got.Transfers[0].Amount)
		assert.Equal(t, orderedID(2), got.Transfers[1].SourceLeaseID)
		assert.Equal(t, int64(2000), got.Transfers[1].Amount)

		for _, tr := range got.Transfers {
			assert.Equal(t, lease.ID, tr.TargetLeaseID)
			assert.Equal(t, lease.TenantID, tr.TenantID)
		}

		assert.Equal(t, int64(5000), got.Transferred)
		assert.Equal(t, int64(10000), got.CurrentDue)
		assert.Equal(t, int64(10000), got.SecurityDepositUsed)
		assert.Zero(t, got.FinalSettledAmount)
	})

	t.Run("CappedByAvailableCredit", func(t *testing.T) {
		lease, invs, pays := owing(0)

		in := settlementInput(lease, invs, pays, sibling(lease.TenantID, 1, 3000))
		in.Request.TransferAmount = new(int64(10000))

		got, err := billing.ComputeSettlement(in)
		require.NoError(t, err)

		assert.Equal(t, int64(3000), got.Transferred)
		assert.Equal(t, int64(12000), got.FinalSettledAmount)
	})

	t.Run("SkipsOtherTenantsAndDebtors", func(t *testing.T) {
		lease, invs, pays := owing(0)

		stranger := sibling(uuid.New(), 1, 5000)
		debtor := sibling(lease.TenantID, 2, 0)
		debtor.Invoices = invoices(debtor.Lease.ID, month(2023, time.January), 10000, 10000)

		in := settlementInput(lease, invs, pays, stranger, debtor)
		in.Request.TransferAmount = new(int64(5000))

		got, err := billing.ComputeSettlement(in)
		require.NoError(t, err)

		assert.Empty(t, got.Transfers)
		assert.Zero(t, got.Transferred)
	})

	t.Run("ExistingTransfersReduceCredit", func(t *testing.T) {
		lease, invs, pays := owing(0)
		sib := sibling(lease.TenantID, 1, 3000)

		in := settlementInput(lease, invs, pays, sib)
		in.Transfers = []*billing.Transfer{{
			ID: uuid.New(), TenantID: lease.TenantID, SourceLeaseID: sib.Lease.ID, TargetLeaseID: orderedID(50), Amount: 2000,
		}}
		in.Request.TransferAmount = new(int64(5000))

		got, err := billing.ComputeSettlement(in)
		require.NoError(t, err)

		assert.Equal(t, int64(1000), got.Transferred)
	})

	t.Run("DepositAppliedAfterTransfers", func(t *testing.T) {
		lease, invs, pays := owing(20000)

		in := settlementInput(lease, invs, pays, sibling(lease.TenantID, 1, 10000))
		in.Request = billing.SettlementRequest{UseSecurityDeposit: true, TransferAmount: new(int64(10000))}

		got, err := billing.ComputeSettlement(in)
		require.NoError(t, err)

		assert.Equal(t, int64(15000), got.DueBeforeTransfers)
		assert.Equal(t, int64(5000), got.CurrentDue)
		assert.Equal(t, int64(5000), got.SecurityDepositUsed)
		assert.Equal(t, int64(15000), got.DepositRefund)
		assert.Zero(t, got.FinalSettledAmount)
	})

	t.Run("Rejected", func(t *testing.T) {
		for _, amount := range []int64{0, -100, 15001} {
			lease, invs, pays := owing(0)

			in := settlementInput(lease, invs, pays, sibling(lease.TenantID, 1, 3000))
			in.Request.TransferAmount = new(amount)

			_, err := billing.ComputeSettlement(in)
			assert.ErrorIs(t, err, billing.ErrValidation, "amount %d", amount)
		}
	})
}

func TestComputeSettlement_Terminated(t *testing.T) {
	lease, invs, pays := owing(0)
	lease.Status = billing.StatusTerminated

	_, err := billing.ComputeSettlement(settlementInput(lease, invs, pays))
	assert.ErrorIs(t, err, billing.ErrLeaseTerminated)
}
