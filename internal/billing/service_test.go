package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

type fixture struct {
	repo   *memRepo
	svc    *billing.Service
	now    time.Time
	tenant uuid.UUID
	shops  []uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{repo: newMemRepo(), now: date(2024, time.May, 10)}
	f.svc = billing.NewService(f.repo, billing.WithClock(func() time.Time { return f.now }))

	tenant, err := f.svc.CreateTenant(context.Background(), "Karim Traders", 0)
	require.NoError(t, err)

	f.tenant = tenant.ID
	f.shops = []uuid.UUID{f.repo.addShop(), f.repo.addShop()}

	return f
}

func (f *fixture) lease(t *testing.T, shop int, start, end time.Time, deposit int64) *billing.Lease {
	t.Helper()

	lease, err := f.svc.CreateLease(context.Background(), billing.CreateLeaseParams{
		TenantID:        f.tenant,
		ShopID:          f.shops[shop],
		MonthlyRent:     10000,
		SecurityDeposit: deposit,
		StartDate:       start,
		EndDate:         end,
	})
	require.NoError(t, err)

	return lease
}

func (f *fixture) pay(t *testing.T, leaseID uuid.UUID, amount int64) *billing.Payment {
	t.Helper()

	p, err := f.svc.RecordPayment(context.Background(), billing.PaymentParams{
		LeaseID:     leaseID,
		Amount:      amount,
		PaymentDate: f.now,
	})
	require.NoError(t, err)

	return p
}

func (f *fixture) invoices(t *testing.T, leaseID uuid.UUID) []*billing.Invoice {
	t.Helper()

	invs, err := f.svc.ListInvoices(context.Background(), leaseID)
	require.NoError(t, err)

	return invs
}

func TestService_CreateLease(t *testing.T) {
	ctx := context.Background()

	t.Run("BillsElapsedMonthsAndOccupiesShop", func(t *testing.T) {
		f := newFixture(t)
		lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)

		assert.NotEqual(t, uuid.Nil, lease.ID)
		assert.Equal(t, billing.StatusActive, lease.Status)
		assert.Equal(t, []int64{10000, 10000, 10000, 10000, 10000}, amounts(f.invoices(t, lease.ID)))
		assert.Equal(t, billing.ShopOccupied, f.repo.shops[f.shops[0]])
	})

	t.Run("OccupiedShop", func(t *testing.T) {
		f := newFixture(t)
		f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)

		_, err := f.svc.CreateLease(ctx, billing.CreateLeaseParams{
			TenantID: f.tenant, ShopID: f.shops[0], MonthlyRent: 10000, StartDate: date(2024, time.February, 1),
		})
		assert.ErrorIs(t, err, billing.ErrShopOccupied)
	})

	tests := []struct {
		name    string
		mutate  func(f *fixture, p *billing.CreateLeaseParams)
		wantErr error
	}{
		{name: "ZeroRent", mutate: func(_ *fixture, p *billing.CreateLeaseParams) { p.MonthlyRent = 0 }, wantErr: billing.ErrValidation},
		{name: "NegativeDeposit", mutate: func(_ *fixture, p *billing.CreateLeaseParams) { p.SecurityDeposit = -1 }, wantErr: billing.ErrValidation},
		{name: "EndBeforeStart", mutate: func(_ *fixture, p *billing.CreateLeaseParams) { p.EndDate = date(2023, time.December, 1) }, wantErr: billing.ErrValidation},
		{name: "MissingStart", mutate: func(_ *fixture, p *billing.CreateLeaseParams) { p.StartDate = time.Time{} }, wantErr: billing.ErrValidation},
		{name: "UnknownTenant", mutate: func(_ *fixture, p *billing.CreateLeaseParams) { p.TenantID = uuid.New() }, wantErr: billing.ErrNotFound},
		{name: "UnknownShop", mutate: func(_ *fixture, p *billing.CreateLeaseParams) { p.ShopID = uuid.New() }, wantErr: billing.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			params := billing.CreateLeaseParams{
				TenantID:    f.tenant,
				ShopID:      f.shops[0],
				MonthlyRent: 10000,
				StartDate:   date(2024, time.January, 1),
				EndDate:     date(2024, time.December, 31),
			}
			tt.mutate(f, &params)

			_, err := f.svc.CreateLease(ctx, params)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, billing.ShopVacant, f.repo.shops[f.shops[0]])
		})
	}
}

func TestService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)

	f.pay(t, lease.ID, 25000)

	invs := f.invoices(t, lease.ID)
	assert.Equal(t, []int64{10000, 10000, 5000, 0, 0}, paidAmounts(invs))
	assert.True(t, invs[1].IsPaid)
	assert.False(t, invs[2].IsPaid)

	_, err := f.svc.RecordPayment(ctx, billing.PaymentParams{LeaseID: lease.ID, Amount: 0, PaymentDate: f.now})
	assert.ErrorIs(t, err, billing.ErrValidation)

	_, err = f.svc.RecordPayment(ctx, billing.PaymentParams{LeaseID: uuid.New(), Amount: 100, PaymentDate: f.now})
	assert.ErrorIs(t, err, billing.ErrNotFound)
}

func TestService_AdjustRent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)
	f.pay(t, lease.ID, 25000)

	adj, err := f.svc.AdjustRent(ctx, lease.ID, 12000, date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(10000), adj.PreviousRent)

	invs := f.invoices(t, lease.ID)
	assert.Equal(t, []int64{10000, 10000, 12000, 12000, 12000}, amounts(invs))
	assert.Equal(t, []int64{10000, 10000, 5000, 0, 0}, paidAmounts(invs))

	got, err := f.svc.GetLease(ctx, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), got.MonthlyRent)

	feb, err := f.svc.ResolveRentForMonth(ctx, lease.ID, 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), feb)

	apr, err := f.svc.ResolveRentForMonth(ctx, lease.ID, 2024, time.April)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), apr)

	_, err = f.svc.ResolveRentForMonth(ctx, lease.ID, 2024, 13)
	assert.ErrorIs(t, err, billing.ErrValidation)

	_, err = f.svc.AdjustRent(ctx, lease.ID, 12000, date(2023, time.December, 1))
	assert.ErrorIs(t, err, billing.ErrValidation)

	_, err = f.svc.UpdateLeaseTerms(ctx, lease.ID, billing.UpdateLeaseParams{MonthlyRent: new(int64(9000))})
	assert.ErrorIs(t, err, billing.ErrValidation)
}

func TestService_UpdateLeaseTerms(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)
	f.pay(t, lease.ID, 25000)

	got, err := f.svc.UpdateLeaseTerms(ctx, lease.ID, billing.UpdateLeaseParams{
		MonthlyRent: new(int64(8000)),
		StartDate:   new(date(2024, time.March, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8000), got.MonthlyRent)

	invs := f.invoices(t, lease.ID)
	assert.Equal(t, []int64{8000, 8000, 8000}, amounts(invs))
	assert.Equal(t, []int64{8000, 8000, 8000}, paidAmounts(invs))

	_, err = f.svc.UpdateLeaseTerms(ctx, lease.ID, billing.UpdateLeaseParams{EndDate: new(date(2024, time.January, 1))})
	assert.ErrorIs(t, err, billing.ErrValidation)
}

func TestService_SoftDeletePayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)

	f.pay(t, lease.ID, 10000)
	second := f.pay(t, lease.ID, 15000)

	err := f.svc.SoftDeletePayment(ctx, second.ID, " ")
	assert.ErrorIs(t, err, billing.ErrValidation)

	require.NoError(t, f.svc.SoftDeletePayment(ctx, second.ID, "bounced cheque"))
	assert.Equal(t, []int64{10000, 0, 0, 0, 0}, paidAmounts(f.invoices(t, lease.ID)))

	commits := f.repo.commits
	require.NoError(t, f.svc.SoftDeletePayment(ctx, second.ID, "bounced cheque"))
	assert.Equal(t, commits, f.repo.commits)

	all, err := f.svc.ListPayments(ctx, billing.PaymentFilter{LeaseID: &lease.ID, IncludeDeleted: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[1].IsDeleted)
	assert.Equal(t, "bounced cheque", all[1].DeletedReason)

	bal, err := f.svc.LeaseBalance(ctx, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), bal.Funds)
	assert.Equal(t, int64(40000), bal.Due)
}

func TestService_RegenerateInvoices_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)
	f.pay(t, lease.ID, 25000)

	require.NoError(t, f.svc.RegenerateInvoices(ctx, lease.ID))
	first := f.invoices(t, lease.ID)

	require.NoError(t, f.svc.RegenerateInvoices(ctx, lease.ID))
	second := f.invoices(t, lease.ID)

	assert.Equal(t, amounts(first), amounts(second))
	assert.Equal(t, paidAmounts(first), paidAmounts(second))
}

func TestService_TerminateLease(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.April, 1), date(2025, time.March, 31), 10000)
	f.pay(t, lease.ID, 5000)

	preview, err := f.svc.ComputeSettlement(ctx, lease.ID, billing.SettlementRequest{UseSecurityDeposit: true})
	require.NoError(t, err)

	settlement, err := f.svc.TerminateLease(ctx, lease.ID, billing.SettlementRequest{UseSecurityDeposit: true})
	require.NoError(t, err)

	assert.Equal(t, preview, settlement)
	assert.Equal(t, int64(15000), settlement.CurrentDue)
	assert.Equal(t, int64(10000), settlement.SecurityDepositUsed)
	assert.Equal(t, int64(5000), settlement.FinalSettledAmount)

	got, err := f.svc.GetLease(ctx, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusTerminated, got.Status)
	assert.Equal(t, int64(10000), got.SecurityDepositUsed)
	require.NotNil(t, got.TerminatedAt)
	assert.Equal(t, billing.ShopVacant, f.repo.shops[f.shops[0]])

	t.Run("Frozen", func(t *testing.T) {
		_, err := f.svc.RecordPayment(ctx, billing.PaymentParams{LeaseID: lease.ID, Amount: 100, PaymentDate: f.now})
		assert.ErrorIs(t, err, billing.ErrLeaseTerminated)

		assert.ErrorIs(t, f.svc.RegenerateInvoices(ctx, lease.ID), billing.ErrLeaseTerminated)

		_, err = f.svc.AdjustRent(ctx, lease.ID, 20000, date(2024, time.May, 1))
		assert.ErrorIs(t, err, billing.ErrLeaseTerminated)

		_, err = f.svc.ComputeSettlement(ctx, lease.ID, billing.SettlementRequest{})
		assert.ErrorIs(t, err, billing.ErrLeaseTerminated)

		_, err = f.svc.TerminateLease(ctx, lease.ID, billing.SettlementRequest{})
		assert.ErrorIs(t, err, billing.ErrLeaseTerminated)
	})

	t.Run("ShopCanBeLetAgain", func(t *testing.T) {
		f.lease(t, 0, date(2024, time.May, 1), date(2025, time.April, 30), 0)
	})
}

func TestService_TerminateLease_Transfers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	source := f.lease(t, 1, date(2024, time.January, 1), date(2024, time.December, 31), 0)
	f.pay(t, source.ID, 53000)

	target := f.lease(t, 0, date(2024, time.April, 1), date(2025, time.March, 31), 10000)
	f.pay(t, target.ID, 5000)

	commits := f.repo.commits

	preview, err := f.svc.ComputeSettlement(ctx, target.ID, billing.SettlementRequest{
		UseSecurityDeposit: true,
		TransferAmount:     new(int64(5000)),
	})
	require.NoError(t, err)
	assert.Equal(t, commits, f.repo.commits, "preview must not write")
	assert.Equal(t, int64(3000), preview.Transferred)

	settlement, err := f.svc.TerminateLease(ctx, target.ID, billing.SettlementRequest{
		UseSecurityDeposit: true,
		TransferAmount:     new(int64(5000)),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []uuid.UUID{target.ID, source.ID}, f.repo.locks[len(f.repo.locks)-1])

	require.Len(t, settlement.Transfers, 1)
	assert.NotEqual(t, uuid.Nil, settlement.Transfers[0].ID)
	assert.Equal(t, source.ID, settlement.Transfers[0].SourceLeaseID)
	assert.Equal(t, int64(3000), settlement.Transferred)
	assert.Equal(t, int64(12000), settlement.CurrentDue)
	assert.Equal(t, int64(10000), settlement.SecurityDepositUsed)
	assert.Equal(t, int64(2000), settlement.FinalSettledAmount)

	assert.Equal(t, []int64{8000, 0}, paidAmounts(f.invoices(t, target.ID)))
	assert.Equal(t, []int64{10000, 10000, 10000, 10000, 10000}, paidAmounts(f.invoices(t, source.ID)))

	srcBal, err := f.svc.LeaseBalance(ctx, source.ID)
	require.NoError(t, err)
	assert.Zero(t, srcBal.Due)

	ledger, err := f.svc.BuildTenantLedger(ctx, f.tenant)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), ledger.ClosingBalance)

	balances, err := f.svc.TenantBalances(ctx, f.tenant)
	require.NoError(t, err)
	assert.Equal(t, ledger.ClosingBalance, balances.Due)
	assert.Len(t, balances.Leases, 2)
}

func TestService_TerminateLease_SiblingBilledSinceRefresh(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name               string
		sourcePaid         int64
		wantTransferred    int64
		wantSourceInvoices int
		wantSourceDue      int64
	}{
		// 10000 ahead in May, 10000 behind once June and July are billed.
		{name: "CreditConsumedByNewMonths", sourcePaid: 60000, wantTransferred: 0, wantSourceInvoices: 5, wantSourceDue: 10000},
		// A drained source is rebuilt, so June and July are billed with the transfer.
		{name: "CreditLeftAfterNewMonths", sourcePaid: 90000, wantTransferred: 10000, wantSourceInvoices: 7, wantSourceDue: -10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			source := f.lease(t, 1, date(2024, time.January, 1), date(2025, time.December, 31), 0)
			f.pay(t, source.ID, tt.sourcePaid)

			target := f.lease(t, 0, date(2024, time.May, 1), date(2025, time.April, 30), 0)

			// No refresh runs between May and July.
			f.now = date(2024, time.July, 10)

			settlement, err := f.svc.TerminateLease(ctx, target.ID, billing.SettlementRequest{
				TransferAmount: new(int64(10000)),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTransferred, settlement.Transferred)
			assert.Len(t, f.invoices(t, source.ID), tt.wantSourceInvoices)

			_, err = f.svc.RefreshLeases(ctx)
			require.NoError(t, err)
			assert.Len(t, f.invoices(t, source.ID), 7)

			bal, err := f.svc.LeaseBalance(ctx, source.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSourceDue, bal.Due)
		})
	}
}

func TestService_TerminateLease_OnlyDrainsLockedLeases(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	target := f.lease(t, 0, date(2024, time.April, 1), date(2025, time.March, 31), 0)

	// A sibling with credit lands after the lock set was chosen.
	late := uuid.New()
	f.repo.beforeBegin = func(s *memState) {
		s.leases[late] = billing.Lease{
			ID:          late,
			TenantID:    f.tenant,
			ShopID:      f.shops[1],
			MonthlyRent: 10000,
			StartDate:   date(2024, time.May, 1),
			EndDate:     date(2025, time.April, 30),
			Status:      billing.StatusActive,
		}
		s.payments = append(s.payments, billing.Payment{
			ID:          uuid.New(),
			TenantID:    f.tenant,
			LeaseID:     late,
			Amount:      50000,
			PaymentDate: f.now,
		})
	}

	settlement, err := f.svc.TerminateLease(ctx, target.ID, billing.SettlementRequest{
		TransferAmount: new(int64(5000)),
	})
	require.NoError(t, err)

	locked := f.repo.locks[len(f.repo.locks)-1]
	assert.Equal(t, []uuid.UUID{target.ID}, locked)

	for _, tr := range settlement.Transfers {
		assert.Contains(t, locked, tr.SourceLeaseID)
	}

	assert.Zero(t, settlement.Transferred)
	assert.Equal(t, int64(20000), settlement.CurrentDue)
}

func TestService_TerminateLease_EarlyEffectiveDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)

	settlement, err := f.svc.TerminateLease(ctx, lease.ID, billing.SettlementRequest{
		EffectiveDate: new(date(2024, time.March, 31)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), settlement.Invoiced)

	assert.Len(t, f.invoices(t, lease.ID), 3)

	got, err := f.svc.GetLease(ctx, lease.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 31), got.EndDate)

	_, err = f.svc.ComputeSettlement(ctx, uuid.New(), billing.SettlementRequest{})
	assert.ErrorIs(t, err, billing.ErrNotFound)
}

func TestService_BuildLeaseLedger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.December, 31), 0)
	f.pay(t, lease.ID, 25000)

	ledger, err := f.svc.BuildLeaseLedger(ctx, lease.ID)
	require.NoError(t, err)

	bal, err := f.svc.LeaseBalance(ctx, lease.ID)
	require.NoError(t, err)

	assert.Len(t, ledger.Rows, 6)
	assert.Equal(t, bal.Due, ledger.ClosingBalance)
	assert.Equal(t, int64(25000), ledger.ClosingBalance)
}

func TestService_RefreshLeases(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.now = date(2024, time.March, 10)

	lease := f.lease(t, 0, date(2024, time.January, 1), date(2024, time.May, 31), 0)
	assert.Equal(t, billing.StatusActive, lease.Status)
	assert.Len(t, f.invoices(t, lease.ID), 3)

	f.now = date(2024, time.May, 10)

	res, err := f.svc.RefreshLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, billing.RefreshResult{Checked: 1, StatusChanged: 1, Regenerated: 1}, res)

	assert.Len(t, f.invoices(t, lease.ID), 5)
	assert.Equal(t, billing.StatusExpiringSoon, f.repo.leases[lease.ID].Status)

	res, err = f.svc.RefreshLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, billing.RefreshResult{Checked: 1}, res)

	expired := billing.StatusExpired
	f.now = date(2024, time.July, 1)

	leases, err := f.svc.ListLeases(ctx, billing.LeaseFilter{Status: &expired})
	require.NoError(t, err)
	assert.Len(t, leases, 1)
}
