package billing

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

func newTestRouter(t *testing.T) (http.Handler, *MockService) {
	t.Helper()

	svc := NewMockService(gomock.NewController(t))
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/tenants", h.TenantRoutes)
	r.Route("/leases", h.LeaseRoutes)
	r.Route("/payments", h.PaymentRoutes)

	return r, svc
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func TestCreateLease(t *testing.T) {
	tenantID := uuid.New()
	shopID := uuid.New()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	validBody := fmt.Sprintf(`{
		"tenant_id": %q,
		"shop_id": %q,
		"monthly_rent": 1000000,
		"security_deposit": 2000000,
		"start_date": "2024-01-01T00:00:00Z",
		"end_date": "2024-12-31T00:00:00Z"
	}`, tenantID, shopID)

	t.Run("created", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().
			CreateLease(gomock.Any(), billing.CreateLeaseParams{
				TenantID:        tenantID,
				ShopID:          shopID,
				MonthlyRent:     1000000,
				SecurityDeposit: 2000000,
				StartDate:       start,
				EndDate:         end,
			}).
			Return(&billing.Lease{
				ID:          uuid.New(),
				TenantID:    tenantID,
				ShopID:      shopID,
				MonthlyRent: 1000000,
				StartDate:   start,
				EndDate:     end,
				Status:      billing.StatusActive,
			}, nil)

		rec := do(t, router, http.MethodPost, "/leases/", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp leaseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, tenantID, resp.TenantID)
		assert.Equal(t, billing.StatusActive, resp.Status)
		assert.Equal(t, int64(1000000), resp.MonthlyRent)
	})

	t.Run("missing fields", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodPost, "/leases/", `{"monthly_rent": 0}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, "required", body.Details["tenant_id"])
		assert.Equal(t, "gt", body.Details["monthly_rent"])
		assert.Equal(t, "required", body.Details["start_date"])
	})

	t.Run("open ended", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().
			CreateLease(gomock.Any(), billing.CreateLeaseParams{
				TenantID:    tenantID,
				ShopID:      shopID,
				MonthlyRent: 1000000,
				StartDate:   start,
			}).
			Return(&billing.Lease{ID: uuid.New(), TenantID: tenantID, StartDate: start, Status: billing.StatusActive}, nil)

		body := fmt.Sprintf(`{"tenant_id": %q, "shop_id": %q, "monthly_rent": 1000000, "start_date": "2024-01-01T00:00:00Z"}`,
			tenantID, shopID)

		rec := do(t, router, http.MethodPost, "/leases/", body)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp leaseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Nil(t, resp.EndDate)
	})

	t.Run("shop occupied", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(nil, billing.ErrShopOccupied)

		rec := do(t, router, http.MethodPost, "/leases/", validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SHOP_OCCUPIED", decodeError(t, rec).Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/leases/", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "text/plain")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestGetLease(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodGet, "/leases/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := newTestRouter(t)
		id := uuid.New()

		svc.EXPECT().GetLease(gomock.Any(), id).Return(nil, fmt.Errorf("get lease: %w", billing.ErrNotFound))

		rec := do(t, router, http.MethodGet, "/leases/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		router, svc := newTestRouter(t)
		id := uuid.New()

		svc.EXPECT().GetLease(gomock.Any(), id).Return(nil, errors.New("connection refused"))

		rec := do(t, router, http.MethodGet, "/leases/"+id.String(), "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decodeError(t, rec).Error)
	})
}

func TestListLeases(t *testing.T) {
	router, svc := newTestRouter(t)
	tenantID := uuid.New()

	svc.EXPECT().
		ListLeases(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter billing.LeaseFilter) ([]*billing.Lease, error) {
			require.NotNil(t, filter.TenantID)
			assert.Equal(t, tenantID, *filter.TenantID)
			require.NotNil(t, filter.Status)
			assert.Equal(t, billing.StatusExpiringSoon, *filter.Status)
			assert.Nil(t, filter.ShopID)

			return []*billing.Lease{{ID: uuid.New(), TenantID: tenantID, Status: billing.StatusExpiringSoon}}, nil
		})

	rec := do(t, router, http.MethodGet, "/leases/?tenant_id="+tenantID.String()+"&status=expiring_soon", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []leaseResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestListLeases_UnknownStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/leases/?status=overdue", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", decodeError(t, rec).Code)
}

func TestRentForMonth(t *testing.T) {
	id := uuid.New()

	t.Run("resolved", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().ResolveRentForMonth(gomock.Any(), id, 2024, time.March).Return(int64(1200000), nil)

		rec := do(t, router, http.MethodGet, "/leases/"+id.String()+"/rent?month=2024-03", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp rentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(1200000), resp.Rent)
		assert.Equal(t, billing.Month{Year: 2024, Month: time.March}, resp.Month)
	})

	t.Run("bad month", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodGet, "/leases/"+id.String()+"/rent?month=March", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTerminate(t *testing.T) {
	id := uuid.New()
	sourceID := uuid.New()

	t.Run("settled", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().
			TerminateLease(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req billing.SettlementRequest) (*billing.Settlement, error) {
				assert.True(t, req.UseSecurityDeposit)
				require.NotNil(t, req.TransferAmount)
				assert.Equal(t, int64(500000), *req.TransferAmount)

				return &billing.Settlement{
					LeaseID:             id,
					DueBeforeTransfers:  700000,
					Transfers:           []*billing.Transfer{{SourceLeaseID: sourceID, TargetLeaseID: id, Amount: 500000}},
					Transferred:         500000,
					CurrentDue:          200000,
					SecurityDeposit:     1000000,
					SecurityDepositUsed: 200000,
					DepositRefund:       800000,
				}, nil
			})

		rec := do(t, router, http.MethodPost, "/leases/"+id.String()+"/terminate",
			`{"use_security_deposit": true, "transfer_amount": 500000}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp settlementResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(200000), resp.SecurityDepositUsed)
		assert.Equal(t, int64(0), resp.FinalSettledAmount)
		require.Len(t, resp.Transfers, 1)
		assert.Equal(t, sourceID, resp.Transfers[0].SourceLeaseID)
	})

	t.Run("rejected transfer amount", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().
			TerminateLease(gomock.Any(), id, gomock.Any()).
			Return(nil, &billing.ValidationError{Field: "transfer_amount", Message: "must be positive"})

		rec := do(t, router, http.MethodPost, "/leases/"+id.String()+"/terminate", `{"transfer_amount": -100}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, "must be positive", body.Details["transfer_amount"])
	})

	t.Run("already terminated", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().TerminateLease(gomock.Any(), id, gomock.Any()).Return(nil, billing.ErrLeaseTerminated)

		rec := do(t, router, http.MethodPost, "/leases/"+id.String()+"/terminate", `{}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "LEASE_TERMINATED", decodeError(t, rec).Code)
	})
}

func TestRecordPayment(t *testing.T) {
	router, svc := newTestRouter(t)
	leaseID := uuid.New()

	svc.EXPECT().
		RecordPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params billing.PaymentParams) (*billing.Payment, error) {
			assert.Equal(t, leaseID, params.LeaseID)
			assert.Equal(t, []billing.Month{
				{Year: 2024, Month: time.February},
				{Year: 2024, Month: time.March},
			}, params.RentMonths)

			return &billing.Payment{
				ID:          uuid.New(),
				LeaseID:     params.LeaseID,
				Amount:      params.Amount,
				PaymentDate: params.PaymentDate,
				RentMonths:  params.RentMonths,
			}, nil
		})

	rec := do(t, router, http.MethodPost, "/payments/", fmt.Sprintf(`{
		"lease_id": %q,
		"amount": 2000000,
		"payment_date": "2024-03-05T00:00:00Z",
		"rent_months": ["2024-02", "2024-03"]
	}`, leaseID))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp paymentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(2000000), resp.Amount)
	assert.Len(t, resp.RentMonths, 2)
}

func TestDeletePayment(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().SoftDeletePayment(gomock.Any(), id, "bounced cheque").Return(nil)

		rec := do(t, router, http.MethodDelete, "/payments/"+id.String(), `{"reason": "bounced cheque"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("reason required", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodDelete, "/payments/"+id.String(), `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decodeError(t, rec).Details["reason"])
	})

	t.Run("terminated lease", func(t *testing.T) {
		router, svc := newTestRouter(t)

		svc.EXPECT().SoftDeletePayment(gomock.Any(), id, "typo").Return(billing.ErrLeaseTerminated)

		rec := do(t, router, http.MethodDelete, "/payments/"+id.String(), `{"reason": "typo"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestListPayments_IncludeDeleted(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().
		ListPayments(gomock.Any(), billing.PaymentFilter{IncludeDeleted: true}).
		Return([]*billing.Payment{{ID: uuid.New(), IsDeleted: true, DeletedReason: "duplicate"}}, nil)

	rec := do(t, router, http.MethodGet, "/payments/?include_deleted=true", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []paymentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "duplicate", resp[0].DeletedReason)
}

func TestTenantLedger(t *testing.T) {
	router, svc := newTestRouter(t)
	tenantID := uuid.New()
	leaseID := uuid.New()
	feb := billing.Month{Year: 2024, Month: time.February}

	svc.EXPECT().BuildTenantLedger(gomock.Any(), tenantID).Return(&billing.Ledger{
		TenantID: tenantID,
		Rows: []billing.LedgerRow{
			{Date: feb.FirstDay(), Kind: billing.EntryRent, LeaseID: leaseID, Period: &feb, Debit: 1000000, Balance: 1000000},
			{Date: feb.FirstDay().AddDate(0, 0, 4), Kind: billing.EntryPayment, LeaseID: leaseID, Credit: 400000, Balance: 600000},
		},
		ClosingBalance: 600000,
		CurrentDue:     600000,
	}, nil)

	rec := do(t, router, http.MethodGet, "/tenants/"+tenantID.String()+"/ledger", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ledgerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, billing.EntryRent, resp.Rows[0].Kind)
	assert.Equal(t, &feb, resp.Rows[0].Period)
	assert.Equal(t, int64(600000), resp.ClosingBalance)
}

func TestCreateTenant_NameRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/tenants/", `{"opening_due_balance": 500}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", decodeError(t, rec).Details["name"])
}
