package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

// Item is one exported statement and the CSV file it was written to.
// Lease is nil for the tenant-wide statement.
type Item struct {
	Lease    *billing.Lease
	Ledger   *billing.Ledger
	FilePath string
}

type ledgerSource interface {
	GetTenant(ctx context.Context, id uuid.UUID) (*billing.Tenant, error)
	ListLeases(ctx context.Context, filter billing.LeaseFilter) ([]*billing.Lease, error)
	BuildLeaseLedger(ctx context.Context, leaseID uuid.UUID) (*billing.Ledger, error)
	BuildTenantLedger(ctx context.Context, tenantID uuid.UUID) (*billing.Ledger, error)
}

// Service writes tenant statements to disk.
type Service struct {
	ledgers ledgerSource
}

func NewService(ledgers ledgerSource) *Service {
	return &Service{ledgers: ledgers}
}

var header = []string{"date", "type", "period", "description", "debit", "credit", "balance"}

// Export writes a CSV statement for every lease of the tenant, plus one
// combined statement, into outputDir. The combined statement comes first.
func (s *Service) Export(ctx context.Context, tenantID uuid.UUID, outputDir string) ([]Item, error) {
	tenant, err := s.ledgers.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("getting tenant: %w", err)
	}

	leases, err := s.ledgers.ListLeases(ctx, billing.LeaseFilter{TenantID: &tenantID})
	if err != nil {
		return nil, fmt.Errorf("listing leases: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	items := make([]Item, 0, len(leases)+1)

	combined, err := s.ledgers.BuildTenantLedger(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("building tenant ledger: %w", err)
	}

	path := filepath.Join(outputDir, "statement_"+sanitize(tenant.Name)+".csv")
	if err := writeLedger(path, combined); err != nil {
		return nil, err
	}

	items = append(items, Item{Ledger: combined, FilePath: path})

	for _, l := range leases {
		ledger, err := s.ledgers.BuildLeaseLedger(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("building ledger for lease %s: %w", l.ID, err)
		}

		path := filepath.Join(outputDir, leaseFilename(l))
		if err := writeLedger(path, ledger); err != nil {
			return nil, err
		}

		items = append(items, Item{Lease: l, Ledger: ledger, FilePath: path})
	}

	return items, nil
}

// Format: lease_YYYY-MM_<first 8 chars of id>.csv
func leaseFilename(l *billing.Lease) string {
	return fmt.Sprintf("lease_%s_%s.csv", l.StartDate.Format("2006-01"), l.ID.String()[:8])
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, s)
}

func decimalString(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func writeLedger(path string, ledger *billing.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range ledger.Rows {
		period := ""
		if row.Period != nil {
			period = row.Period.String()
		}

		record := []string{
			row.Date.Format("2006-01-02"),
			string(row.Kind),
			period,
			row.Description,
			decimalString(row.Debit),
			decimalString(row.Credit),
			decimalString(row.Balance),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// GenerateSummary renders one line per exported statement.
func (s *Service) GenerateSummary(items []Item) string {
	var sb strings.Builder

	for _, item := range items {
		label := "All leases"
		if item.Lease != nil {
			label = "Lease from " + item.Lease.StartDate.Format("2006-01-02")
		}

		due := "due"
		if item.Ledger.ClosingBalance < 0 {
			due = "credit"
		}

		fmt.Fprintf(&sb, "* %s | %d entries | %s %s | %s\n",
			label,
			len(item.Ledger.Rows),
			due,
			money.Format(abs(item.Ledger.ClosingBalance)),
			filepath.Base(item.FilePath),
		)
	}

	return sb.String()
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
