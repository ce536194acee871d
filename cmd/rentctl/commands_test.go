package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

func TestSettlementRequest(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    billing.SettlementRequest
		wantErr bool
	}{
		{
			name: "no flags",
			args: []string{},
			want: billing.SettlementRequest{},
		},
		{
			name: "all flags",
			args: []string{"--use-deposit", "--transfer", "1,500.00", "--effective", "2024-05-15", "--note", "moving to shop 4"},
			want: billing.SettlementRequest{
				UseSecurityDeposit: true,
				TransferAmount:     new(int64(150000)),
				EffectiveDate:      new(time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)),
				Note:               "moving to shop 4",
			},
		},
		{
			name:    "unparseable transfer",
			args:    []string{"--transfer", "abc"},
			wantErr: true,
		},
		{
			name:    "negative transfer",
			args:    []string{"--transfer", "-100"},
			wantErr: true,
		},
		{
			name:    "zero transfer",
			args:    []string{"--transfer", "0"},
			wantErr: true,
		},
		{
			name:    "bad date",
			args:    []string{"--effective", "15/05/2024"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := SettlementCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := settlementRequest(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintSettlement(t *testing.T) {
	var buf bytes.Buffer

	source := uuid.MustParse("00000000-0000-0000-0000-000000000003")

	printSettlement(&buf, &billing.Settlement{
		DueBeforeTransfers: 700000,
		Transfers:          []*billing.Transfer{{SourceLeaseID: source, Amount: 300000}},
		Transferred:        300000,
		CurrentDue:         400000,
		FinalSettledAmount: 400000,
	})

	out := buf.String()
	assert.Contains(t, out, "Current due")
	assert.Contains(t, out, "4,000.00")
	assert.Contains(t, out, "transfer 3,000.00 from lease "+source.String())
}

func TestPrintLedger(t *testing.T) {
	var buf bytes.Buffer

	printLedger(&buf, &billing.Ledger{
		Rows: []billing.LedgerRow{
			{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Description: "Rent January 2024", Debit: 1000000, Balance: 1000000},
			{Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Description: "Payment", Credit: 1200000, Balance: -200000},
		},
		ClosingBalance: -200000,
	})

	out := buf.String()
	assert.Contains(t, out, "2024-01-05")
	assert.Contains(t, out, "12,000.00")
	assert.Contains(t, out, "Closing balance: -2,000.00")
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		cmd  func() error
	}{
		{"regenerate needs a lease", func() error { return RegenerateCmd().Args(nil, nil) }},
		{"share needs shop and amount", func() error { return ShareCmd().Args(nil, []string{"x"}) }},
		{"refresh takes nothing", func() error {
			cmd := RefreshCmd()
			return cmd.Args(cmd, []string{"x"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cmd())
		})
	}
}
