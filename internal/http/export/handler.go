package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/export"
	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
)

type exporter interface {
	Export(ctx context.Context, tenantID uuid.UUID, outputDir string) ([]export.Item, error)
	GenerateSummary(items []export.Item) string
}

type Handler struct {
	svc exporter
}

func NewHandler(svc exporter) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.metadata)
	r.Post("/download", h.download)
}

type exportRequest struct {
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
}

type statementResponse struct {
	LeaseID        *uuid.UUID `json:"lease_id,omitempty"`
	File           string     `json:"file"`
	Entries        int        `json:"entries"`
	ClosingBalance int64      `json:"closing_balance"`
}

type exportMetadataResponse struct {
	Statements []statementResponse `json:"statements"`
	Summary    string              `json:"summary"`
}

func toStatementResponse(item export.Item) statementResponse {
	resp := statementResponse{
		File:           filepath.Base(item.FilePath),
		Entries:        len(item.Ledger.Rows),
		ClosingBalance: item.Ledger.ClosingBalance,
	}

	if item.Lease != nil {
		resp.LeaseID = &item.Lease.ID
	}

	return resp
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	tmpDir, err := os.MkdirTemp("", "rentroll-export-*")
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	defer os.RemoveAll(tmpDir)

	items, err := h.svc.Export(r.Context(), req.TenantID, tmpDir)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	statements := make([]statementResponse, 0, len(items))
	for _, item := range items {
		statements = append(statements, toStatementResponse(item))
	}

	httputil.WriteJSON(w, http.StatusOK, exportMetadataResponse{
		Statements: statements,
		Summary:    h.svc.GenerateSummary(items),
	})
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	tmpDir, err := os.MkdirTemp("", "rentroll-export-*")
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	defer os.RemoveAll(tmpDir)

	items, err := h.svc.Export(r.Context(), req.TenantID, tmpDir)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	summary := h.svc.GenerateSummary(items)
	if err := os.WriteFile(filepath.Join(tmpDir, "summary.txt"), []byte(summary), 0o644); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"statements_%s_%s.zip\"", req.TenantID.String()[:8], time.Now().Format("20060102")))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	err = filepath.Walk(tmpDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		relPath, _ := filepath.Rel(tmpDir, path)

		zf, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(zf, f)

		return err
	})
	if err != nil {
		slog.Error("failed to create zip", "error", err)
	}
}
