package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportUC отдаёт заранее заданный файл либо ошибку.
type fakeReportUC struct {
	file *usecase.ExportFile
	err  error
}

func (f *fakeReportUC) GenerateExport(context.Context) (*usecase.ExportFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.file, nil
}

func newReportRouter(uc usecase.ReportUC) *chi.Mux {
	router := chi.NewRouter()
	registerReportRoutes(router, NewReportHandler(uc, nopLogger{}))
	return router
}

func TestReportHandler_Export(t *testing.T) {
	content := []byte("xlsx-bytes")
	router := newReportRouter(&fakeReportUC{
		file: usecase.NewExportFile("grocery-report-20250601-120000.xlsx", content, time.Now().UTC()),
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="grocery-report-20250601-120000.xlsx"`,
		rec.Header().Get("Content-Disposition"),
	)
	assert.Equal(t, "10", rec.Header().Get("Content-Length"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestReportHandler_Export_Failure(t *testing.T) {
	router := newReportRouter(&fakeReportUC{err: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/reports/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
