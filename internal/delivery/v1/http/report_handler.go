package http

import (
	"net/http"
	"strconv"

	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/freshstack-dev/go-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

// export
//
//	@Summary		Выгрузка сводного отчёта
//	@Description	Формирует xlsx-книгу с пятью сводными таблицами по каталогу
//	@Tags			reports
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}		binary
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reports/export [get]
func (h *ReportHandler) export(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportUsecase.GenerateExport(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Content); err != nil {
		h.logger.Warnf("Failed to write report body: %v", err)
	}
}
