package http

import (
	_ "github.com/freshstack-dev/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/freshstack-dev/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(itemUC usecase.ItemUC, reportUC usecase.ReportUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		itemHandler := NewItemHandler(itemUC, r.logger)
		registerGroceryRoutes(v1, itemHandler)

		reportHandler := NewReportHandler(reportUC, r.logger)
		registerReportRoutes(v1, reportHandler)
	})
}

func registerGroceryRoutes(router chi.Router, h *ItemHandler) {
	router.Route("/groceries", func(gr chi.Router) {
		gr.Get("/", h.getAll)
		gr.Post("/", h.create)

		gr.Route("/{id}", func(item chi.Router) {
			item.Get("/", h.getByID)
			item.Head("/", h.exists)
			item.Put("/", h.update)
			item.Delete("/", h.delete)
			item.Patch("/stock", h.adjustStock)
		})
	})
}

func registerReportRoutes(router chi.Router, h *ReportHandler) {
	router.Route("/reports", func(rep chi.Router) {
		rep.Get("/export", h.export)
	})
}
