package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	designrequestctrl "signflow/internal/designrequest/controller"
	orderctrl "signflow/internal/order/controller"
)

// SessionState is torn down when the client session ends.
type SessionState interface {
	Teardown()
}

func NewRouter(
	orderCtrl *orderctrl.OrderController,
	designRequestCtrl *designrequestctrl.DesignRequestController,
	session SessionState,
	metricsHandler http.Handler,
	metricsMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if metricsMiddleware != nil {
		r.Use(metricsMiddleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.List)
			r.Get("/{orderId}", orderCtrl.Detail)
			r.Get("/{orderId}/progress", orderCtrl.Progress)
			r.Post("/{orderId}/actions", orderCtrl.ExecuteAction)
			r.Post("/{orderId}/contract/signed-file", orderCtrl.UploadSignedContract)
		})

		r.Route("/design-requests", func(r chi.Router) {
			r.Get("/", designRequestCtrl.List)
			r.Get("/{requestId}", designRequestCtrl.Detail)
			r.Post("/{requestId}/actions", designRequestCtrl.ExecuteAction)
		})

		r.Delete("/session", func(w http.ResponseWriter, _ *http.Request) {
			session.Teardown()
			logger.Info("session state cleared")
			w.WriteHeader(http.StatusNoContent)
		})
	})

	return r
}
