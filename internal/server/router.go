package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"palantir/internal/commons"
	customerctrl "palantir/internal/customer/controller"
	"palantir/internal/infrastructure/metrics"
	notificationctrl "palantir/internal/notification/controller"
	orderctrl "palantir/internal/order/controller"
	paymentctrl "palantir/internal/payment/controller"
	productctrl "palantir/internal/product/controller"
)

const requestTimeout = 15 * time.Second

// Pinger reports whether the database is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Controllers struct {
	Product      *productctrl.Controller
	Customer     *customerctrl.Controller
	Order        *orderctrl.Controller
	Payment      *paymentctrl.Controller
	Notification *notificationctrl.Controller
}

func NewRouter(ctrls Controllers, db Pinger, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(m.Middleware)
	r.Use(middleware.Timeout(requestTimeout))

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/health", health(db, logger))

	r.Post("/categories", ctrls.Product.CreateCategory)
	r.Route("/products", func(r chi.Router) {
		r.Post("/", ctrls.Product.CreateProduct)
		r.Post("/search", ctrls.Product.Search)
		r.Get("/{productId}", ctrls.Product.FindByID)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", ctrls.Customer.Create)
		r.Get("/cpf/{cpf}", ctrls.Customer.FindByCPF)
		r.Get("/{customerId}", ctrls.Customer.FindByID)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", ctrls.Order.Create)
		r.Get("/", ctrls.Order.List)
		r.Route("/{orderId}", func(r chi.Router) {
			r.Get("/", ctrls.Order.FindByID)
			r.Delete("/", ctrls.Order.Delete)
			r.Patch("/status", ctrls.Order.UpdateStatus)
			r.Patch("/customer", ctrls.Order.LinkCustomer)
			r.Delete("/items/{itemId}", ctrls.Order.RemoveItem)
			r.Get("/payment", ctrls.Payment.FindByOrder)
		})
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/", ctrls.Payment.Initiate)
		r.Post("/webhook", ctrls.Payment.Webhook)
		r.Get("/{paymentId}", ctrls.Payment.FindByID)
		r.Patch("/{paymentId}/approve", ctrls.Payment.Approve)
		r.Patch("/{paymentId}/cancel", ctrls.Payment.Cancel)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", ctrls.Notification.Send)
		r.Get("/{notificationId}", ctrls.Notification.FindByID)
	})

	return r
}

func health(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			commons.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
			return
		}
		commons.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
