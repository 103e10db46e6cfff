package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"palantir/internal/commons"
	"palantir/internal/domain"
	"palantir/internal/dto"
)

type InitiateUseCase interface {
	Initiate(ctx context.Context, storeID string, req dto.InitiatePaymentRequest) (*domain.Payment, error)
}

type ResolveUseCase interface {
	Approve(ctx context.Context, storeID, paymentID string) (*domain.Payment, error)
	Cancel(ctx context.Context, storeID, paymentID string) (*domain.Payment, error)
	ConfirmByExternalID(ctx context.Context, externalID, status string) (*domain.Payment, error)
}

type FindUseCase interface {
	FindByID(ctx context.Context, storeID, paymentID string) (*domain.Payment, error)
	FindByOrder(ctx context.Context, storeID, orderID string) (*domain.Payment, error)
}

type Controller struct {
	initiate InitiateUseCase
	resolve  ResolveUseCase
	find     FindUseCase
	logger   *zap.Logger
}

func NewController(initiate InitiateUseCase, resolve ResolveUseCase, find FindUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		initiate: initiate,
		resolve:  resolve,
		find:     find,
		logger:   logger,
	}
}

func (c *Controller) Initiate(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.InitiatePaymentRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	payment, err := c.initiate.Initiate(r.Context(), storeID, req)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewPaymentDTO(payment), logger)
}

func (c *Controller) FindByID(w http.ResponseWriter, r *http.Request) {
	c.storeScoped(w, r, func(ctx context.Context, storeID string) (*domain.Payment, error) {
		return c.find.FindByID(ctx, storeID, chi.URLParam(r, "paymentId"))
	})
}

func (c *Controller) FindByOrder(w http.ResponseWriter, r *http.Request) {
	c.storeScoped(w, r, func(ctx context.Context, storeID string) (*domain.Payment, error) {
		return c.find.FindByOrder(ctx, storeID, chi.URLParam(r, "orderId"))
	})
}

func (c *Controller) Approve(w http.ResponseWriter, r *http.Request) {
	c.storeScoped(w, r, func(ctx context.Context, storeID string) (*domain.Payment, error) {
		return c.resolve.Approve(ctx, storeID, chi.URLParam(r, "paymentId"))
	})
}

func (c *Controller) Cancel(w http.ResponseWriter, r *http.Request) {
	c.storeScoped(w, r, func(ctx context.Context, storeID string) (*domain.Payment, error) {
		return c.resolve.Cancel(ctx, storeID, chi.URLParam(r, "paymentId"))
	})
}

// Webhook is called by the provider and carries no store header.
func (c *Controller) Webhook(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	var req dto.PaymentWebhookRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	logger.Info("payment webhook received", zap.String("externalId", req.ExternalID), zap.String("status", req.Status))
	payment, err := c.resolve.ConfirmByExternalID(r.Context(), req.ExternalID, req.Status)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewPaymentDTO(payment), logger)
}

func (c *Controller) storeScoped(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, storeID string) (*domain.Payment, error)) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	payment, err := fn(r.Context(), storeID)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewPaymentDTO(payment), logger)
}
