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

type CreateUseCase interface {
	Create(ctx context.Context, name, email string, cpf, phone *string) (*domain.Customer, error)
}

type FindUseCase interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
}

type Controller struct {
	create CreateUseCase
	find   FindUseCase
	logger *zap.Logger
}

func NewController(create CreateUseCase, find FindUseCase, logger *zap.Logger) *Controller {
	return &Controller{create: create, find: find, logger: logger}
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	var req dto.CreateCustomerRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	customer, err := c.create.Create(r.Context(), req.Name, req.Email, req.CPF, req.Phone)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewCustomerDTO(customer), logger)
}

func (c *Controller) FindByID(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	customer, err := c.find.FindByID(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewCustomerDTO(customer), logger)
}

func (c *Controller) FindByCPF(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	customer, err := c.find.FindByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewCustomerDTO(customer), logger)
}
