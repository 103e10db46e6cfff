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
	Create(ctx context.Context, storeID string, req dto.CreateOrderRequest) (*domain.Order, error)
}

type FindUseCase interface {
	FindByID(ctx context.Context, storeID, orderID string) (*domain.Order, error)
	List(ctx context.Context, storeID, status string) ([]*domain.Order, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, storeID, orderID, status string) (*domain.Order, error)
}

type LinkCustomerUseCase interface {
	Link(ctx context.Context, storeID, orderID, customerID string) (*domain.Order, error)
}

type RemoveItemUseCase interface {
	Remove(ctx context.Context, storeID, orderID, itemID string) (*domain.Order, bool, error)
}

type DeleteUseCase interface {
	Delete(ctx context.Context, storeID, orderID string) error
}

type Controller struct {
	create       CreateUseCase
	find         FindUseCase
	updateStatus UpdateStatusUseCase
	link         LinkCustomerUseCase
	removeItem   RemoveItemUseCase
	deleteOrder  DeleteUseCase
	logger       *zap.Logger
}

func NewController(
	create CreateUseCase,
	find FindUseCase,
	updateStatus UpdateStatusUseCase,
	link LinkCustomerUseCase,
	removeItem RemoveItemUseCase,
	deleteOrder DeleteUseCase,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		create:       create,
		find:         find,
		updateStatus: updateStatus,
		link:         link,
		removeItem:   removeItem,
		deleteOrder:  deleteOrder,
		logger:       logger,
	}
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.CreateOrderRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	order, err := c.create.Create(r.Context(), storeID, req)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewOrderDTO(order), logger)
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	orders, err := c.find.List(r.Context(), storeID, r.URL.Query().Get("status"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	resp := dto.ListOrdersResponse{Orders: make([]dto.OrderDTO, 0, len(orders))}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, dto.NewOrderDTO(order))
	}
	commons.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) FindByID(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	order, err := c.find.FindByID(r.Context(), storeID, chi.URLParam(r, "orderId"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDTO(order), logger)
}

func (c *Controller) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	order, err := c.updateStatus.UpdateStatus(r.Context(), storeID, chi.URLParam(r, "orderId"), req.Status)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDTO(order), logger)
}

func (c *Controller) LinkCustomer(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.LinkCustomerRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	order, err := c.link.Link(r.Context(), storeID, chi.URLParam(r, "orderId"), req.CustomerID)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDTO(order), logger)
}

// RemoveItem answers 204 when the removed item was the last one and the
// order was deleted with it.
func (c *Controller) RemoveItem(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	order, deleted, err := c.removeItem.Remove(r.Context(), storeID, chi.URLParam(r, "orderId"), chi.URLParam(r, "itemId"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}
	if deleted {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDTO(order), logger)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	if err := c.deleteOrder.Delete(r.Context(), storeID, chi.URLParam(r, "orderId")); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
