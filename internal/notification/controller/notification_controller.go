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

type SendUseCase interface {
	Send(ctx context.Context, channel domain.Channel, destination, message string) (*domain.Notification, error)
}

type FindUseCase interface {
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
}

type Controller struct {
	send   SendUseCase
	find   FindUseCase
	logger *zap.Logger
}

func NewController(send SendUseCase, find FindUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		send:   send,
		find:   find,
		logger: logger,
	}
}

func (c *Controller) Send(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	var req dto.SendNotificationRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	notification, err := c.send.Send(r.Context(), domain.Channel(req.Channel), req.Destination, req.Message)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewNotificationDTO(notification), logger)
}

func (c *Controller) FindByID(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	notification, err := c.find.FindByID(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewNotificationDTO(notification), logger)
}
