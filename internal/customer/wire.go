package customer

import (
	"database/sql"

	"go.uber.org/zap"

	"palantir/internal/customer/controller"
	"palantir/internal/customer/repository"
	"palantir/internal/customer/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLCustomerRepository(db)
	return controller.NewController(
		usecase.NewCreateCustomerUseCase(repo, logger),
		usecase.NewFindCustomerUseCase(repo),
		logger,
	)
}
