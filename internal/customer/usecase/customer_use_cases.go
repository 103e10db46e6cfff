package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByCPF(ctx context.Context, cpf domain.CPF) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.Customer, error)
}

type CreateCustomerUseCase struct {
	repo   CustomerRepository
	logger *zap.Logger
}

func NewCreateCustomerUseCase(repo CustomerRepository, logger *zap.Logger) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{repo: repo, logger: logger}
}

func (uc *CreateCustomerUseCase) Create(ctx context.Context, name, email string, cpf, phone *string) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(name, email, cpf, phone)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureUnique(ctx, customer); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	uc.logger.Info("customer created", zap.String("customerId", customer.ID))
	return customer, nil
}

// ensureUnique gives a precise message for the common case; the unique keys
// still guard concurrent creates.
func (uc *CreateCustomerUseCase) ensureUnique(ctx context.Context, customer *domain.Customer) error {
	_, err := uc.repo.FindByEmail(ctx, customer.Email)
	if err == nil {
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("customer with email %s already exists", customer.Email))
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return err
	}

	if customer.CPF == nil {
		return nil
	}
	_, err = uc.repo.FindByCPF(ctx, *customer.CPF)
	if err == nil {
		return apperrors.NewAlreadyExistsError("customer with this cpf already exists")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return err
	}
	return nil
}

type FindCustomerUseCase struct {
	repo CustomerRepository
}

func NewFindCustomerUseCase(repo CustomerRepository) *FindCustomerUseCase {
	return &FindCustomerUseCase{repo: repo}
}

func (uc *FindCustomerUseCase) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *FindCustomerUseCase) FindByCPF(ctx context.Context, raw string) (*domain.Customer, error) {
	cpf, err := domain.NewCPF(raw)
	if err != nil {
		return nil, err
	}
	return uc.repo.FindByCPF(ctx, cpf)
}
