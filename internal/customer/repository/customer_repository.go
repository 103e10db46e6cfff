package repository

import (
	"context"
	"database/sql"
	"fmt"

	"palantir/internal/domain"
	"palantir/internal/errors"
	"palantir/internal/infrastructure/mysql"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

const selectCustomer = `
	SELECT id, name, email, cpf, phone, createdAt, updatedAt
	FROM Customers
`

func (r *MySQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	var cpf, phone *string
	if customer.CPF != nil {
		v := customer.CPF.String()
		cpf = &v
	}
	if customer.Phone != nil {
		v := customer.Phone.String()
		phone = &v
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO Customers (id, name, email, cpf, phone, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, customer.ID, customer.Name, customer.Email.String(), cpf, phone, customer.CreatedAt, customer.UpdatedAt)

	if mysql.IsDuplicateEntryError(err) {
		return errors.NewAlreadyExistsError("customer with this email or cpf already exists")
	}
	if err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}
	return nil
}

func (r *MySQLCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.findOne(ctx, selectCustomer+`WHERE id = ?`, id, fmt.Sprintf("customer with id %s not found", id))
}

func (r *MySQLCustomerRepository) FindByCPF(ctx context.Context, cpf domain.CPF) (*domain.Customer, error) {
	return r.findOne(ctx, selectCustomer+`WHERE cpf = ?`, cpf.String(), "customer with this cpf not found")
}

func (r *MySQLCustomerRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.Customer, error) {
	return r.findOne(ctx, selectCustomer+`WHERE email = ?`, email.String(), "customer with this email not found")
}

func (r *MySQLCustomerRepository) findOne(ctx context.Context, query, arg, notFoundMsg string) (*domain.Customer, error) {
	var (
		customer   domain.Customer
		email      string
		cpf, phone sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&customer.ID, &customer.Name, &email, &cpf, &phone, &customer.CreatedAt, &customer.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer: %w", err)
	}

	if customer.Email, err = domain.NewEmail(email); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("restoring customer %s email", customer.ID), err)
	}
	if cpf.Valid {
		vo, err := domain.NewCPF(cpf.String)
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("restoring customer %s cpf", customer.ID), err)
		}
		customer.CPF = &vo
	}
	if phone.Valid {
		vo, err := domain.NewPhone(phone.String)
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("restoring customer %s phone", customer.ID), err)
		}
		customer.Phone = &vo
	}

	return &customer, nil
}
