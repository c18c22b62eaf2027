package repository

import (
	"context"
	"strings"

	"xavro/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	FirstName     *string `gorm:"column:first_name"`
	LastName      string  `gorm:"column:last_name"`
	Email         string  `gorm:"column:email"`
	IsMinor       bool    `gorm:"column:is_minor"`
	IsBanned      bool    `gorm:"column:is_banned"`
	CustomerNotes *string `gorm:"column:customer_notes"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	var first, notes string
	if m.FirstName != nil {
		first = *m.FirstName
	}
	if m.CustomerNotes != nil {
		notes = *m.CustomerNotes
	}

	return &domain.Customer{
		ID:            m.ID,
		FirstName:     first,
		LastName:      m.LastName,
		Email:         m.Email,
		IsMinor:       m.IsMinor,
		IsBanned:      m.IsBanned,
		CustomerNotes: notes,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	var first, notes *string
	if c.FirstName != "" {
		v := c.FirstName
		first = &v
	}
	if c.CustomerNotes != "" {
		v := c.CustomerNotes
		notes = &v
	}

	return customerModel{
		ID:            c.ID,
		FirstName:     first,
		LastName:      c.LastName,
		Email:         strings.TrimSpace(strings.ToLower(c.Email)),
		IsMinor:       c.IsMinor,
		IsBanned:      c.IsBanned,
		CustomerNotes: notes,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}
