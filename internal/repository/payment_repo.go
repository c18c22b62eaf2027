package repository

import (
	"context"
	"time"

	"xavro/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id"`
	PaymentAmt float64   `gorm:"column:payment_amt"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:         m.ID,
		BookingID:  m.BookingID,
		PaymentAmt: m.PaymentAmt,
		Status:     domain.PaymentStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		ID:         p.ID,
		BookingID:  p.BookingID,
		PaymentAmt: p.PaymentAmt,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var ms []paymentModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Payment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}
