package postgres

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"
	"inkspot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements repository.PaymentRepository using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	err := repo.db.WithContext(ctx).Order("payment_date DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentDomainSlice(models), nil
}

func (repo *paymentRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("payment_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by artist")
	}

	return toPaymentDomainSlice(models), nil
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if err := repo.db.WithContext(ctx).Create(fromPaymentDomain(payment)).Error; err != nil {
		return errors.Wrap(err, "failed to create payment")
	}

	return nil
}

func toPaymentDomainSlice(models []model.PaymentModel) []*entity.Payment {
	out := make([]*entity.Payment, 0, len(models))
	for i := range models {
		out = append(out, toPaymentDomain(&models[i]))
	}

	return out
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            data.ID,
		ArtistID:      data.ArtistID,
		ArtistName:    data.ArtistName,
		PlanTitle:     data.PlanTitle,
		Amount:        data.Amount,
		PaymentDate:   data.PaymentDate,
		NewExpiryDate: data.NewExpiryDate,
	}
}

func fromPaymentDomain(payment *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:            payment.ID,
		ArtistID:      payment.ArtistID,
		ArtistName:    payment.ArtistName,
		PlanTitle:     payment.PlanTitle,
		Amount:        payment.Amount,
		PaymentDate:   payment.PaymentDate,
		NewExpiryDate: payment.NewExpiryDate,
	}
}
