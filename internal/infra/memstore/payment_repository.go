package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type paymentRepository struct {
	store *Store
}

// NewPaymentRepository creates a payment ledger repository backed by the store.
func NewPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{store: store}
}

func (r *paymentRepository) FindAll(_ context.Context) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Payment, 0, len(r.store.payments))
	for _, payment := range r.store.payments {
		out = append(out, clonePayment(payment))
	}

	return out, nil
}

func (r *paymentRepository) FindByArtistID(_ context.Context, artistID uuid.UUID) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Payment, 0)
	for _, payment := range r.store.payments {
		if payment.ArtistID == artistID {
			out = append(out, clonePayment(payment))
		}
	}

	return out, nil
}

func (r *paymentRepository) Create(_ context.Context, payment *entity.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.payments = prepend(r.store.payments, clonePayment(payment))

	return nil
}
