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

// artistRepository implements repository.ArtistRepository using GORM.
type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository is the constructor for artistRepository.
func NewArtistRepository(db *gorm.DB) repository.ArtistRepository {
	return &artistRepository{db: db}
}

func (repo *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	var m model.ArtistModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to find artist by id")
	}

	return toArtistDomain(&m), nil
}

func (repo *artistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	var models []model.ArtistModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}

	return toArtistDomainSlice(models), nil
}

func (repo *artistRepository) FindByStatus(ctx context.Context, status entity.ArtistStatus) ([]*entity.Artist, error) {
	var models []model.ArtistModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artists by status")
	}

	return toArtistDomainSlice(models), nil
}

func (repo *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	if err := repo.db.WithContext(ctx).Create(fromArtistDomain(artist)).Error; err != nil {
		return errors.Wrap(err, "failed to create artist")
	}

	return nil
}

func (repo *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	m := fromArtistDomain(artist)
	// Save writes every column; partial updates would drop cleared optional
	// fields like the subscription expiry.
	result := repo.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update artist")
	}

	return nil
}

func toArtistDomainSlice(models []model.ArtistModel) []*entity.Artist {
	out := make([]*entity.Artist, 0, len(models))
	for i := range models {
		out = append(out, toArtistDomain(&models[i]))
	}

	return out
}

func toArtistDomain(data *model.ArtistModel) *entity.Artist {
	return &entity.Artist{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		AvatarURL:     data.AvatarURL,
		CoverImageURL: data.CoverImageURL,
		Bio:           data.Bio,
		Specialty:     data.Specialty,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		Location:      data.Location,
		ArtistType:    entity.ArtistType(data.ArtistType),
		WhatsApp:      data.WhatsApp,
		KakaoTalk:     data.KakaoTalk,
		Subscription: entity.Subscription{
			Tier:       entity.SubscriptionTier(data.SubscriptionTier),
			ExpiryDate: data.SubscriptionEnd,
		},
		Status:    entity.ArtistStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

func fromArtistDomain(artist *entity.Artist) *model.ArtistModel {
	return &model.ArtistModel{
		ID:               artist.ID,
		Name:             artist.Name,
		Email:            artist.Email,
		AvatarURL:        artist.AvatarURL,
		CoverImageURL:    artist.CoverImageURL,
		Bio:              artist.Bio,
		Specialty:        artist.Specialty,
		Rating:           artist.Rating,
		ReviewCount:      artist.ReviewCount,
		Location:         artist.Location,
		ArtistType:       string(artist.ArtistType),
		WhatsApp:         artist.WhatsApp,
		KakaoTalk:        artist.KakaoTalk,
		SubscriptionTier: string(artist.Subscription.Tier),
		SubscriptionEnd:  artist.Subscription.ExpiryDate,
		Status:           string(artist.Status),
		CreatedAt:        artist.CreatedAt,
	}
}
