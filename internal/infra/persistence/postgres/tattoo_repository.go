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

// tattooRepository implements repository.TattooRepository using GORM.
type tattooRepository struct {
	db *gorm.DB
}

// NewTattooRepository is the constructor for tattooRepository.
func NewTattooRepository(db *gorm.DB) repository.TattooRepository {
	return &tattooRepository{db: db}
}

func (repo *tattooRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tattoo, error) {
	var m model.TattooModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTattooNotFound
		}

		return nil, errors.Wrap(err, "failed to find tattoo by id")
	}

	return toTattooDomain(&m), nil
}

func (repo *tattooRepository) FindAll(ctx context.Context) ([]*entity.Tattoo, error) {
	var models []model.TattooModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoos")
	}

	return toTattooDomainSlice(models), nil
}

func (repo *tattooRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Tattoo, error) {
	var models []model.TattooModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoos by artist")
	}

	return toTattooDomainSlice(models), nil
}

func (repo *tattooRepository) Create(ctx context.Context, tattoo *entity.Tattoo) error {
	if err := repo.db.WithContext(ctx).Create(fromTattooDomain(tattoo)).Error; err != nil {
		return errors.Wrap(err, "failed to create tattoo")
	}

	return nil
}

func (repo *tattooRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TattooModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tattoo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTattooNotFound
	}

	return nil
}

func toTattooDomainSlice(models []model.TattooModel) []*entity.Tattoo {
	out := make([]*entity.Tattoo, 0, len(models))
	for i := range models {
		out = append(out, toTattooDomain(&models[i]))
	}

	return out
}

func toTattooDomain(data *model.TattooModel) *entity.Tattoo {
	return &entity.Tattoo{
		ID:              data.ID,
		ImageURL:        data.ImageURL,
		ArtistID:        data.ArtistID,
		ArtistName:      data.ArtistName,
		ArtistAvatarURL: data.ArtistAvatarURL,
		Style:           data.Style,
		Description:     data.Description,
		Tags:            data.Tags,
		ArtistType:      entity.ArtistType(data.ArtistType),
		CreatedAt:       data.CreatedAt,
	}
}

func fromTattooDomain(tattoo *entity.Tattoo) *model.TattooModel {
	return &model.TattooModel{
		ID:              tattoo.ID,
		ImageURL:        tattoo.ImageURL,
		ArtistID:        tattoo.ArtistID,
		ArtistName:      tattoo.ArtistName,
		ArtistAvatarURL: tattoo.ArtistAvatarURL,
		Style:           tattoo.Style,
		Description:     tattoo.Description,
		Tags:            tattoo.Tags,
		ArtistType:      string(tattoo.ArtistType),
		CreatedAt:       tattoo.CreatedAt,
	}
}
