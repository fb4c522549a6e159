package postgres

import (
	"context"

	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"
	"inkspot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements repository.ReviewRepository using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var m model.ReviewModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&m), nil
}

func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var models []model.ReviewModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomainSlice(models), nil
}

func (repo *reviewRepository) FindByTattooID(ctx context.Context, tattooID uuid.UUID) ([]*entity.Review, error) {
	var models []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("tattoo_id = ?", tattooID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by tattoo")
	}

	return toReviewDomainSlice(models), nil
}

func (repo *reviewRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Review, error) {
	var models []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by artist")
	}

	return toReviewDomainSlice(models), nil
}

func (repo *reviewRepository) ExistsByTattooAndReviewer(ctx context.Context, tattooID, reviewerID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("tattoo_id = ? AND reviewer_id = ?", tattooID, reviewerID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check review existence")
	}

	return count > 0, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if err := repo.db.WithContext(ctx).Create(fromReviewDomain(review)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateReview
		}

		return errors.Wrap(err, "failed to create review")
	}

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func toReviewDomainSlice(models []model.ReviewModel) []*entity.Review {
	out := make([]*entity.Review, 0, len(models))
	for i := range models {
		out = append(out, toReviewDomain(&models[i]))
	}

	return out
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:             data.ID,
		TattooID:       data.TattooID,
		ReviewerID:     data.ReviewerID,
		ReviewerName:   data.ReviewerName,
		ReviewerAvatar: data.ReviewerAvatar,
		Rating:         data.Rating,
		Comment:        data.Comment,
		ImageURL:       data.ImageURL,
		ArtistID:       data.ArtistID,
		ArtistName:     data.ArtistName,
		CreatedAt:      data.CreatedAt,
	}
}

func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:             review.ID,
		TattooID:       review.TattooID,
		ReviewerID:     review.ReviewerID,
		ReviewerName:   review.ReviewerName,
		ReviewerAvatar: review.ReviewerAvatar,
		Rating:         review.Rating,
		Comment:        review.Comment,
		ImageURL:       review.ImageURL,
		ArtistID:       review.ArtistID,
		ArtistName:     review.ArtistName,
		CreatedAt:      review.CreatedAt,
	}
}
