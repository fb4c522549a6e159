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

// eventRepository implements repository.EventRepository using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var m model.EventModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(&m), nil
}

func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	var models []model.EventModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return toEventDomainSlice(models), nil
}

func (repo *eventRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Event, error) {
	var models []model.EventModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by artist")
	}

	return toEventDomainSlice(models), nil
}

func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	if err := repo.db.WithContext(ctx).Create(fromEventDomain(event)).Error; err != nil {
		return errors.Wrap(err, "failed to create event")
	}

	return nil
}

func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.EventModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func toEventDomainSlice(models []model.EventModel) []*entity.Event {
	out := make([]*entity.Event, 0, len(models))
	for i := range models {
		out = append(out, toEventDomain(&models[i]))
	}

	return out
}

func toEventDomain(data *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:            data.ID,
		ArtistID:      data.ArtistID,
		ArtistName:    data.ArtistName,
		Title:         data.Title,
		ImageURL:      data.ImageURL,
		OriginalPrice: data.OriginalPrice,
		DiscountPrice: data.DiscountPrice,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Description:   data.Description,
		ArtistType:    entity.ArtistType(data.ArtistType),
		CreatedAt:     data.CreatedAt,
	}
}

func fromEventDomain(event *entity.Event) *model.EventModel {
	return &model.EventModel{
		ID:            event.ID,
		ArtistID:      event.ArtistID,
		ArtistName:    event.ArtistName,
		Title:         event.Title,
		ImageURL:      event.ImageURL,
		OriginalPrice: event.OriginalPrice,
		DiscountPrice: event.DiscountPrice,
		StartDate:     event.StartDate,
		EndDate:       event.EndDate,
		Description:   event.Description,
		ArtistType:    string(event.ArtistType),
		CreatedAt:     event.CreatedAt,
	}
}
