package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"
	"inkspot/internal/domain/service"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Reviews from general accounts have no avatar of their own.
const fallbackReviewerAvatar = "https://picsum.photos/100/100?random=99"

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	accountRepo repository.AccountRepository
	artistRepo  repository.ArtistRepository
	tattooRepo  repository.TattooRepository
	eventRepo   repository.EventRepository
	reviewRepo  repository.ReviewRepository
	paymentRepo repository.PaymentRepository
	sessionRepo repository.SessionRepository
	compressor  service.ImageCompressor
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	ArtistRepo  repository.ArtistRepository
	TattooRepo  repository.TattooRepository
	EventRepo   repository.EventRepository
	ReviewRepo  repository.ReviewRepository
	PaymentRepo repository.PaymentRepository
	SessionRepo repository.SessionRepository
	Compressor  service.ImageCompressor
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		accountRepo: params.AccountRepo,
		artistRepo:  params.ArtistRepo,
		tattooRepo:  params.TattooRepo,
		eventRepo:   params.EventRepo,
		reviewRepo:  params.ReviewRepo,
		paymentRepo: params.PaymentRepo,
		sessionRepo: params.SessionRepo,
		compressor:  params.Compressor,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	artists, err := srv.ActiveArtists(ctx)
	if err != nil {
		return nil, err
	}

	tattoos, err := srv.tattooRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoos")
	}

	return &usecase.HomeOutput{Artists: artists, Tattoos: tattoos}, nil
}

// ActiveArtists lists approved profiles, premium placements first and
// alphabetical within each group.
func (srv *catalogService) ActiveArtists(ctx context.Context) ([]*entity.Artist, error) {
	artists, err := srv.artistRepo.FindByStatus(ctx, entity.ArtistStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active artists")
	}

	now := time.Now()
	sort.SliceStable(artists, func(i, j int) bool {
		a, b := artists[i].IsPremiumAt(now), artists[j].IsPremiumAt(now)
		if a != b {
			return a
		}

		return artists[i].Name < artists[j].Name
	})

	return artists, nil
}

func (srv *catalogService) ArtistDetail(ctx context.Context, artistID uuid.UUID) (*usecase.ArtistDetailOutput, error) {
	artist, err := srv.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("artist not found")
		}

		return nil, errors.Wrap(err, "failed to find artist")
	}

	tattoos, err := srv.tattooRepo.FindByArtistID(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist tattoos")
	}
	reviews, err := srv.reviewRepo.FindByArtistID(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist reviews")
	}
	events, err := srv.eventRepo.FindByArtistID(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist events")
	}

	return &usecase.ArtistDetailOutput{
		Artist:  artist,
		Tattoos: tattoos,
		Reviews: reviews,
		Events:  events,
	}, nil
}

// TattooDetail assembles a tattoo page. The owning artist is resolved by id
// against the active set; a deactivated or deleted owner leaves Artist nil
// and the page still renders.
func (srv *catalogService) TattooDetail(ctx context.Context, sessionID *uuid.UUID, tattooID uuid.UUID) (*usecase.TattooDetailOutput, error) {
	tattoo, err := srv.tattooRepo.FindByID(ctx, tattooID)
	if err != nil {
		if errors.Is(err, repository.ErrTattooNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("tattoo not found")
		}

		return nil, errors.Wrap(err, "failed to find tattoo")
	}

	out := &usecase.TattooDetailOutput{Tattoo: tattoo}

	artist, err := srv.artistRepo.FindByID(ctx, tattoo.ArtistID)
	if err == nil && artist.Status == entity.ArtistStatusActive {
		out.Artist = artist

		others, err := srv.tattooRepo.FindByArtistID(ctx, artist.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list other tattoos")
		}
		for _, other := range others {
			if other.ID != tattoo.ID {
				out.OtherTattoos = append(out.OtherTattoos, other)
			}
		}
	} else if err != nil && !errors.Is(err, repository.ErrArtistNotFound) {
		return nil, errors.Wrap(err, "failed to find tattoo artist")
	}

	reviews, err := srv.reviewRepo.FindByTattooID(ctx, tattooID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoo reviews")
	}
	out.Reviews = reviews

	if sessionID != nil {
		if session, err := srv.sessionRepo.FindByID(ctx, *sessionID); err == nil {
			_, out.Liked = session.LikedTattooIDs[tattooID]
		}
	}

	return out, nil
}

func (srv *catalogService) Events(ctx context.Context) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

func (srv *catalogService) EventDetail(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("event not found")
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// Search matches the query case-insensitively across active artists (name,
// specialty, location), tattoos (artist name, style, tags, description) and
// events (title, artist name, description).
func (srv *catalogService) Search(ctx context.Context, query string) (*usecase.SearchOutput, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := &usecase.SearchOutput{
		Artists: make([]*entity.Artist, 0),
		Tattoos: make([]*entity.Tattoo, 0),
		Events:  make([]*entity.Event, 0),
	}
	if q == "" {
		return out, nil
	}

	artists, err := srv.artistRepo.FindByStatus(ctx, entity.ArtistStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active artists")
	}
	for _, artist := range artists {
		if containsFold(q, artist.Name, artist.Specialty, artist.Location) {
			out.Artists = append(out.Artists, artist)
		}
	}

	tattoos, err := srv.tattooRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoos")
	}
	for _, tattoo := range tattoos {
		if containsFold(q, tattoo.ArtistName, tattoo.Style, tattoo.Description) ||
			containsFold(q, tattoo.Tags...) {
			out.Tattoos = append(out.Tattoos, tattoo)
		}
	}

	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}
	for _, event := range events {
		if containsFold(q, event.Title, event.ArtistName, event.Description) {
			out.Events = append(out.Events, event)
		}
	}

	return out, nil
}

func containsFold(query string, candidates ...string) bool {
	for _, candidate := range candidates {
		if candidate != "" && strings.Contains(strings.ToLower(candidate), query) {
			return true
		}
	}

	return false
}

func (srv *catalogService) ToggleLikeTattoo(ctx context.Context, sessionID, tattooID uuid.UUID) (bool, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return false, err
	}

	session.ToggleLikedTattoo(tattooID)
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return false, errors.Wrap(err, "failed to persist liked tattoos")
	}

	_, liked := session.LikedTattooIDs[tattooID]

	return liked, nil
}

func (srv *catalogService) ToggleLikeArtist(ctx context.Context, sessionID, artistID uuid.UUID) (bool, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return false, err
	}

	session.ToggleLikedArtist(artistID)
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return false, errors.Wrap(err, "failed to persist liked artists")
	}

	_, liked := session.LikedArtistIDs[artistID]

	return liked, nil
}

// LikedContent resolves the session's liked id sets. Liked artists that are
// no longer active are filtered out; liked tattoos survive owner changes.
func (srv *catalogService) LikedContent(ctx context.Context, sessionID uuid.UUID) (*usecase.LikedContentOutput, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	out := &usecase.LikedContentOutput{
		Tattoos: make([]*entity.Tattoo, 0, len(session.LikedTattooIDs)),
		Artists: make([]*entity.Artist, 0, len(session.LikedArtistIDs)),
	}

	tattoos, err := srv.tattooRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoos")
	}
	for _, tattoo := range tattoos {
		if _, ok := session.LikedTattooIDs[tattoo.ID]; ok {
			out.Tattoos = append(out.Tattoos, tattoo)
		}
	}

	artists, err := srv.artistRepo.FindByStatus(ctx, entity.ArtistStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active artists")
	}
	for _, artist := range artists {
		if _, ok := session.LikedArtistIDs[artist.ID]; ok {
			out.Artists = append(out.Artists, artist)
		}
	}

	return out, nil
}

// UploadTattoo adds a portfolio piece for the logged-in artist. The image is
// recompressed and stored inline as a data URL.
func (srv *catalogService) UploadTattoo(ctx context.Context, sessionID uuid.UUID, input usecase.UploadTattooInput) (*entity.Tattoo, error) {
	_, artist, err := loadArtistSession(ctx, srv.sessionRepo, srv.artistRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if len(input.Image) == 0 || strings.TrimSpace(input.Style) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image and style are required")
	}

	imageURL, err := srv.inlineImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	tattoo := &entity.Tattoo{
		ID:              uuid.New(),
		ImageURL:        imageURL,
		ArtistID:        artist.ID,
		ArtistName:      artist.Name,
		ArtistAvatarURL: artist.AvatarURL,
		Style:           input.Style,
		Description:     input.Description,
		Tags:            input.Tags,
		ArtistType:      artist.ArtistType,
		CreatedAt:       time.Now(),
	}
	if err := srv.tattooRepo.Create(ctx, tattoo); err != nil {
		return nil, errors.Wrap(err, "failed to create tattoo")
	}

	srv.log(ctx).Info("Tattoo uploaded", slog.Any("tattooID", tattoo.ID), slog.Any("artistID", artist.ID))

	return tattoo, nil
}

// CreateEvent publishes a promotion for the logged-in artist.
func (srv *catalogService) CreateEvent(ctx context.Context, sessionID uuid.UUID, input usecase.CreateEventInput) (*entity.Event, error) {
	_, artist, err := loadArtistSession(ctx, srv.sessionRepo, srv.artistRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" || input.OriginalPrice <= 0 || input.DiscountPrice <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and positive prices are required")
	}

	startDate, err := time.Parse(time.DateOnly, input.StartDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid start date")
	}
	endDate, err := time.Parse(time.DateOnly, input.EndDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("end date precedes start date")
	}

	imageURL := ""
	if len(input.Image) > 0 {
		imageURL, err = srv.inlineImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
	}

	event := &entity.Event{
		ID:            uuid.New(),
		ArtistID:      artist.ID,
		ArtistName:    artist.Name,
		Title:         input.Title,
		ImageURL:      imageURL,
		OriginalPrice: input.OriginalPrice,
		DiscountPrice: input.DiscountPrice,
		StartDate:     startDate,
		EndDate:       endDate,
		Description:   input.Description,
		ArtistType:    artist.ArtistType,
		CreatedAt:     time.Now(),
	}
	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.Any("artistID", artist.ID))

	return event, nil
}

// SubmitReview records feedback on a tattoo, one review per account and
// tattoo. The artist's aggregate rating folds the new score in.
func (srv *catalogService) SubmitReview(ctx context.Context, sessionID uuid.UUID, input usecase.SubmitReviewInput) (*entity.Review, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	tattoo, err := srv.tattooRepo.FindByID(ctx, input.TattooID)
	if err != nil {
		if errors.Is(err, repository.ErrTattooNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("tattoo not found")
		}

		return nil, errors.Wrap(err, "failed to find tattoo")
	}

	exists, err := srv.reviewRepo.ExistsByTattooAndReviewer(ctx, input.TattooID, session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for an existing review")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateReview
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reviewer account")
	}

	reviewerAvatar := fallbackReviewerAvatar
	if account.Role == entity.RoleArtist {
		if reviewer, err := srv.artistRepo.FindByID(ctx, account.ID); err == nil {
			reviewerAvatar = reviewer.AvatarURL
		}
	}

	imageURL := tattoo.ImageURL
	if len(input.Image) > 0 {
		imageURL, err = srv.inlineImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
	}

	review := &entity.Review{
		ID:             uuid.New(),
		TattooID:       tattoo.ID,
		ReviewerID:     account.ID,
		ReviewerName:   account.Name,
		ReviewerAvatar: reviewerAvatar,
		Rating:         input.Rating,
		Comment:        input.Comment,
		ImageURL:       imageURL,
		ArtistID:       tattoo.ArtistID,
		ArtistName:     tattoo.ArtistName,
		CreatedAt:      time.Now(),
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.foldRatingIn(ctx, tattoo.ArtistID, input.Rating)

	return review, nil
}

// foldRatingIn recomputes the artist's running rating average with the new
// score. A missing artist row just skips the update.
func (srv *catalogService) foldRatingIn(ctx context.Context, artistID uuid.UUID, rating int) {
	artist, err := srv.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		return
	}

	total := artist.Rating*float64(artist.ReviewCount) + float64(rating)
	artist.ReviewCount++
	artist.Rating = total / float64(artist.ReviewCount)

	if err := srv.artistRepo.Update(ctx, artist); err != nil {
		srv.log(ctx).Warn("Failed to update artist rating", slog.Any("artistID", artistID), slog.Any("error", err))
	}
}

// DashboardStats summarizes the logged-in artist's content and payments.
func (srv *catalogService) DashboardStats(ctx context.Context, sessionID uuid.UUID) (*usecase.DashboardStatsOutput, error) {
	_, artist, err := loadArtistSession(ctx, srv.sessionRepo, srv.artistRepo, sessionID)
	if err != nil {
		return nil, err
	}

	tattoos, err := srv.tattooRepo.FindByArtistID(ctx, artist.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist tattoos")
	}
	events, err := srv.eventRepo.FindByArtistID(ctx, artist.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist events")
	}
	reviews, err := srv.reviewRepo.FindByArtistID(ctx, artist.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist reviews")
	}
	payments, err := srv.paymentRepo.FindByArtistID(ctx, artist.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist payments")
	}

	return &usecase.DashboardStatsOutput{
		Artist:      artist,
		TattooCount: len(tattoos),
		EventCount:  len(events),
		ReviewCount: len(reviews),
		Payments:    payments,
	}, nil
}

// ShareQR renders the artist's profile share code as a PNG.
func (srv *catalogService) ShareQR(ctx context.Context, artistID uuid.UUID) ([]byte, error) {
	if _, err := srv.artistRepo.FindByID(ctx, artistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("artist not found")
		}

		return nil, errors.Wrap(err, "failed to find artist")
	}

	png, err := srv.qrService.GenerateArtistShareQR(artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// inlineImage compresses an upload and encodes it as a JPEG data URL.
func (srv *catalogService) inlineImage(ctx context.Context, raw []byte) (string, error) {
	compressed, err := srv.compressor.Compress(ctx, raw)
	if err != nil {
		srv.log(ctx).Warn("Image compression rejected upload", slog.Any("error", err))

		return "", domainerrors.ErrImageProcessing.WrapMessage("could not process the uploaded image")
	}

	return fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(compressed)), nil
}
