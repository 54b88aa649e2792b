package provider

import (
	"context"
	"fmt"
	"time"

	"servigo/cron"
	categoryRepo "servigo/database/repository/category"
	imageRepo "servigo/database/repository/image"
	listingRepo "servigo/database/repository/listing"
	profileRepo "servigo/database/repository/profile"
	providerRepo "servigo/database/repository/provider"
	reviewRepo "servigo/database/repository/review"
	"servigo/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo       providerRepo.ProviderRepository
	Profiles   profileRepo.ProfileRepository
	Categories categoryRepo.CategoryRepository
	Listings   listingRepo.ListingRepository
	Images     imageRepo.ServiceImageRepository
	Reviews    reviewRepo.ReviewRepository
	Tasks      *asynq.Client
	Logger     *zap.Logger
}

func (s *DefaultProviderService) GetDetail(providerID string) (*models.ProviderDetail, error) {
	prov, err := s.Repo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to fetch provider %s: %w", providerID, err)
	}

	detail := &models.ProviderDetail{
		Provider: *prov,
		Listings: []models.Listing{},
		Reviews:  []models.Review{},
	}

	if prov.UserID != "" {
		profile, err := s.Profiles.GetByUserID(prov.UserID)
		if err != nil {
			s.Logger.Warn("provider: could not fetch profile",
				zap.String("userID", prov.UserID), zap.Error(err))
		} else {
			detail.Profile = profile
		}
	}

	if prov.JobCategoryID != "" {
		category, err := s.Categories.GetByID(prov.JobCategoryID)
		if err != nil {
			s.Logger.Warn("provider: could not fetch category",
				zap.String("categoryID", prov.JobCategoryID), zap.Error(err))
		} else {
			detail.Category = category
		}
	}

	listings, err := s.Listings.GetActiveByProvider(providerID)
	if err != nil {
		s.Logger.Warn("provider: services fetch failed",
			zap.String("providerID", providerID), zap.Error(err))
	} else if listings != nil {
		detail.Listings = listings
	}

	if len(detail.Listings) > 0 {
		detail.Images = make(map[string][]models.ServiceImage, len(detail.Listings))
		for _, listing := range detail.Listings {
			images, err := s.Images.GetByListing(listing.ID)
			if err != nil {
				s.Logger.Warn("provider: images fetch failed",
					zap.String("listingID", listing.ID), zap.Error(err))
				continue
			}
			if len(images) > 0 {
				detail.Images[listing.ID] = images
			}
		}
	}

	reviews, err := s.Reviews.GetByProvider(providerID)
	if err != nil {
		s.Logger.Warn("provider: reviews fetch failed",
			zap.String("providerID", providerID), zap.Error(err))
	} else if reviews != nil {
		detail.Reviews = reviews
	}

	return detail, nil
}

func (s *DefaultProviderService) AddReview(ctx context.Context, review *models.Review) error {
	if review.ServiceProviderID == "" {
		return fmt.Errorf("provider: review is missing a provider reference")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("provider: review rating %.1f out of range", review.Rating)
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	if err := s.Reviews.Create(review); err != nil {
		return fmt.Errorf("provider: failed to store review: %w", err)
	}

	s.scheduleRatingRecompute(ctx, review.ServiceProviderID)
	return nil
}

// scheduleRatingRecompute enqueues the aggregate recompute task, falling
// back to a synchronous recompute when no task queue is wired or the
// enqueue fails.
func (s *DefaultProviderService) scheduleRatingRecompute(ctx context.Context, providerID string) {
	if s.Tasks != nil {
		task, err := cron.NewRatingRecomputeTask(providerID)
		if err == nil {
			if _, err = s.Tasks.EnqueueContext(ctx, task); err == nil {
				return
			}
		}
		s.Logger.Warn("provider: failed to enqueue rating recompute, running inline",
			zap.String("providerID", providerID), zap.Error(err))
	}
	if err := s.RecomputeRating(providerID); err != nil {
		s.Logger.Error("provider: inline rating recompute failed",
			zap.String("providerID", providerID), zap.Error(err))
	}
}

func (s *DefaultProviderService) RecomputeRating(providerID string) error {
	avg, count, err := s.Reviews.AggregateByProvider(providerID)
	if err != nil {
		return fmt.Errorf("provider: failed to aggregate reviews for %s: %w", providerID, err)
	}
	if err := s.Repo.UpdateRating(providerID, avg, count); err != nil {
		return fmt.Errorf("provider: failed to store rating for %s: %w", providerID, err)
	}
	s.Logger.Info("provider: rating recomputed",
		zap.String("providerID", providerID),
		zap.Float64("rating", avg), zap.Int("totalReviews", count))
	return nil
}
