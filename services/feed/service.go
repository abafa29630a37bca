package feed

import (
	"context"

	"workmate/models"

	"go.uber.org/zap"
)

// JobLister is the slice of the backend API the feed needs.
type JobLister interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
}

// Service serves the open-jobs listing, preferring the cache and falling
// back to the backend. Cache errors never fail a request.
type Service struct {
	api    JobLister
	cache  Cache
	logger *zap.Logger
}

func NewService(api JobLister, cache Cache, logger *zap.Logger) *Service {
	return &Service{api: api, cache: cache, logger: logger}
}

// OpenJobs returns the current open-jobs listing.
func (s *Service) OpenJobs(ctx context.Context) ([]models.Job, error) {
	if s.cache != nil {
		jobs, err := s.cache.GetJobs(ctx)
		if err != nil {
			s.logger.Warn("feed: cache read failed", zap.Error(err))
		} else if jobs != nil {
			return jobs, nil
		}
	}

	jobs, err := s.api.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetJobs(ctx, jobs); err != nil {
			s.logger.Warn("feed: cache write failed", zap.Error(err))
		}
	}
	return jobs, nil
}

// Refresh re-fetches the listing from the backend and rewrites the cache.
// Used by the background worker and after mutations that change the feed.
func (s *Service) Refresh(ctx context.Context) error {
	jobs, err := s.api.ListJobs(ctx)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.SetJobs(ctx, jobs)
}

// Invalidate drops the cached listing so the next read hits the backend.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("feed: cache invalidation failed", zap.Error(err))
	}
}
