package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

// JobSource fetches the full listing collection. The API client implements it.
type JobSource interface {
	GetJobs(ctx context.Context, query url.Values) ([]models.Job, error)
}

// ListingService owns the in-memory job collection the filter/sort pipeline
// runs over. The collection is fetched from the remote API and replaced
// wholesale; criteria changes never trigger a re-fetch — handlers recompute
// over the cached snapshot.
type ListingService struct {
	source JobSource

	mu        sync.RWMutex
	jobs      []models.Job
	fetchedAt time.Time

	cron *cron.Cron
}

func NewListingService(source JobSource) *ListingService {
	return &ListingService{
		source: source,
		cron:   cron.New(),
	}
}

// Refresh fetches the full collection and swaps it in. On error the previous
// collection is kept, so a failed refresh never empties the feed.
func (s *ListingService) Refresh(ctx context.Context) error {
	jobs, err := s.source.GetJobs(ctx, nil)
	if err != nil {
		return fmt.Errorf("refresh jobs: %w", err)
	}

	s.mu.Lock()
	s.jobs = jobs
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	log.Printf("[listing] Collection refreshed — %d job(s)", len(jobs))
	return nil
}

// Jobs returns a snapshot of the cached collection. The copy keeps callers
// (and the sort inside the pipeline) from mutating the shared slice.
func (s *ListingService) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.Job, len(s.jobs))
	copy(snapshot, s.jobs)
	return snapshot
}

// FetchedAt reports when the current collection was loaded. Zero when no
// fetch has succeeded yet.
func (s *ListingService) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// StartRefresher schedules a background re-fetch every intervalMinutes so a
// long-running process does not serve a permanently stale feed.
func (s *ListingService) StartRefresher(ctx context.Context, intervalMinutes int) error {
	spec := fmt.Sprintf("@every %dm", intervalMinutes)
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.Refresh(ctx); err != nil {
			log.Printf("[listing] Scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[listing] Refresher started — spec: %s", spec)
	return nil
}

// Stop shuts down the background refresher.
func (s *ListingService) Stop() {
	s.cron.Stop()
}
