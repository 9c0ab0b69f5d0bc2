package sanitation

import (
	"context"
	"fmt"
	"time"

	"igv/api/models"
	esRepo "igv/api/repositories/elasticsearch"
	"igv/api/services"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-co-op/gocron"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

type (
	SanitationService struct {
		Initialized    bool
		Es7Client      *es7.Client
		Config         *models.Config
		SessionService *services.SessionService
		scheduler      *gocron.Scheduler
	}
)

func NewSanitationService(es *es7.Client, cfg *models.Config, ss *services.SessionService) *SanitationService {
	sanitation := &SanitationService{
		Initialized:    false,
		Es7Client:      es,
		Config:         cfg,
		SessionService: ss,
	}

	sanitation.Init()

	return sanitation
}

func (s *SanitationService) Init() {
	// initialization if necessary
	if !s.Initialized {
		// every day, drop the browser sessions idle for
		// longer than the configured ttl, both in memory
		// and in elasticsearch
		s.scheduler = gocron.NewScheduler(time.UTC)
		_, err := s.scheduler.Every(1).Days().At(s.Config.Api.SanitationTime).Do(func() {
			fmt.Printf("[%s] - Running browser sessions cleanup..\n", time.Now())

			evicted, purged, err := s.Purge(context.Background(), time.Now())
			if err != nil {
				log.Errorf("browser sessions cleanup failed : %v", err)
				return
			}
			fmt.Printf("[%s] - Browser sessions cleanup done : %d evicted, %d purged..\n", time.Now(), evicted, purged)
		})
		if err != nil {
			log.Errorf("failed to schedule the browser sessions cleanup : %v", err)
			return
		}

		// non-blocking, jobs run in their own go routines
		s.scheduler.StartAsync()

		s.Initialized = true
		fmt.Println("Sanitation Service Initialized ..")
	}
}

func (s *SanitationService) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Cutoff is the instant before which a session counts as expired.
func (s *SanitationService) Cutoff(now time.Time) time.Time {
	ttl := s.Config.Api.SessionTtlHours
	if ttl <= 0 {
		ttl = 24
	}
	return now.Add(-time.Duration(ttl) * time.Hour)
}

// Purge evicts the expired in-memory sessions and deletes the expired
// persisted snapshots, concurrently.
func (s *SanitationService) Purge(ctx context.Context, now time.Time) (evicted int, purged int, err error) {
	cutoff := s.Cutoff(now)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		evicted = s.SessionService.EvictIdleSessions(cutoff)
		return nil
	})
	if s.Es7Client != nil && s.Config.Elasticsearch.Enabled {
		group.Go(func() error {
			var purgeErr error
			purged, purgeErr = esRepo.DeleteBrowserSessionsOlderThan(groupCtx, s.Config, s.Es7Client, cutoff)
			return purgeErr
		})
	}

	err = group.Wait()
	return evicted, purged, err
}
