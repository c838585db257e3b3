// Package scheduler runs the nightly billing sweep.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/PrassV/Propo-Staging-sub002/internal/config"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

// Scheduler runs daily housekeeping: materializing due rent payments,
// flagging overdue ones and purging expired sessions.
type Scheduler struct {
	cron           *cron.Cron
	paymentService *services.PaymentService
	sessionRepo    *repositories.SessionRepository
	config         config.SchedulerConfig
	isRunning      bool
}

func NewScheduler(
	paymentService *services.PaymentService,
	sessionRepo *repositories.SessionRepository,
	cfg config.SchedulerConfig,
) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		paymentService: paymentService,
		sessionRepo:    sessionRepo,
		config:         cfg,
	}
}

// Start registers the daily job and starts the cron loop.
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		log.Println("Scheduler: Daily run is disabled in configuration")
		return nil
	}

	cronSpec := parseDailyRunTime(s.config.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: Starting daily billing job...")
		if err := s.runDailyBilling(); err != nil {
			log.Printf("Scheduler: Daily billing failed: %v", err)
		} else {
			log.Println("Scheduler: Daily billing completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: Started with daily run at %s (cron: %s)", s.config.DailyRunTime, cronSpec)

	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: Stopped")
	}
}

func (s *Scheduler) runDailyBilling() error {
	summary, err := s.paymentService.GenerateDue(context.Background())
	if err != nil {
		return fmt.Errorf("payment generation failed: %w", err)
	}
	log.Printf("Scheduler: Generated payments. Leases: %d, Created: %d, Failed: %d",
		summary.LeasesProcessed, summary.PaymentsCreated, summary.Failed)

	overdue, err := s.paymentService.MarkOverdue()
	if err != nil {
		return fmt.Errorf("overdue sweep failed: %w", err)
	}
	log.Printf("Scheduler: Marked %d payments overdue", overdue)

	purged, err := s.sessionRepo.DeleteExpired()
	if err != nil {
		return fmt.Errorf("session purge failed: %w", err)
	}
	log.Printf("Scheduler: Purged %d expired sessions", purged)

	return nil
}

// RunNow immediately executes the daily billing job (for manual trigger)
func (s *Scheduler) RunNow() error {
	log.Println("Scheduler: Manual trigger - starting billing job...")
	return s.runDailyBilling()
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "02:00" -> "0 2 * * *" (run at 2:00 AM every day)
func parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Printf("Scheduler: Failed to parse time '%s', using default 02:00", timeStr)
	return "0 2 * * *"
}
