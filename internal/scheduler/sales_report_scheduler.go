package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
)

// SalesReportScheduler logs a daily order count and revenue summary
type SalesReportScheduler struct {
	orderRepo repository.OrderRepository
	cron      *cron.Cron
}

// NewSalesReportScheduler creates a new sales report scheduler
func NewSalesReportScheduler(orderRepo repository.OrderRepository) *SalesReportScheduler {
	return &SalesReportScheduler{
		orderRepo: orderRepo,
		cron:      cron.New(),
	}
}

// Start schedules the summary job at midnight every day
func (s *SalesReportScheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", s.reportDailySales)
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Sales report scheduler started", map[string]interface{}{
		"schedule": "daily at midnight",
	})
	return nil
}

// Stop halts the scheduler and waits for a running job to finish
func (s *SalesReportScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Sales report scheduler stopped")
}

func (s *SalesReportScheduler) reportDailySales() {
	since := time.Now().AddDate(0, 0, -1)

	count, err := s.orderRepo.CountSince(since)
	if err != nil {
		logger.Error("Failed to count daily orders", err)
		return
	}

	revenue, err := s.orderRepo.RevenueSince(since)
	if err != nil {
		logger.Error("Failed to sum daily revenue", err)
		return
	}

	logger.Info("Daily sales summary", map[string]interface{}{
		"orders":  count,
		"revenue": revenue,
		"since":   since.Format(time.RFC3339),
	})
}
