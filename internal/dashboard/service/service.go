// Package service implements the read-only dashboard rollup. Every call
// computes a fresh point-in-time snapshot; nothing is cached.
package service

import (
	"context"
	"time"

	"varniya_crm_backend/internal/dashboard/repository"
	"varniya_crm_backend/internal/dashboard/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
)

// salesWindowMonths is the span of the salesByMonth series, counted in
// calendar months including the current one.
const salesWindowMonths = 6

// Store is the read surface the rollup needs from the dashboard repository.
type Store interface {
	GetTotals(ctx context.Context, agentID *int64) (repository.Totals, error)
	CountLeadsByStage(ctx context.Context, agentID *int64) (map[string]int, error)
	CountLeadsBySource(ctx context.Context, agentID *int64) (map[string]int, error)
	SalesByMonth(ctx context.Context, agentID *int64, since time.Time) ([]repository.MonthlySales, error)
}

type Service struct {
	repo Store
	log  *logger.Logger
	now  func() time.Time
}

func New(repo Store, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Compute rolls up the dashboard KPIs, optionally scoped to one agent.
// Revenue sums delivered orders' price as-is, not price times quantity.
func (s *Service) Compute(ctx context.Context, agentID *int64) (transport.DashboardStats, error) {
	totals, err := s.repo.GetTotals(ctx, agentID)
	if err != nil {
		s.log.DatabaseError("dashboard.totals", err)
		return transport.DashboardStats{}, apperr.Wrap(apperr.KindInternal, "failed to compute dashboard totals", err)
	}

	byStage, err := s.repo.CountLeadsByStage(ctx, agentID)
	if err != nil {
		s.log.DatabaseError("dashboard.leads_by_stage", err)
		return transport.DashboardStats{}, apperr.Wrap(apperr.KindInternal, "failed to group leads by stage", err)
	}

	bySource, err := s.repo.CountLeadsBySource(ctx, agentID)
	if err != nil {
		s.log.DatabaseError("dashboard.leads_by_source", err)
		return transport.DashboardStats{}, apperr.Wrap(apperr.KindInternal, "failed to group leads by source", err)
	}

	monthly, err := s.repo.SalesByMonth(ctx, agentID, salesWindowStart(s.now()))
	if err != nil {
		s.log.DatabaseError("dashboard.sales_by_month", err)
		return transport.DashboardStats{}, apperr.Wrap(apperr.KindInternal, "failed to compute monthly sales", err)
	}

	salesByMonth := make([]transport.MonthlySales, 0, len(monthly))
	for _, entry := range monthly {
		salesByMonth = append(salesByMonth, transport.MonthlySales{
			Month:   entry.Month,
			Sales:   entry.Sales,
			Revenue: entry.Revenue,
		})
	}

	return transport.DashboardStats{
		TotalLeads:         totals.TotalLeads,
		ActiveDeals:        totals.ActiveDeals,
		CompletedSales:     totals.CompletedSales,
		Revenue:            totals.Revenue,
		HighIntentBrowsers: totals.HighIntentBrowsers,
		PendingFollowUps:   totals.PendingFollowUps,
		LeadsByStage:       byStage,
		LeadsBySource:      bySource,
		SalesByMonth:       salesByMonth,
	}, nil
}

// salesWindowStart returns the first instant of the calendar month
// salesWindowMonths-1 months before now, so the window covers the current
// month plus the five preceding ones.
func salesWindowStart(now time.Time) time.Time {
	year, month, _ := now.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(salesWindowMonths - 1), 0)
}
