package service

import (
	"context"
	"testing"
	"time"

	"varniya_crm_backend/internal/dashboard/repository"
	"varniya_crm_backend/platform/logger"
)

type emptyStore struct{}

func (emptyStore) GetTotals(context.Context, *int64) (repository.Totals, error) {
	return repository.Totals{}, nil
}

func (emptyStore) CountLeadsByStage(context.Context, *int64) (map[string]int, error) {
	return map[string]int{}, nil
}

func (emptyStore) CountLeadsBySource(context.Context, *int64) (map[string]int, error) {
	return map[string]int{}, nil
}

func (emptyStore) SalesByMonth(context.Context, *int64, time.Time) ([]repository.MonthlySales, error) {
	return nil, nil
}

func TestComputeEmptyStore(t *testing.T) {
	svc := New(emptyStore{}, logger.New("development"))

	stats, err := svc.Compute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if stats.TotalLeads != 0 || stats.ActiveDeals != 0 || stats.CompletedSales != 0 {
		t.Errorf("lead counters not zero: %+v", stats)
	}
	if stats.Revenue != 0 {
		t.Errorf("revenue = %v, want 0", stats.Revenue)
	}
	if stats.HighIntentBrowsers != 0 || stats.PendingFollowUps != 0 {
		t.Errorf("browser/follow-up counters not zero: %+v", stats)
	}
	if len(stats.LeadsByStage) != 0 || len(stats.LeadsBySource) != 0 {
		t.Errorf("grouped counts not empty: %+v", stats)
	}
	if stats.SalesByMonth == nil || len(stats.SalesByMonth) != 0 {
		t.Errorf("salesByMonth = %v, want empty non-nil slice", stats.SalesByMonth)
	}
}

func TestSalesWindowStart(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"mid-month",
			time.Date(2026, time.August, 31, 15, 30, 0, 0, time.UTC),
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"window crosses the year boundary",
			time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"first of month",
			time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		if got := salesWindowStart(tc.now); !got.Equal(tc.want) {
			t.Errorf("%s: salesWindowStart(%v) = %v, want %v", tc.name, tc.now, got, tc.want)
		}
	}
}
