package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

type stubReportCache struct {
	store    map[string]*ports.ReportResult
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func newStubReportCache() *stubReportCache {
	return &stubReportCache{store: make(map[string]*ports.ReportResult)}
}

func (c *stubReportCache) Get(_ context.Context, key string) (*ports.ReportResult, error) {
	c.getCalls++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.store[key], nil
}

func (c *stubReportCache) Set(_ context.Context, key string, result *ports.ReportResult) error {
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	c.store[key] = result
	return nil
}

func reportRange() ports.ReportInput {
	return ports.ReportInput{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestReportService_Run_ComputesSummary(t *testing.T) {
	repo := newStubTransactionRepo()
	repo.listResult = []*domain.Transaction{
		{Subtotal: 50, Discount: 5, Total: 45},
		{Subtotal: 120.10, Discount: 0, Total: 120.10},
		{Subtotal: 30, Discount: 10, Total: 20},
	}
	svc := NewReportService(repo, newStubReportCache(), discardLogger)

	result, err := svc.Run(context.Background(), reportRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary.TransactionCount != 3 {
		t.Errorf("count: want 3, got %d", result.Summary.TransactionCount)
	}
	if result.Summary.Subtotal != 200.10 {
		t.Errorf("subtotal: want 200.10, got %v", result.Summary.Subtotal)
	}
	if result.Summary.Discount != 15 {
		t.Errorf("discount: want 15, got %v", result.Summary.Discount)
	}
	if result.Summary.Total != 185.10 {
		t.Errorf("total: want 185.10, got %v", result.Summary.Total)
	}
}

func TestReportService_Run_RoundsToTwoDecimals(t *testing.T) {
	repo := newStubTransactionRepo()
	// 0.1 + 0.2 style float drift must not leak into the summary.
	repo.listResult = []*domain.Transaction{
		{Subtotal: 0.1, Total: 0.1},
		{Subtotal: 0.2, Total: 0.2},
	}
	svc := NewReportService(repo, newStubReportCache(), discardLogger)

	result, err := svc.Run(context.Background(), reportRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary.Total != 0.3 {
		t.Errorf("total must be rounded to 0.3, got %v", result.Summary.Total)
	}
}

func TestReportService_Run_EmptyRangeReturnsEmptySlice(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewReportService(repo, newStubReportCache(), discardLogger)

	result, err := svc.Run(context.Background(), reportRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Transactions == nil {
		t.Error("transactions must be an empty slice, not nil")
	}
	if result.Summary.TransactionCount != 0 {
		t.Errorf("count: want 0, got %d", result.Summary.TransactionCount)
	}
}

func TestReportService_Run_MissingDates(t *testing.T) {
	svc := NewReportService(newStubTransactionRepo(), newStubReportCache(), discardLogger)

	_, err := svc.Run(context.Background(), ports.ReportInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReportService_Run_EndBeforeStart(t *testing.T) {
	svc := NewReportService(newStubTransactionRepo(), newStubReportCache(), discardLogger)

	in := reportRange()
	in.StartDate, in.EndDate = in.EndDate, in.StartDate
	_, err := svc.Run(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "endDate" {
		t.Errorf("expected endDate validation error, got %v", err)
	}
}

func TestReportService_Run_ForwardsFilters(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewReportService(repo, newStubReportCache(), discardLogger)

	in := reportRange()
	in.TherapistID = "usr_7"
	in.CustomerID = "cus_1"
	in.Category = "skincare"
	if _, err := svc.Run(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.TherapistID != "usr_7" ||
		repo.lastFilter.CustomerID != "cus_1" ||
		repo.lastFilter.Category != "skincare" {
		t.Errorf("filters must be forwarded, got %+v", repo.lastFilter)
	}
	if !repo.lastFilter.From.Equal(in.StartDate) || !repo.lastFilter.To.Equal(in.EndDate) {
		t.Error("date range must be forwarded")
	}
}

func TestReportService_Run_CacheHitSkipsStore(t *testing.T) {
	repo := newStubTransactionRepo()
	repo.listResult = []*domain.Transaction{{Subtotal: 50, Total: 50}}
	cache := newStubReportCache()
	svc := NewReportService(repo, cache, discardLogger)

	in := reportRange()
	first, err := svc.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	// The store must not be queried again on a warm cache.
	repo.listErr = errors.New("store must not be hit")
	second, err := svc.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Summary != first.Summary {
		t.Errorf("cached summary mismatch: %+v vs %+v", second.Summary, first.Summary)
	}
}

func TestReportService_Run_CacheFailureFallsThrough(t *testing.T) {
	repo := newStubTransactionRepo()
	repo.listResult = []*domain.Transaction{{Subtotal: 50, Total: 50}}
	cache := newStubReportCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewReportService(repo, cache, discardLogger)

	result, err := svc.Run(context.Background(), reportRange())
	if err != nil {
		t.Fatalf("cache failure must not fail the report: %v", err)
	}
	if result.Summary.TransactionCount != 1 {
		t.Errorf("count: want 1, got %d", result.Summary.TransactionCount)
	}
}

func TestReportService_Run_DistinctFiltersDistinctCacheKeys(t *testing.T) {
	a := reportRange()
	b := reportRange()
	b.TherapistID = "usr_7"

	if cacheKey(a) == cacheKey(b) {
		t.Error("different filters must produce different cache keys")
	}
}
