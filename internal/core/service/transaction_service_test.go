package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubTransactionRepo struct {
	byID       map[string]*domain.Transaction
	createErr  error // if set, Create returns this error
	lastFilter ports.TransactionFilter
	listResult []*domain.Transaction
	listErr    error
	seq        int
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{byID: make(map[string]*domain.Transaction)}
}

func (r *stubTransactionRepo) Create(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *t
	clone.ID = fmt.Sprintf("tx_%d", r.seq)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTransactionRepo) List(_ context.Context, f ports.TransactionFilter) ([]*domain.Transaction, error) {
	r.lastFilter = f
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listResult, nil
}

// stubDispatcher records enqueued touches synchronously.
type stubDispatcher struct {
	touches []ports.CustomerTouch
}

func (d *stubDispatcher) Enqueue(touch ports.CustomerTouch) {
	d.touches = append(d.touches, touch)
}

var discardLogger = zerolog.Nop()

func saleFixture() *domain.Transaction {
	return &domain.Transaction{
		Customer:  domain.CustomerSnapshot{ID: "cus_1", Name: "Maya Lindqvist"},
		Therapist: domain.TherapistSnapshot{ID: "usr_7", Name: "Priya Shah"},
		Items: []domain.LineItem{
			{Name: "Facial", Category: "skincare", Price: 50, Quantity: 1},
		},
		Subtotal:      50,
		Discount:      5,
		Total:         45,
		PaymentMethod: "CASH",
	}
}

// ---------------------------------------------------------------------------
// Record tests
// ---------------------------------------------------------------------------

func TestTransactionService_Record_Success(t *testing.T) {
	repo := newStubTransactionRepo()
	disp := &stubDispatcher{}
	svc := NewTransactionService(repo, disp, discardLogger)

	created, err := svc.Record(context.Background(), saleFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Error("expected an assigned id")
	}
	if created.PaymentMethod != domain.PaymentCash {
		t.Errorf("payment method must be normalized to cash, got %q", created.PaymentMethod)
	}
	if created.Status != domain.TransactionCompleted {
		t.Errorf("expected default status completed, got %q", created.Status)
	}
	if created.Date.IsZero() {
		t.Error("Date must default to now")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}

func TestTransactionService_Record_EnqueuesLastVisitTouch(t *testing.T) {
	repo := newStubTransactionRepo()
	disp := &stubDispatcher{}
	svc := NewTransactionService(repo, disp, discardLogger)

	created, err := svc.Record(context.Background(), saleFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(disp.touches) != 1 {
		t.Fatalf("expected 1 touch, got %d", len(disp.touches))
	}
	touch := disp.touches[0]
	if touch.Kind != ports.TouchLastVisit {
		t.Errorf("expected kind %q, got %q", ports.TouchLastVisit, touch.Kind)
	}
	if touch.CustomerID != "cus_1" {
		t.Errorf("expected customer cus_1, got %q", touch.CustomerID)
	}
	if !touch.OccurredAt.Equal(created.Date) {
		t.Errorf("touch timestamp must be the sale date: want %v, got %v", created.Date, touch.OccurredAt)
	}
}

func TestTransactionService_Record_ValidationFailureWritesNothing(t *testing.T) {
	repo := newStubTransactionRepo()
	disp := &stubDispatcher{}
	svc := NewTransactionService(repo, disp, discardLogger)

	bad := saleFixture()
	bad.Total = 40 // arithmetic mismatch

	_, err := svc.Record(context.Background(), bad)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(repo.byID) != 0 {
		t.Errorf("nothing must be persisted on validation failure, found %d records", len(repo.byID))
	}
	if len(disp.touches) != 0 {
		t.Errorf("no touch must be enqueued on validation failure, found %d", len(disp.touches))
	}
}

func TestTransactionService_Record_RepoError(t *testing.T) {
	repo := newStubTransactionRepo()
	repo.createErr = errors.New("db unavailable")
	disp := &stubDispatcher{}
	svc := NewTransactionService(repo, disp, discardLogger)

	_, err := svc.Record(context.Background(), saleFixture())
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
	if len(disp.touches) != 0 {
		t.Error("no touch must be enqueued when the write fails")
	}
}

func TestTransactionService_Record_KeepsSubmittedDate(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewTransactionService(repo, &stubDispatcher{}, discardLogger)

	sale := saleFixture()
	sale.Date = time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)

	created, err := svc.Record(context.Background(), sale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Date.Equal(sale.Date) {
		t.Errorf("submitted date must be kept: want %v, got %v", sale.Date, created.Date)
	}
}

// ---------------------------------------------------------------------------
// Get / List tests
// ---------------------------------------------------------------------------

func TestTransactionService_Get_NotFound(t *testing.T) {
	svc := NewTransactionService(newStubTransactionRepo(), &stubDispatcher{}, discardLogger)

	_, err := svc.Get(context.Background(), "tx_missing")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionService_List_PassesFilter(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewTransactionService(repo, &stubDispatcher{}, discardLogger)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)
	_, err := svc.List(context.Background(), ports.TransactionFilter{
		From:        from,
		To:          to,
		TherapistID: "usr_7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.lastFilter.From.Equal(from) || !repo.lastFilter.To.Equal(to) {
		t.Error("date range must be forwarded to the repository")
	}
	if repo.lastFilter.TherapistID != "usr_7" {
		t.Errorf("therapist filter must be forwarded, got %q", repo.lastFilter.TherapistID)
	}
}
