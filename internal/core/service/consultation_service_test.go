package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

type stubConsultationRepo struct {
	byID map[string]*domain.ConsultationForm
	seq  int
}

func newStubConsultationRepo() *stubConsultationRepo {
	return &stubConsultationRepo{byID: make(map[string]*domain.ConsultationForm)}
}

func (r *stubConsultationRepo) Create(_ context.Context, f *domain.ConsultationForm) (*domain.ConsultationForm, error) {
	r.seq++
	clone := *f
	clone.ID = fmt.Sprintf("frm_%d", r.seq)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubConsultationRepo) FindByID(_ context.Context, id string) (*domain.ConsultationForm, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrConsultationNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubConsultationRepo) ListByCustomer(_ context.Context, customerID string) ([]*domain.ConsultationForm, error) {
	var out []*domain.ConsultationForm
	for _, f := range r.byID {
		if f.CustomerID == customerID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubConsultationRepo) Update(_ context.Context, f *domain.ConsultationForm) error {
	if _, ok := r.byID[f.ID]; !ok {
		return domain.ErrConsultationNotFound
	}
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubConsultationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrConsultationNotFound
	}
	delete(r.byID, id)
	return nil
}

func draftForm() *domain.ConsultationForm {
	return &domain.ConsultationForm{
		CustomerID: "cus_1",
		Answers: []domain.ConsultationAnswer{
			{Question: "Any allergies?", Answer: "None"},
		},
	}
}

func TestConsultationService_Create_DefaultsToDraft(t *testing.T) {
	repo := newStubConsultationRepo()
	disp := &stubDispatcher{}
	svc := NewConsultationService(repo, disp, discardLogger)

	created, err := svc.Create(context.Background(), draftForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != domain.ConsultationDraft {
		t.Errorf("expected draft, got %q", created.Status)
	}
	if created.CompletedAt != nil {
		t.Error("draft must have no completion timestamp")
	}
	if len(disp.touches) != 0 {
		t.Errorf("draft must not enqueue a touch, got %d", len(disp.touches))
	}
}

func TestConsultationService_Create_CompletedEnqueuesTouch(t *testing.T) {
	repo := newStubConsultationRepo()
	disp := &stubDispatcher{}
	svc := NewConsultationService(repo, disp, discardLogger)

	form := draftForm()
	form.Status = domain.ConsultationCompleted

	created, err := svc.Create(context.Background(), form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CompletedAt == nil {
		t.Fatal("completed form must carry a completion timestamp")
	}

	if len(disp.touches) != 1 {
		t.Fatalf("expected 1 touch, got %d", len(disp.touches))
	}
	touch := disp.touches[0]
	if touch.Kind != ports.TouchConsultation {
		t.Errorf("expected kind %q, got %q", ports.TouchConsultation, touch.Kind)
	}
	if !touch.OccurredAt.Equal(*created.CompletedAt) {
		t.Error("touch timestamp must match CompletedAt")
	}
}

func TestConsultationService_Update_CompletionEnqueuesOnce(t *testing.T) {
	repo := newStubConsultationRepo()
	disp := &stubDispatcher{}
	svc := NewConsultationService(repo, disp, discardLogger)

	created, _ := svc.Create(context.Background(), draftForm())

	completed, err := svc.Update(context.Background(), created.ID, &domain.ConsultationForm{
		Status: domain.ConsultationCompleted,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Fatal("completion must stamp CompletedAt")
	}
	if len(disp.touches) != 1 {
		t.Fatalf("expected 1 touch after completion, got %d", len(disp.touches))
	}

	// A second save of an already-completed form must not enqueue again.
	if _, err := svc.Update(context.Background(), created.ID, &domain.ConsultationForm{
		TherapistID: "usr_7",
	}); err != nil {
		t.Fatalf("second update: %v", err)
	}
	if len(disp.touches) != 1 {
		t.Errorf("already-completed form must not re-enqueue, got %d touches", len(disp.touches))
	}
}

func TestConsultationService_Update_KeepsOriginalCompletionTime(t *testing.T) {
	repo := newStubConsultationRepo()
	svc := NewConsultationService(repo, &stubDispatcher{}, discardLogger)

	form := draftForm()
	form.Status = domain.ConsultationCompleted
	created, _ := svc.Create(context.Background(), form)
	original := *created.CompletedAt

	updated, err := svc.Update(context.Background(), created.ID, &domain.ConsultationForm{
		TherapistID: "usr_7",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CompletedAt.Equal(original) {
		t.Errorf("CompletedAt must not move on later edits: want %v, got %v", original, updated.CompletedAt)
	}
}

func TestConsultationService_Create_RequiresCustomer(t *testing.T) {
	svc := NewConsultationService(newStubConsultationRepo(), &stubDispatcher{}, discardLogger)

	_, err := svc.Create(context.Background(), &domain.ConsultationForm{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "customer_id" {
		t.Errorf("expected customer_id validation error, got %v", err)
	}
}
