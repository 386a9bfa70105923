package document

import (
	"context"
	"errors"
	"testing"

	"github.com/textdex/textdex/internal/domain"
)

// --- Mocks ---

type mockRepo struct {
	insertRuns    int
	insertedRecs  []domain.Record
	insertAck     *domain.InsertAck
	insertErr     error
	deleteRuns    int
	deletedIDs    []string
	deleteCount   int64
	deleteErr     error
}

func (m *mockRepo) Insert(_ context.Context, _ string, records []domain.Record) (*domain.InsertAck, error) {
	m.insertRuns++
	m.insertedRecs = records
	return m.insertAck, m.insertErr
}

func (m *mockRepo) Delete(_ context.Context, _ string, ids []string) (int64, error) {
	m.deleteRuns++
	m.deletedIDs = ids
	return m.deleteCount, m.deleteErr
}

type mockColls struct {
	names   []string
	listErr error
}

func (m *mockColls) List(context.Context) ([]string, error) {
	return m.names, m.listErr
}

// --- Tests ---

func TestInsert_Success(t *testing.T) {
	repo := &mockRepo{insertAck: &domain.InsertAck{InsertCount: 2}}
	svc := New(repo, &mockColls{names: []string{"_test"}}, nil)

	records := []domain.Record{{"text": "a"}, {"text": "b"}}
	ack, err := svc.Insert(context.Background(), "_test", records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack == nil || ack.InsertCount != 2 {
		t.Fatalf("unexpected ack: %+v", ack)
	}
	if repo.insertRuns != 1 {
		t.Errorf("expected one remote insert, got %d", repo.insertRuns)
	}
	if len(repo.insertedRecs) != 2 {
		t.Errorf("expected 2 records forwarded, got %d", len(repo.insertedRecs))
	}
}

func TestInsert_CollectionAbsent_NilResult(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockColls{names: []string{}}, nil)

	ack, err := svc.Insert(context.Background(), "_test", []domain.Record{{"text": "a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack != nil {
		t.Errorf("expected nil ack for absent collection, got %+v", ack)
	}
	if repo.insertRuns != 0 {
		t.Error("expected no remote insert for absent collection")
	}
}

func TestInsert_InvalidRecords_NoRemoteCall(t *testing.T) {
	repo := &mockRepo{}
	colls := &mockColls{names: []string{"_test"}}
	svc := New(repo, colls, nil)

	_, err := svc.Insert(context.Background(), "_test", []domain.Record{nil})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.insertRuns != 0 {
		t.Error("validation failure must precede any remote call")
	}
}

func TestInsert_EmptyName(t *testing.T) {
	svc := New(&mockRepo{}, &mockColls{}, nil)

	_, err := svc.Insert(context.Background(), "", []domain.Record{{"text": "a"}})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestInsert_NilAck_ValidationError(t *testing.T) {
	repo := &mockRepo{insertAck: nil}
	svc := New(repo, &mockColls{names: []string{"_test"}}, nil)

	_, err := svc.Insert(context.Background(), "_test", []domain.Record{{"text": "a"}})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing ack, got %v", err)
	}
}

func TestInsert_RepoError(t *testing.T) {
	repoErr := errors.New("rpc failed")
	repo := &mockRepo{insertErr: repoErr}
	svc := New(repo, &mockColls{names: []string{"_test"}}, nil)

	_, err := svc.Insert(context.Background(), "_test", []domain.Record{{"text": "a"}})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error wrapped, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo := &mockRepo{deleteCount: 3}
	svc := New(repo, &mockColls{names: []string{"_test"}}, nil)

	n, err := svc.Delete(context.Background(), "_test", []string{"1", "2", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 deleted, got %d", n)
	}
	if repo.deleteRuns != 1 {
		t.Errorf("expected one remote delete, got %d", repo.deleteRuns)
	}
}

func TestDelete_CollectionAbsent_NoRemoteCall(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockColls{names: []string{}}, nil)

	n, err := svc.Delete(context.Background(), "_test", []string{"1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted, got %d", n)
	}
	if repo.deleteRuns != 0 {
		t.Error("expected no remote delete for absent collection")
	}
}

func TestDelete_EmptyIDs(t *testing.T) {
	svc := New(&mockRepo{}, &mockColls{names: []string{"_test"}}, nil)

	_, err := svc.Delete(context.Background(), "_test", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDelete_ListError(t *testing.T) {
	listErr := errors.New("connection refused")
	svc := New(&mockRepo{}, &mockColls{listErr: listErr}, nil)

	_, err := svc.Delete(context.Background(), "_test", []string{"1"})
	if !errors.Is(err, listErr) {
		t.Fatalf("expected list error wrapped, got %v", err)
	}
}
