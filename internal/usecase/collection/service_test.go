package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/textdex/textdex/internal/domain"
)

// --- Mocks ---

type mockRepo struct {
	// lists is consumed one element per List call; the last element repeats.
	lists      [][]string
	listCalls  int
	listErr    error
	created    *domain.Collection
	createRuns int
	createErr  error
	dropped    string
	dropRuns   int
	dropErr    error
}

func (m *mockRepo) List(context.Context) ([]string, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	if len(m.lists) == 0 {
		return []string{}, nil
	}
	idx := m.listCalls - 1
	if idx >= len(m.lists) {
		idx = len(m.lists) - 1
	}
	return m.lists[idx], nil
}

func (m *mockRepo) Create(_ context.Context, col *domain.Collection) error {
	m.created = col
	m.createRuns++
	return m.createErr
}

func (m *mockRepo) Drop(_ context.Context, name string) error {
	m.dropped = name
	m.dropRuns++
	return m.dropErr
}

func defaults() ([]domain.FieldSpec, []domain.FunctionSpec, []domain.IndexSpec) {
	d := domain.DefaultSchemaDefaults()
	return domain.DefaultFields(d), domain.DefaultFunctions(), domain.DefaultIndexes(d)
}

// --- Tests ---

func TestCreate_Success(t *testing.T) {
	// Empty remote list, then the new name appears after create.
	repo := &mockRepo{lists: [][]string{{}, {"_test"}}}
	svc := New(repo, nil)

	fields, funcs, indexes := defaults()
	created, err := svc.Create(context.Background(), "_test", fields, funcs, indexes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if repo.createRuns != 1 {
		t.Errorf("expected exactly one remote create, got %d", repo.createRuns)
	}
	if repo.created.Name != "_test" {
		t.Errorf("expected collection _test, got %q", repo.created.Name)
	}
}

func TestCreate_AlreadyExists_NoOp(t *testing.T) {
	repo := &mockRepo{lists: [][]string{{"_test"}}}
	svc := New(repo, nil)

	fields, funcs, indexes := defaults()
	created, err := svc.Create(context.Background(), "_test", fields, funcs, indexes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false")
	}
	if repo.createRuns != 0 {
		t.Errorf("expected no remote create, got %d", repo.createRuns)
	}
}

func TestCreate_PostConditionFails(t *testing.T) {
	// Name never appears in the list even after create.
	repo := &mockRepo{lists: [][]string{{}, {}}}
	svc := New(repo, nil)

	fields, funcs, indexes := defaults()
	_, err := svc.Create(context.Background(), "_test", fields, funcs, indexes)
	if !errors.Is(err, domain.ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestCreate_InvalidName_NoRemoteCall(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, nil)

	fields, funcs, indexes := defaults()
	_, err := svc.Create(context.Background(), "", fields, funcs, indexes)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.listCalls != 0 || repo.createRuns != 0 {
		t.Error("validation failure must precede any remote call")
	}
}

func TestCreate_InvalidFields_NoRemoteCall(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, nil)

	_, funcs, indexes := defaults()
	_, err := svc.Create(context.Background(), "_test", nil, funcs, indexes)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.listCalls != 0 {
		t.Error("validation failure must precede any remote call")
	}
}

func TestCreate_RepoError(t *testing.T) {
	repoErr := errors.New("rpc failed")
	repo := &mockRepo{lists: [][]string{{}}, createErr: repoErr}
	svc := New(repo, nil)

	fields, funcs, indexes := defaults()
	_, err := svc.Create(context.Background(), "_test", fields, funcs, indexes)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error wrapped, got %v", err)
	}
}

func TestDrop_Success(t *testing.T) {
	repo := &mockRepo{lists: [][]string{{"_test"}, {}}}
	svc := New(repo, nil)

	dropped, err := svc.Drop(context.Background(), "_test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dropped {
		t.Error("expected dropped=true")
	}
	if repo.dropRuns != 1 || repo.dropped != "_test" {
		t.Errorf("expected one drop of _test, got %d of %q", repo.dropRuns, repo.dropped)
	}
}

func TestDrop_Absent_NoRemoteCall(t *testing.T) {
	repo := &mockRepo{lists: [][]string{{}}}
	svc := New(repo, nil)

	dropped, err := svc.Drop(context.Background(), "_test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dropped {
		t.Error("expected dropped=false")
	}
	if repo.dropRuns != 0 {
		t.Errorf("expected no remote drop, got %d", repo.dropRuns)
	}
}

func TestDrop_PostConditionFails(t *testing.T) {
	// Name remains in the list after drop.
	repo := &mockRepo{lists: [][]string{{"_test"}, {"_test"}}}
	svc := New(repo, nil)

	_, err := svc.Drop(context.Background(), "_test")
	if !errors.Is(err, domain.ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo := &mockRepo{lists: [][]string{{"a", "b"}}}
	svc := New(repo, nil)

	ok, err := svc.Exists(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected a to exist")
	}

	repo.listCalls = 0
	ok, err = svc.Exists(context.Background(), "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected c to be absent")
	}
}

func TestList_RepoError(t *testing.T) {
	listErr := errors.New("connection refused")
	svc := New(&mockRepo{listErr: listErr}, nil)

	_, err := svc.List(context.Background())
	if !errors.Is(err, listErr) {
		t.Fatalf("expected list error wrapped, got %v", err)
	}
}
