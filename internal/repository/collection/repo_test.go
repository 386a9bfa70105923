package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/textdex/textdex/internal/db"
	"github.com/textdex/textdex/internal/domain"
)

type mockStore struct {
	listResult  []string
	listErr     error
	createdSpec *db.CollectionSpec
	createErr   error
	dropped     string
	dropErr     error
}

func (m *mockStore) ListCollections(context.Context) ([]string, error) {
	return m.listResult, m.listErr
}

func (m *mockStore) CreateCollection(_ context.Context, spec *db.CollectionSpec) error {
	m.createdSpec = spec
	return m.createErr
}

func (m *mockStore) DropCollection(_ context.Context, name string) error {
	m.dropped = name
	return m.dropErr
}

func defaultCollection(name string) *domain.Collection {
	d := domain.DefaultSchemaDefaults()
	return &domain.Collection{
		Name:      name,
		Fields:    domain.DefaultFields(d),
		Functions: domain.DefaultFunctions(),
		Indexes:   domain.DefaultIndexes(d),
	}
}

func TestCreate_SpecPassedThrough(t *testing.T) {
	st := &mockStore{}
	repo := New(st)

	col := defaultCollection("_test")
	if err := repo.Create(context.Background(), col); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := st.createdSpec
	if spec == nil {
		t.Fatal("expected create call")
	}
	if spec.Name != "_test" {
		t.Errorf("expected name _test, got %q", spec.Name)
	}
	if len(spec.Fields) != len(col.Fields) {
		t.Fatalf("expected %d fields, got %d", len(col.Fields), len(spec.Fields))
	}
	for i, f := range col.Fields {
		got := spec.Fields[i]
		if got.Name != f.Name || got.DataType != f.DataType ||
			got.PrimaryKey != f.PrimaryKey || got.AutoID != f.AutoID ||
			got.MaxLength != f.MaxLength || got.EnableAnalyzer != f.EnableAnalyzer {
			t.Errorf("field %d changed in conversion: want %+v, got %+v", i, f, got)
		}
	}
	if len(spec.Functions) != 1 || spec.Functions[0].Name != "text_bm25_emb" {
		t.Errorf("unexpected functions: %+v", spec.Functions)
	}
	if len(spec.Indexes) != 1 {
		t.Fatalf("expected 1 index, got %d", len(spec.Indexes))
	}
	for k, v := range col.Indexes[0].Params {
		if spec.Indexes[0].Params[k] != v {
			t.Errorf("index param %q: want %q unchanged, got %q", k, v, spec.Indexes[0].Params[k])
		}
	}
	if !spec.DynamicFields {
		t.Error("expected dynamic fields enabled")
	}
}

func TestCreate_StoreError(t *testing.T) {
	storeErr := errors.New("rpc failed")
	repo := New(&mockStore{createErr: storeErr})

	err := repo.Create(context.Background(), defaultCollection("_test"))
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error wrapped, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo := New(&mockStore{listResult: []string{"a", "b"}})

	names, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %d", len(names))
	}
}

func TestDrop_Success(t *testing.T) {
	st := &mockStore{}
	repo := New(st)

	if err := repo.Drop(context.Background(), "_test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.dropped != "_test" {
		t.Errorf("expected drop of _test, got %q", st.dropped)
	}
}
