package textdex

import (
	"context"
	"testing"

	"github.com/textdex/textdex/internal/db"
)

type article struct {
	Body   string `textdex:"text,text"`
	Source string `textdex:"source"`
	Year   int    `textdex:"year"`
	Secret string `textdex:"-"`
}

func TestParseSchema(t *testing.T) {
	meta, err := parseSchema[article]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}
	if meta.textIdx != 0 {
		t.Errorf("expected text field at index 0, got %d", meta.textIdx)
	}
	if len(meta.extraFields) != 2 {
		t.Errorf("expected 2 extra fields, got %d", len(meta.extraFields))
	}
}

func TestParseSchema_NoTextField(t *testing.T) {
	type noText struct {
		Source string `textdex:"source"`
	}
	if _, err := parseSchema[noText](); err == nil {
		t.Fatal("expected error for struct without text tag")
	}
}

func TestParseSchema_TextNotString(t *testing.T) {
	type badText struct {
		N int `textdex:"n,text"`
	}
	if _, err := parseSchema[badText](); err == nil {
		t.Fatal("expected error for non-string text field")
	}
}

func TestParseSchema_NotAStruct(t *testing.T) {
	if _, err := parseSchema[int](); err == nil {
		t.Fatal("expected error for non-struct type")
	}
}

func TestSchemaMeta_ToRecord(t *testing.T) {
	meta, err := parseSchema[article]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}

	rec := meta.toRecord(article{Body: "hello", Source: "wiki", Year: 2009, Secret: "x"})
	if rec[FieldText] != "hello" {
		t.Errorf("expected text=hello, got %v", rec[FieldText])
	}
	if rec["source"] != "wiki" || rec["year"] != 2009 {
		t.Errorf("unexpected extra fields: %v", rec)
	}
	if _, ok := rec["Secret"]; ok {
		t.Error("expected untagged field excluded")
	}
}

func TestTypedIndex_InsertAndSearch(t *testing.T) {
	store := &memStore{
		collections: []string{"articles"},
		hits: [][]db.Hit{
			{{ID: "9", Score: 1.2, Fields: map[string]any{"text": "hello world", "source": "wiki"}}},
		},
	}
	c := newTestClient(t, store)

	idx, err := NewIndex[article](c, "articles")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	ack, err := idx.Insert(context.Background(),
		article{Body: "hello world", Source: "wiki", Year: 2009})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if ack == nil || ack.InsertCount != 1 {
		t.Fatalf("unexpected ack: %+v", ack)
	}
	if store.insertRows[0][FieldText] != "hello world" {
		t.Errorf("unexpected insert row: %v", store.insertRows[0])
	}

	hits, err := idx.Search().Query("hello").Limit(3).Do(context.Background())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || len(hits[0]) != 1 {
		t.Fatalf("unexpected hit shape: %+v", hits)
	}
	h := hits[0][0]
	if h.ID != "9" || h.Item.Body != "hello world" || h.Item.Source != "wiki" {
		t.Errorf("unexpected typed hit: %+v", h)
	}
}

func TestTypedIndex_EnsureIdempotent(t *testing.T) {
	store := &memStore{collections: []string{"articles"}}
	c := newTestClient(t, store)

	idx, err := NewIndex[article](c, "articles")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	if err := idx.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if store.createdSpec != nil {
		t.Error("expected no remote create for existing collection")
	}
}

func TestTypedIndex_Drop(t *testing.T) {
	store := &memStore{collections: []string{"articles"}}
	c := newTestClient(t, store)

	idx, err := NewIndex[article](c, "articles")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	if err := idx.Drop(context.Background()); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if len(store.collections) != 0 {
		t.Errorf("expected collection dropped, still have %v", store.collections)
	}
}
