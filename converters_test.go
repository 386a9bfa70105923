package textdex

import (
	"testing"

	"github.com/textdex/textdex/internal/domain"
)

func TestToDomainFields_Passthrough(t *testing.T) {
	in := []Field{
		{Name: "id", DataType: DataTypeInt64, PrimaryKey: true, AutoID: true},
		{Name: "text", DataType: DataTypeVarChar, MaxLength: 1000, EnableAnalyzer: true},
	}

	out := toDomainFields(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(out))
	}
	if out[0].Name != "id" || !out[0].PrimaryKey || !out[0].AutoID {
		t.Errorf("unexpected field: %+v", out[0])
	}
	if out[1].MaxLength != 1000 || !out[1].EnableAnalyzer {
		t.Errorf("unexpected field: %+v", out[1])
	}
}

func TestToDomainIndexes_ParamsUnchanged(t *testing.T) {
	params := map[string]string{"bm25_k1": "3", "bm25_b": "1"}
	in := []Index{{Field: "sparse", IndexType: IndexTypeSparseInverted, MetricType: MetricTypeBM25, Params: params}}

	out := toDomainIndexes(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 index, got %d", len(out))
	}
	for k, v := range params {
		if out[0].Params[k] != v {
			t.Errorf("param %s: got %q, want %q", k, out[0].Params[k], v)
		}
	}
}

func TestFromDomainHits(t *testing.T) {
	in := [][]domain.Hit{
		{{ID: "1", Score: 2.5, Fields: map[string]any{"text": "a"}}},
		{},
	}

	out := fromDomainHits(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 hit lists, got %d", len(out))
	}
	if out[0][0].ID != "1" || out[0][0].Score != 2.5 {
		t.Errorf("unexpected hit: %+v", out[0][0])
	}
	if len(out[1]) != 0 {
		t.Errorf("expected empty second list, got %v", out[1])
	}
}

func TestDefaultSchema_Roundtrip(t *testing.T) {
	d := DefaultSchemaDefaults()

	fields := DefaultFields(d)
	if len(fields) != 3 {
		t.Fatalf("expected 3 default fields, got %d", len(fields))
	}
	if fields[1].MaxLength != 1000 {
		t.Errorf("expected text max length 1000, got %d", fields[1].MaxLength)
	}

	fns := DefaultFunctions()
	if len(fns) != 1 || fns[0].Type != FunctionTypeBM25 {
		t.Errorf("unexpected default functions: %+v", fns)
	}

	idxs := DefaultIndexes(d)
	if len(idxs) != 1 || idxs[0].Params["inverted_index_algo"] != "DAAT_MAXSCORE" {
		t.Errorf("unexpected default indexes: %+v", idxs)
	}
}
