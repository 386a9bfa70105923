package textdex

import "github.com/textdex/textdex/internal/domain"

func toDomainFields(ff []Field) []domain.FieldSpec {
	out := make([]domain.FieldSpec, len(ff))
	for i, f := range ff {
		out[i] = domain.FieldSpec(f)
	}
	return out
}

func toDomainFunctions(ff []Function) []domain.FunctionSpec {
	out := make([]domain.FunctionSpec, len(ff))
	for i, f := range ff {
		out[i] = domain.FunctionSpec{
			Name:         f.Name,
			Type:         f.Type,
			InputFields:  f.InputFields,
			OutputFields: f.OutputFields,
		}
	}
	return out
}

func toDomainIndexes(ii []Index) []domain.IndexSpec {
	out := make([]domain.IndexSpec, len(ii))
	for i, ix := range ii {
		out[i] = domain.IndexSpec{
			Field:      ix.Field,
			IndexType:  ix.IndexType,
			MetricType: ix.MetricType,
			Params:     ix.Params,
		}
	}
	return out
}

func fromDomainHits(results [][]domain.Hit) [][]Hit {
	out := make([][]Hit, len(results))
	for i, hits := range results {
		out[i] = make([]Hit, len(hits))
		for j, h := range hits {
			out[i][j] = Hit{ID: h.ID, Score: h.Score, Fields: h.Fields}
		}
	}
	return out
}

func fromDomainFields(ff []domain.FieldSpec) []Field {
	out := make([]Field, len(ff))
	for i, f := range ff {
		out[i] = Field(f)
	}
	return out
}

func fromDomainFunctions(ff []domain.FunctionSpec) []Function {
	out := make([]Function, len(ff))
	for i, f := range ff {
		out[i] = Function{
			Name:         f.Name,
			Type:         f.Type,
			InputFields:  f.InputFields,
			OutputFields: f.OutputFields,
		}
	}
	return out
}

func fromDomainIndexes(ii []domain.IndexSpec) []Index {
	out := make([]Index, len(ii))
	for i, ix := range ii {
		out[i] = Index{
			Field:      ix.Field,
			IndexType:  ix.IndexType,
			MetricType: ix.MetricType,
			Params:     ix.Params,
		}
	}
	return out
}
