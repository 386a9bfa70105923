// Package chi exposes the textdex usecases over an HTTP JSON API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/textdex/textdex/internal/db"
	"github.com/textdex/textdex/internal/domain"
	collectionuc "github.com/textdex/textdex/internal/usecase/collection"
	documentuc "github.com/textdex/textdex/internal/usecase/document"
	healthuc "github.com/textdex/textdex/internal/usecase/health"
	searchuc "github.com/textdex/textdex/internal/usecase/search"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeCollectionNotFound = "collection_not_found"
	codeUpstreamError      = "upstream_error"
	codeInvariantViolated  = "invariant_violated"
	codeInternalError      = "internal_error"
)

// Server handles the HTTP API on top of the usecase services.
type Server struct {
	collections  *collectionuc.Service
	documents    *documentuc.Service
	search       *searchuc.Service
	health       *healthuc.Service
	logger       *zap.Logger
	defaults     domain.SchemaDefaults
	defaultLimit int
}

// NewServer creates an HTTP API server.
func NewServer(
	collections *collectionuc.Service,
	documents *documentuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
	defaults domain.SchemaDefaults,
	defaultLimit int,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLimit <= 0 {
		defaultLimit = 3
	}
	return &Server{
		collections:  collections,
		documents:    documents,
		search:       search,
		health:       health,
		logger:       logger,
		defaults:     defaults,
		defaultLimit: defaultLimit,
	}
}

// Routes registers all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/collections", s.ListCollections)
		r.Post("/collections", s.CreateCollection)
		r.Delete("/collections/{collection}", s.DropCollection)

		r.Post("/collections/{collection}/documents", s.InsertDocuments)
		r.Delete("/collections/{collection}/documents", s.DeleteDocuments)
		r.Post("/collections/{collection}/search", s.SearchDocuments)
	})
}

type fieldDTO struct {
	Name           string `json:"name"`
	DataType       string `json:"data_type"`
	PrimaryKey     bool   `json:"primary_key,omitempty"`
	AutoID         bool   `json:"auto_id,omitempty"`
	MaxLength      int    `json:"max_length,omitempty"`
	EnableAnalyzer bool   `json:"enable_analyzer,omitempty"`
}

type functionDTO struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	InputFields  []string `json:"input_fields"`
	OutputFields []string `json:"output_fields"`
}

type indexDTO struct {
	Field      string            `json:"field"`
	IndexType  string            `json:"index_type"`
	MetricType string            `json:"metric_type"`
	Params     map[string]string `json:"params,omitempty"`
}

type createCollectionRequest struct {
	Name      string        `json:"name"`
	Fields    []fieldDTO    `json:"fields,omitempty"`
	Functions []functionDTO `json:"functions,omitempty"`
	Indexes   []indexDTO    `json:"indexes,omitempty"`
}

type createCollectionResponse struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
}

// CreateCollection handles POST /api/v1/collections.
// Omitted fields/functions/indexes fall back to the default BM25 schema.
func (s *Server) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fields := make([]domain.FieldSpec, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = domain.FieldSpec(f)
	}
	functions := make([]domain.FunctionSpec, len(req.Functions))
	for i, f := range req.Functions {
		functions[i] = domain.FunctionSpec(f)
	}
	indexes := make([]domain.IndexSpec, len(req.Indexes))
	for i, ix := range req.Indexes {
		indexes[i] = domain.IndexSpec(ix)
	}

	if len(fields) == 0 {
		fields = domain.DefaultFields(s.defaults)
		if len(functions) == 0 {
			functions = domain.DefaultFunctions()
		}
		if len(indexes) == 0 {
			indexes = domain.DefaultIndexes(s.defaults)
		}
	}

	created, err := s.collections.Create(r.Context(), req.Name, fields, functions, indexes)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, createCollectionResponse{Name: req.Name, Created: created})
}

type collectionListResponse struct {
	Items []string `json:"items"`
}

// ListCollections handles GET /api/v1/collections.
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	names, err := s.collections.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, collectionListResponse{Items: names})
}

// DropCollection handles DELETE /api/v1/collections/{collection}.
// Dropping an absent collection is a no-op and still returns 204.
func (s *Server) DropCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")

	if _, err := s.collections.Drop(r.Context(), name); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type insertRequest struct {
	Documents []domain.Record `json:"documents"`
}

type insertResponse struct {
	InsertCount int64    `json:"insert_count"`
	IDs         []string `json:"ids,omitempty"`
}

// InsertDocuments handles POST /api/v1/collections/{collection}/documents.
func (s *Server) InsertDocuments(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var req insertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ack, err := s.documents.Insert(r.Context(), collection, req.Documents)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if ack == nil {
		writeError(w, http.StatusNotFound, codeCollectionNotFound, "collection does not exist")
		return
	}

	writeJSON(w, http.StatusOK, insertResponse{InsertCount: ack.InsertCount, IDs: ack.IDs})
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

type deleteResponse struct {
	DeleteCount int64 `json:"delete_count"`
}

// DeleteDocuments handles DELETE /api/v1/collections/{collection}/documents.
// Deleting from an absent collection reports zero deletions.
func (s *Server) DeleteDocuments(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	n, err := s.documents.Delete(r.Context(), collection, req.IDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{DeleteCount: n})
}

type searchRequest struct {
	Queries []string `json:"queries"`
	Limit   int      `json:"limit,omitempty"`
}

type hitDTO struct {
	ID     string         `json:"id"`
	Score  float32        `json:"score"`
	Fields map[string]any `json:"fields,omitempty"`
}

type searchResponse struct {
	Results [][]hitDTO `json:"results"`
}

// SearchDocuments handles POST /api/v1/collections/{collection}/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	results, err := s.search.FullText(r.Context(), collection, req.Queries, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if results == nil {
		writeError(w, http.StatusNotFound, codeCollectionNotFound, "collection does not exist")
		return
	}

	out := make([][]hitDTO, len(results))
	for i, hits := range results {
		out[i] = make([]hitDTO, len(hits))
		for j, h := range hits {
			out[i][j] = hitDTO{ID: h.ID, Score: h.Score, Fields: h.Fields}
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: out})
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrInvariant):
		s.logger.Error("invariant violated", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInvariantViolated, err.Error())
	case errors.Is(err, db.ErrUnreachable):
		s.logger.Error("database unreachable", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, codeUpstreamError, "database unreachable")
	default:
		var dbErr *db.Error
		if errors.As(err, &dbErr) {
			s.logger.Error("database error", zap.String("op", dbErr.Op), zap.Error(err))
			writeError(w, http.StatusBadGateway, codeUpstreamError, "database operation failed")
			return
		}
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
