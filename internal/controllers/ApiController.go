package controllers

import (
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"gritd/internal/providers"
	"gritd/internal/services"
	"gritd/internal/structures"
	"io"
	"net/http"
)

const (
	maxRequestBodySize = 1 << 20  // 1 MB
	maxImportBodySize  = 16 << 20 // 16 MB
	maxTrendDays       = 366
)

type ApiController struct {
	logger    providers.Logger
	service   services.GritServiceInterface
	cache     providers.CacheProviderInterface
	trendDays int
}

func NewApiController(conf *structures.Config, logger providers.Logger, service services.GritServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	trendDays := conf.Tracker.TrendDays
	if trendDays <= 0 {
		trendDays = 7
	}
	return &ApiController{
		logger:    logger,
		service:   service,
		cache:     cache,
		trendDays: trendDays,
	}
}

type errorResponse struct {
	Error  string          `json:"error"`
	Fields validate.Errors `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeValidationError(w http.ResponseWriter, errs validate.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errs.One(), Fields: errs})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// decodeAndValidate answers the request itself and returns false when the
// body is unreadable or fails validation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, payload validatable) bool {
	if err := decodeBody(w, r, payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Bad Request")
		return false
	}
	if errs := payload.validate(); len(errs) > 0 {
		writeValidationError(w, errs)
		return false
	}
	return true
}

// serveFromCacheOrCompute keys cached bodies by store revision and day, so a
// mutation or a date change never serves a stale body.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, key string, compute func() any) {
	cacheKey := fmt.Sprintf("%s:%s:%d", key, ac.service.Today(), ac.service.Revision())
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	gson, err := json.Marshal(compute())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Unable to encode %s: %s", key, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
