package controllers

import (
	"gritd/internal/calendar"
	"gritd/internal/providers"
	"net/http"
	"strconv"
)

const (
	defaultRecentLimit = 10
	minDate            = "0000-01-01"
	maxDate            = "9999-12-31"
)

// GetLogs lists logs between the optional from and to dates, newest first.
func (ac *ApiController) GetLogs(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" {
		from = minDate
	} else if !calendar.IsDate(from) {
		writeError(w, http.StatusBadRequest, "from must be a YYYY-MM-DD date")
		return
	}
	if to == "" {
		to = maxDate
	} else if !calendar.IsDate(to) {
		writeError(w, http.StatusBadRequest, "to must be a YYYY-MM-DD date")
		return
	}
	writeJSON(w, http.StatusOK, ac.service.LogsForDateRange(from, to))
}

func (ac *ApiController) GetRecentLogs(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, ac.service.RecentLogs(limit))
}

func (ac *ApiController) GetLog(w http.ResponseWriter, r *http.Request) {
	log, ok := ac.service.Log(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (ac *ApiController) CreateLog(w http.ResponseWriter, r *http.Request) {
	var payload logPayload
	if !decodeAndValidate(w, r, &payload) {
		return
	}
	log := ac.service.AddLog(payload.toModel())
	ac.logger.Infof(providers.TypePost, "Log %s recorded for %s (%s, score %d)",
		log.ID, log.Date, calendar.FormatMinutes(log.EnduredTime), log.EnduranceScore)
	writeJSON(w, http.StatusCreated, log)
}

func (ac *ApiController) UpdateLog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	current, ok := ac.service.Log(id)
	if !ok {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}

	var patch logPatchPayload
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if errs := patch.merged(current).validate(); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	log, ok := ac.service.UpdateLog(id, patch.toModel())
	if !ok {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (ac *ApiController) DeleteLog(w http.ResponseWriter, r *http.Request) {
	if !ac.service.DeleteLog(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
