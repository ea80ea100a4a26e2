package controllers

import (
	"gritd/internal/calendar"
	"gritd/internal/models"
	"gritd/internal/providers"
	"net/http"
	"strconv"
)

type cacheResponse struct {
	WeeklyStats   map[string]models.WeeklyStats  `json:"weeklyStats"`
	MonthlyStats  map[string]models.MonthlyStats `json:"monthlyStats"`
	ResponseCache providers.CacheStats           `json:"responseCache"`
}

func (ac *ApiController) GetSummary(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "stats:summary", func() any {
		return ac.service.Summary()
	})
}

func (ac *ApiController) GetTrend(w http.ResponseWriter, r *http.Request) {
	days := ac.trendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTrendDays {
			writeError(w, http.StatusBadRequest, "days must be between 1 and 366")
			return
		}
		days = n
	}
	ac.serveFromCacheOrCompute(w, "stats:trend:"+strconv.Itoa(days), func() any {
		return ac.service.ScoreTrend(days)
	})
}

// GetWeeklyStats accepts any date and reports the week containing it.
func (ac *ApiController) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	weekStart, err := calendar.WeekStart(r.PathValue("weekStart"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "weekStart must be a YYYY-MM-DD date")
		return
	}
	ac.serveFromCacheOrCompute(w, "stats:weekly:"+weekStart, func() any {
		return ac.service.WeeklyStats(weekStart)
	})
}

func (ac *ApiController) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	month := r.PathValue("month")
	if _, err := calendar.ParseMonth(month); err != nil {
		writeError(w, http.StatusBadRequest, "month must be a YYYY-MM month")
		return
	}
	ac.serveFromCacheOrCompute(w, "stats:monthly:"+month, func() any {
		return ac.service.MonthlyStats(month)
	})
}

func (ac *ApiController) GetStatsCache(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cacheResponse{
		WeeklyStats:   ac.service.CachedWeeklyStats(),
		MonthlyStats:  ac.service.CachedMonthlyStats(),
		ResponseCache: ac.cache.Stats(),
	})
}
