package controllers

import (
	"gritd/internal/calendar"
	"net/http"
)

func (ac *ApiController) GetReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Reviews())
}

// SaveReview stores the review of a week, replacing an earlier one.
func (ac *ApiController) SaveReview(w http.ResponseWriter, r *http.Request) {
	var payload reviewPayload
	if !decodeAndValidate(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, ac.service.SaveWeeklyReview(payload.toModel()))
}

func (ac *ApiController) GetWeekReview(w http.ResponseWriter, r *http.Request) {
	weekStart, err := calendar.WeekStart(r.PathValue("weekStart"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "weekStart must be a YYYY-MM-DD date")
		return
	}
	review, ok := ac.service.GetWeeklyReview(weekStart)
	if !ok {
		writeError(w, http.StatusNotFound, "no review for this week")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (ac *ApiController) GetReviewDetails(w http.ResponseWriter, r *http.Request) {
	details, ok := ac.service.ReviewDetails(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "review not found")
		return
	}
	writeJSON(w, http.StatusOK, details)
}
