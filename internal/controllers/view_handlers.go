package controllers

import (
	"gritd/internal/services"
	"net/http"
)

func (ac *ApiController) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewPayload{View: string(ac.service.CurrentView())})
}

func (ac *ApiController) SetView(w http.ResponseWriter, r *http.Request) {
	var payload viewPayload
	if !decodeAndValidate(w, r, &payload) {
		return
	}
	if err := ac.service.SetCurrentView(services.View(payload.View)); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
