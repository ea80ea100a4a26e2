package controllers

import (
	"errors"
	"fmt"
	"gritd/internal/persistence"
	"gritd/internal/providers"
	"io"
	"net/http"
)

type importResponse struct {
	Logs    int `json:"logs"`
	Reviews int `json:"reviews"`
	Rewards int `json:"rewards"`
}

// Export sends the whole store as a downloadable JSON document.
func (ac *ApiController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := ac.service.ExportSnapshot()
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Export failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="grit-tracker-export-%s.json"`, ac.service.Today()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import replaces the store with an uploaded export. A rejected document
// leaves the store untouched.
func (ac *ApiController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBodySize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	if err := ac.service.ImportSnapshot(raw); err != nil {
		if errors.Is(err, persistence.ErrInvalidImport) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	writeJSON(w, http.StatusOK, importResponse{
		Logs:    len(ac.service.Logs()),
		Reviews: len(ac.service.Reviews()),
		Rewards: len(ac.service.Rewards()),
	})
}

func (ac *ApiController) Reset(w http.ResponseWriter, r *http.Request) {
	ac.service.ResetAll()
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) ClearStorage(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.ClearStorage(); err != nil {
		ac.logger.Errorf(providers.TypePost, "Clearing storage failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetArchives(w http.ResponseWriter, r *http.Request) {
	entries, err := ac.service.Archives()
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Listing archives failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (ac *ApiController) RestoreArchive(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.RestoreArchive(r.PathValue("name")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}
