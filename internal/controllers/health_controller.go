package controllers

import (
	"gritd/internal/services"
	"gritd/internal/structures"
	"net/http"
	"time"
)

// HealthController answers liveness probes with a short summary of the store.
type HealthController struct {
	service services.GritServiceInterface
	storage string
	started time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	Today         string  `json:"today"`
	Storage       string  `json:"storage"`
	Revision      uint64  `json:"revision"`
	Logs          int     `json:"logs"`
	Reviews       int     `json:"reviews"`
	Rewards       int     `json:"rewards"`
}

func NewHealthController(conf *structures.Config, service services.GritServiceInterface) *HealthController {
	storage := conf.Persistence.Driver
	if storage == "" {
		storage = "file"
	}
	return &HealthController{
		service: service,
		storage: storage,
		started: time.Now(),
	}
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(hc.started)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        uptime.Truncate(time.Second).String(),
		UptimeSeconds: uptime.Seconds(),
		Today:         hc.service.Today(),
		Storage:       hc.storage,
		Revision:      hc.service.Revision(),
		Logs:          len(hc.service.Logs()),
		Reviews:       len(hc.service.Reviews()),
		Rewards:       len(hc.service.Rewards()),
	})
}
