package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vanrental/internal/entities"
	"vanrental/internal/service"
)

type ScheduleHandler struct {
	Service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetSchedule()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *ScheduleHandler) GetVehicleSchedule(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.Atoi(mux.Vars(r)["vehicle_id"])
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}
	entries, err := h.Service.GetVehicleSchedule(vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *ScheduleHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req entities.ScheduleSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	results, err := h.Service.Search(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
