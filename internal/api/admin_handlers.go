package api

import (
	"net/http"

	"vanrental/internal/service"
)

type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) DeleteAllData(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAllData(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All data deleted successfully"})
}

func (h *AdminHandler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ResetDatabase(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Database reset successfully with sample data"})
}
