package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vanrental/internal/entities"
	"vanrental/internal/service"
)

type BranchHandler struct {
	Service *service.BranchService
}

func NewBranchHandler(svc *service.BranchService) *BranchHandler {
	return &BranchHandler{Service: svc}
}

func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.Service.ListBranches()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

func (h *BranchHandler) GetBranch(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid branch ID", http.StatusBadRequest)
		return
	}
	branch, err := h.Service.GetBranch(branchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

func (h *BranchHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	branch, err := h.Service.CreateBranch(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, branch)
}
