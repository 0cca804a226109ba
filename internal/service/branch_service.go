package service

import (
	"vanrental/internal/db"
	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
)

type BranchService struct {
	Repo *repository.BranchRepository
}

func NewBranchService(repo *repository.BranchRepository) *BranchService {
	return &BranchService{Repo: repo}
}

func (s *BranchService) ListBranches() ([]entities.BranchResponse, error) {
	branches, err := s.Repo.GetAll()
	if err != nil {
		return nil, apperrors.System("could not list branches")
	}
	resp := make([]entities.BranchResponse, 0, len(branches))
	for _, b := range branches {
		resp = append(resp, branchResponse(b))
	}
	return resp, nil
}

func (s *BranchService) GetBranch(branchID int) (*entities.BranchResponse, error) {
	branch, err := s.Repo.GetByID(branchID)
	if err != nil {
		return nil, apperrors.System("could not get branch")
	}
	if branch == nil {
		return nil, apperrors.NotFound("Branch not found")
	}
	resp := branchResponse(*branch)
	return &resp, nil
}

func (s *BranchService) CreateBranch(req entities.CreateBranchRequest) (*entities.BranchResponse, error) {
	branch := db.Branch{
		BranchName: req.BranchName,
		Address:    req.Address,
		City:       req.City,
	}
	if err := s.Repo.Create(&branch); err != nil {
		return nil, apperrors.System("could not create branch")
	}
	resp := branchResponse(branch)
	return &resp, nil
}

func branchResponse(b db.Branch) entities.BranchResponse {
	return entities.BranchResponse{
		BranchID:   b.BranchID,
		BranchName: b.BranchName,
		Address:    b.Address,
		City:       b.City,
	}
}
