package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"vanrental/internal/db"
)

type BranchRepository struct {
	DB *sql.DB
}

func NewBranchRepository(conn *sql.DB) *BranchRepository {
	return &BranchRepository{DB: conn}
}

func (r *BranchRepository) GetAll() ([]db.Branch, error) {
	rows, err := r.DB.Query(`SELECT branch_id, branch_name, address, city FROM branches ORDER BY branch_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	var branches []db.Branch
	for rows.Next() {
		var b db.Branch
		if err := rows.Scan(&b.BranchID, &b.BranchName, &b.Address, &b.City); err != nil {
			return nil, fmt.Errorf("error scanning branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating branch rows: %w", err)
	}
	return branches, nil
}

// GetByID returns (nil, nil) when no branch exists with the given id.
func (r *BranchRepository) GetByID(branchID int) (*db.Branch, error) {
	var b db.Branch
	err := r.DB.QueryRow(
		`SELECT branch_id, branch_name, address, city FROM branches WHERE branch_id = $1`,
		branchID,
	).Scan(&b.BranchID, &b.BranchName, &b.Address, &b.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying branch %d: %w", branchID, err)
	}
	return &b, nil
}

func (r *BranchRepository) Create(b *db.Branch) error {
	query := `INSERT INTO branches (branch_name, address, city) VALUES ($1, $2, $3) RETURNING branch_id`
	return r.DB.QueryRow(query, b.BranchName, b.Address, b.City).Scan(&b.BranchID)
}
