package entities

type CreateBranchRequest struct {
	BranchName string `json:"branch_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
}

type BranchResponse struct {
	BranchID   int    `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
}
