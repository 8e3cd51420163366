package domain

// User is an operator of the ledger; the acting user's ID is stamped on every
// edit's history record.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	PasswordHash string `json:"-"`
}
