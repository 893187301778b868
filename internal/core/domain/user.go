package domain

// User is a panel operator account. Only the fields the panel actually
// uses are persisted.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
