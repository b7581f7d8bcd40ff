package user

// User represents a registered customer in the system.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
