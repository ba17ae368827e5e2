package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"userid" db:"userid"`
	Username string `json:"username" db:"username"`
	Email    string `json:"useremail" db:"useremail"`
	Password string `json:"-" db:"userpass"` // bcrypt hash, never serialized
}
