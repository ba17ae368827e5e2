package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank,email"`
	Password string `json:"password" binding:"required,notblank"`
}

// RegisterResponse reports the committed user and, separately, whether the
// welcome email went out.
type RegisterResponse struct {
	Message    string `json:"message" example:"User registered successfully!"`
	UserID     int64  `json:"userid" example:"1"`
	EmailSent  bool   `json:"email_sent"`
	EmailError string `json:"email_error,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// UserResponse is the public identity of a user
type UserResponse struct {
	UserID   int64  `json:"userid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string       `json:"message" example:"Login successful"`
	User    UserResponse `json:"user"`
}

// WelcomeEmailRequest is the body of send-welcome-email. The recipient may be
// given as to_email or email.
type WelcomeEmailRequest struct {
	ToEmail  string `json:"to_email" binding:"omitempty,email"`
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"required,notblank"`
}

// Recipient returns the address to send to
func (r *WelcomeEmailRequest) Recipient() string {
	if r.ToEmail != "" {
		return r.ToEmail
	}
	return r.Email
}
