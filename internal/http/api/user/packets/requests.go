package packets

// body for registering
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// body for renaming the logged-in user
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// body for sending a direct message; the recipient is addressed by email
type NewMessageRequest struct {
	Email   string `json:"email" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
