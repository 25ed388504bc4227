package handler

// --- Request / Response types shared by the admin and user endpoints ---

type createAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// updateAccountRequest leaves password optional; an empty password keeps the
// current one.
type updateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createdResponse struct {
	ID string `json:"id"`
}
