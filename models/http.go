package models

// RegisterRequest is the decoded JSON body of the registration endpoint.
// Avatar and cover blobs travel as multipart parts, not in the JSON body.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials presented at login. At least one of
// Email or Username must be set.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// LoginResponse is the success payload of the login endpoint: the sanitized
// user record plus both freshly issued tokens. The same tokens are also set
// as HttpOnly cookies.
type LoginResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest carries a refresh token presented in the request body.
// When absent the handler falls back to the refreshToken cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest carries the old and new passwords for the
// change-password endpoint.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateAccountRequest carries profile fields for partial account updates.
// Empty fields are left unchanged.
type UpdateAccountRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}
