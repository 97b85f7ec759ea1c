package http

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Username string `json:"username"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
