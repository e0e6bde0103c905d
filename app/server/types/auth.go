package types

type AuthLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthLoginResponse struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token"`
}

type AuthRegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Confirmation 用于只需要回一句话的接口（注册、登出）
type Confirmation struct {
	Message string `json:"message"`
}

type AuthMeResponse struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
