package dto

// TokenRequest credenciales para POST /api/token/.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse par de tokens devuelto en el login.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest body para POST /api/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// AccessResponse nuevo token de acceso.
type AccessResponse struct {
	Access string `json:"access"`
}

// UserInfoResponse datos del usuario autenticado (GET /api/user/info/).
type UserInfoResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateUserRequest entrada para crear un usuario desde la CLI de administración.
type CreateUserRequest struct {
	Username  string `validate:"required,max=150"`
	Password  string `validate:"required,min=8"`
	FirstName string `validate:"max=150"`
	LastName  string `validate:"max=150"`
}
