package auth

import "github.com/Elias-Manica/My-wallet-back/webapi/common"

// SignUpRequest is the payload for POST /sign-up.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

var signUpMessages = map[string]string{
	"Name":     "name must not be empty",
	"Email":    "email must be a valid email address",
	"Password": "password must not be empty",
}

// Validate returns one message per invalid field, nil when the payload is
// well formed.
func (r *SignUpRequest) Validate() []string {
	if err := common.Validate.Struct(r); err != nil {
		return common.ValidationMessages(err, signUpMessages)
	}
	return nil
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

var loginMessages = map[string]string{
	"Email":    "email must be a valid email address",
	"Password": "password must not be empty",
}

// Validate returns one message per invalid field, nil when the payload is
// well formed.
func (r *LoginRequest) Validate() []string {
	if err := common.Validate.Struct(r); err != nil {
		return common.ValidationMessages(err, loginMessages)
	}
	return nil
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
