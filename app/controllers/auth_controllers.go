package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// AuthController serves login and registration.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /user/auth.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginInput
	if errs, err := bind.JSON(r, &body); err != nil {
		badRequest(w, err)
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.LogIn(body.Email, body.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// SignUp handles POST /user/sign-up.
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var body services.SignUpInput
	if errs, err := bind.JSON(r, &body); err != nil {
		badRequest(w, err)
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.SignUp(body)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, user)
}
