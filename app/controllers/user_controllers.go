package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// UserController serves account updates and admin status changes.
type UserController struct {
	service *services.AuthService
}

func NewUserController(service *services.AuthService) *UserController {
	return &UserController{service: service}
}

// Update handles PUT /user/{id}.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var body services.UpdateUserInput
	if errs, err := bind.JSON(r, &body); err != nil {
		badRequest(w, err)
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.UpdateUser(id, body)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, user)
}

// ChangeStatus returns a handler that moves the account to the given
// status. Registered once per status route (suspend/active/delete).
func (c *UserController) ChangeStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			response.Error(w, http.StatusBadRequest, "invalid user id")
			return
		}

		user, err := c.service.ChangeUserStatus(id, status)
		if err != nil {
			fail(w, r, err)
			return
		}

		response.Success(w, user)
	}
}
