package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// ProductController serves the catalogue endpoints.
type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// ListAvailable handles GET /product/available and /product/available/{page}.
func (c *ProductController) ListAvailable(w http.ResponseWriter, r *http.Request) {
	products, pagination, err := c.service.ListAvailable(pageParam(r))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, products, pagination)
}

// Get handles GET /product/{id}.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.service.GetByID(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, product)
}

// Create handles POST /product (admin).
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body services.ProductInput
	if errs, err := bind.JSON(r, &body); err != nil {
		badRequest(w, err)
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(body)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, product)
}

// Update handles PUT /product/{id} (admin).
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var body services.UpdateProductInput
	if errs, err := bind.JSON(r, &body); err != nil {
		badRequest(w, err)
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(id, body)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, product)
}

// Delete handles DELETE /product/{id} (admin). Soft-delete only.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := c.service.Delete(id); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{"deleted": true})
}
