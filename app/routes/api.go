package routes

import (
	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/rbac"

	mw "github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// Deps carries everything the route table needs. Built once in the
// server bootstrap and handed down here.
type Deps struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Orders   *services.OrderService
	Tokens   *auth.TokenManager
}

func RegisterAPI(r *router.Router, deps Deps) {
	authController := controllers.NewAuthController(deps.Auth)
	userController := controllers.NewUserController(deps.Auth)
	productController := controllers.NewProductController(deps.Products)
	orderController := controllers.NewOrderController(deps.Orders)

	authed := mw.Auth(deps.Tokens)
	adminOnly := rbac.HasRole(models.RoleAdmin)

	user := r.Group("/user")
	user.Post("/auth", "user.auth", authController.Login)
	user.Post("/sign-up", "user.sign-up", authController.SignUp)
	user.Put("/{id}", "user.update", userController.Update, authed)

	userAdmin := user.Group("", authed, adminOnly)
	userAdmin.Put("/suspend/{id}", "user.suspend", userController.ChangeStatus(models.StatusSuspended))
	userAdmin.Put("/active/{id}", "user.active", userController.ChangeStatus(models.StatusActive))
	userAdmin.Put("/delete/{id}", "user.delete", userController.ChangeStatus(models.StatusDeleted))

	product := r.Group("/product")
	product.Get("/available", "product.available", productController.ListAvailable)
	product.Get("/available/{page}", "product.available.page", productController.ListAvailable)
	product.Get("/{id}", "product.show", productController.Get)

	productAdmin := product.Group("", authed, adminOnly)
	productAdmin.Post("", "product.create", productController.Create)
	productAdmin.Put("/{id}", "product.update", productController.Update)
	productAdmin.Delete("/{id}", "product.delete", productController.Delete)

	order := r.Group("/order", authed)
	order.Get("/{id}", "order.show", orderController.Get)
	order.Get("/history/{id}", "order.history", orderController.History)
	order.Get("/history/{id}/{page}", "order.history.page", orderController.History)
	order.Post("", "order.create", orderController.Create)

	orderAdmin := order.Group("", adminOnly)
	orderAdmin.Put("/process/{id}", "order.process", orderController.UpdateStatus(models.OrderProcessing))
	orderAdmin.Put("/deliver/{id}", "order.deliver", orderController.UpdateStatus(models.OrderDelivering))
	orderAdmin.Put("/complete/{id}", "order.complete", orderController.UpdateStatus(models.OrderCompleted))
	orderAdmin.Put("/cancel/{id}", "order.cancel", orderController.UpdateStatus(models.OrderCanceled))
}
