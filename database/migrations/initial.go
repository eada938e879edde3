package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

func init() {
	migration.Register("20240101000000_create_users_table", &createUsersTable{})
	migration.Register("20240101000001_create_products_table", &createProductsTable{})
	migration.Register("20240101000002_create_orders_table", &createOrdersTable{})
}

type createUsersTable struct{}

func (*createUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (*createUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type createProductsTable struct{}

func (*createProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (*createProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// createOrdersTable covers both orders and their line items, they only
// ever change together.
type createOrdersTable struct{}

func (*createOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (*createOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items", "orders")
}
