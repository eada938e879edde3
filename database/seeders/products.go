package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
)

func init() {
	register("demo_catalogue", seedDemoCatalogue)
}

func seedDemoCatalogue(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: 89.90, Stock: 25, Availability: true, Status: true},
		{Name: "USB-C Dock", Description: "Dual HDMI, 100W passthrough", Price: 129.00, Stock: 12, Availability: true, Status: true},
		{Name: "Laptop Stand", Description: "Aluminium, adjustable height", Price: 39.50, Stock: 40, Availability: true, Status: true},
		{Name: "Webcam Cover", Description: "Pack of three", Price: 4.99, Stock: 0, Availability: false, Status: true},
		{Name: "Noise-Cancelling Headset", Description: "Wireless, 30h battery", Price: 199.00, Stock: 8, Availability: true, Status: true},
	}
	return db.Create(&products).Error
}
