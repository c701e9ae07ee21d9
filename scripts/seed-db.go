package main

import (
	"fmt"
	"log"

	"wechat_mall/internal/config"
	"wechat_mall/internal/database"
	"wechat_mall/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	fmt.Println("Seeding database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database (runs migrations)
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	categories := []models.Category{
		{CategoryID: "C001", Name: "Tea", OrderbyID: 1, Icon: "/icons/tea.png", IsShown: true},
		{CategoryID: "C002", Name: "Snacks", OrderbyID: 2, Icon: "/icons/snacks.png", IsShown: true},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Printf("Warning: failed to seed category %s: %v", categories[i].CategoryID, err)
		}
	}

	products := []models.Product{
		{ProductID: "P000000001", CategoryID: "C001", Name: "Green tea", Price: decimal.NewFromFloat(10.00), Stock: 100, OrderbyID: 1, Recommend: 1, OnSale: true},
		{ProductID: "P000000002", CategoryID: "C001", Name: "Black tea", Price: decimal.NewFromFloat(5.50), Stock: 100, OrderbyID: 2, OnSale: true},
		{ProductID: "P000000003", CategoryID: "C002", Name: "Rice crackers", Price: decimal.NewFromFloat(3.20), Stock: 50, OrderbyID: 1, SoldCount: 12, OnSale: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", products[i].ProductID, err)
		}
	}

	images := []models.ProductImage{
		{GUID: uuid.NewString(), ProductID: "P000000001", URL: "/images/green-tea.jpg", OrderbyID: 1},
		{GUID: uuid.NewString(), ProductID: "P000000002", URL: "/images/black-tea.jpg", OrderbyID: 1},
	}
	for i := range images {
		if err := db.Create(&images[i]).Error; err != nil {
			log.Printf("Warning: failed to seed image for %s: %v", images[i].ProductID, err)
		}
	}

	configs := []models.SiteConfig{
		{Key: "site_name", Value: "Mini Mall"},
		{Key: "service_phone", Value: "400-000-0000"},
	}
	for i := range configs {
		if err := db.Create(&configs[i]).Error; err != nil {
			log.Printf("Warning: failed to seed config %s: %v", configs[i].Key, err)
		}
	}

	fmt.Println("Done.")
}
