package config

import (
	"log"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/utils"

	"gorm.io/gorm"
)

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Solar Batteries", Slug: models.CategoryBatteries},
		{Name: "MPPT Controllers", Slug: models.CategoryControllers},
		{Name: "Hybrid Inverters", Slug: models.CategoryInverters},
		{Name: "Solar Panels", Slug: models.CategoryPanels},
	}

	for _, category := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Failed to seed category %s: %v", category.Slug, err)
			}
		}
	}
}

func SeedAdmin(db *gorm.DB, cfg *Config) {
	var existing models.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	password, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: password,
		FullName: "Store Admin",
		Role:     "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	} else {
		log.Printf("Admin user seeded: %s (ID: %d)", admin.Email, admin.ID)
	}
}

func intPtr(v int64) *int64 { return &v }

func SeedProducts(db *gorm.DB) {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("🌱 Seeding product catalog...")

	products := []models.Product{
		{
			Name:          "SMS Lithium Battery 15kWh",
			Category:      models.CategoryBatteries,
			Price:         850000,
			OriginalPrice: intPtr(950000),
			ImageURL:      "/uploads/products/sms-lithium-15kwh.png",
			Description:   "High-capacity 51.2V 15kWh lithium iron phosphate battery with advanced BMS for reliable energy storage.",
			Features: []string{
				"Long cycle life (>6000 cycles)",
				"Fast charging capability",
				"Built-in battery management system",
				"Weather resistant design",
				"LCD display with real-time monitoring",
			},
			Specifications: map[string]string{
				"Voltage":  "51.2V",
				"Capacity": "15kWh",
				"Type":     "LiFePO4",
				"Cycles":   ">6000",
				"Warranty": "5 years",
			},
			InStock: true,
			Rating:  4.8,
			Reviews: 124,
		},
		{
			Name:          "MPPT Solar Charge Controller",
			Category:      models.CategoryControllers,
			Price:         45000,
			OriginalPrice: intPtr(55000),
			ImageURL:      "/uploads/products/mppt-controller.png",
			Description:   "Advanced MPPT solar charge controller with LCD display for maximum power point tracking and system monitoring.",
			Features: []string{
				"Maximum Power Point Tracking",
				"LCD display with data logging",
				"Multiple protection features",
				"Compatible with various battery types",
				"Easy installation and setup",
			},
			Specifications: map[string]string{
				"Max Solar Input": "150V",
				"Charge Current":  "60A",
				"System Voltage":  "12V/24V",
				"Efficiency":      ">98%",
				"Warranty":        "2 years",
			},
			InStock: true,
			Rating:  4.7,
			Reviews: 89,
		},
		{
			Name:        "Lithium Battery Module 25.6V",
			Category:    models.CategoryBatteries,
			Price:       420000,
			ImageURL:    "/uploads/products/lithium-module-25v.png",
			Description: "Compact 25.6V 300Ah LiFePO4 battery module perfect for residential solar installations.",
			Features: []string{
				"Compact design",
				"High energy density",
				"Integrated safety features",
				"Scalable configuration",
				"Maintenance-free operation",
			},
			Specifications: map[string]string{
				"Voltage":  "25.6V",
				"Capacity": "300Ah",
				"Type":     "LiFePO4",
				"Weight":   "32kg",
				"Warranty": "5 years",
			},
			InStock: true,
			Rating:  4.6,
			Reviews: 67,
		},
		{
			Name:          "Monocrystalline Solar Panel 550W",
			Category:      models.CategoryPanels,
			Price:         85000,
			OriginalPrice: intPtr(95000),
			ImageURL:      "/uploads/products/mono-panel-550w.png",
			Description:   "High-efficiency 550W monocrystalline solar panel with excellent performance in various weather conditions.",
			Features: []string{
				"High efficiency (>22%)",
				"Excellent low-light performance",
				"Durable aluminum frame",
				"25-year power warranty",
				"Anti-reflective coating",
			},
			Specifications: map[string]string{
				"Power":      "550W",
				"Efficiency": "22.1%",
				"Voltage":    "41.2V",
				"Current":    "13.36A",
				"Warranty":   "25 years",
			},
			InStock: true,
			Rating:  4.9,
			Reviews: 156,
		},
		{
			Name:        "FIRMAN Hybrid Inverter",
			Category:    models.CategoryInverters,
			Price:       125000,
			ImageURL:    "/uploads/products/firman-hybrid.png",
			Description: "Advanced hybrid inverter with grid-tie capability and seamless switching between solar, battery, and grid power.",
			Features: []string{
				"Pure sine wave output",
				"Grid-tie capability",
				"Battery charging from grid",
				"LCD display with monitoring",
				"2-year warranty",
			},
			Specifications: map[string]string{
				"Power":         "5000W",
				"Input Voltage": "24V/48V",
				"Output":        "220V AC",
				"Efficiency":    ">95%",
				"Warranty":      "2 years",
			},
			InStock: true,
			Rating:  4.5,
			Reviews: 78,
		},
		{
			Name:        "Super Speed Battery 200Ah",
			Category:    models.CategoryBatteries,
			Price:       180000,
			ImageURL:    "/uploads/products/super-speed-200ah.png",
			Description: "Reliable 12V 200Ah tubular battery designed for deep cycle applications in solar systems.",
			Features: []string{
				"Deep cycle design",
				"Maintenance-free",
				"Long service life",
				"Excellent recovery",
				"Spill-proof construction",
			},
			Specifications: map[string]string{
				"Voltage":  "12V",
				"Capacity": "200Ah",
				"Type":     "AGM",
				"Life":     "8-10 years",
				"Warranty": "3 years",
			},
			InStock: true,
			Rating:  4.4,
			Reviews: 91,
		},
		{
			Name:        "Quantum Inverter Battery",
			Category:    models.CategoryBatteries,
			Price:       95000,
			ImageURL:    "/uploads/products/quantum-inverter.png",
			Description: "High-performance inverter battery with extended backup time for home and office use.",
			Features: []string{
				"Fast charging",
				"Low maintenance",
				"Corrosion resistant",
				"Temperature tolerance",
				"Reliable performance",
			},
			Specifications: map[string]string{
				"Voltage":  "12V",
				"Capacity": "150Ah",
				"Type":     "Tubular",
				"Life":     "5-7 years",
				"Warranty": "2 years",
			},
			InStock: false,
			Rating:  4.3,
			Reviews: 52,
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Name, err)
		}
	}

	log.Println("✅ Product catalog seeded.")
}
