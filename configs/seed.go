package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"pos/entity"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads the starter menu on an empty database.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Kitchen", "Bar", "Grill"} {
		db.FirstOrCreate(&entity.Department{}, entity.Department{Name: name})
	}
	for _, name := range []string{"Mains", "Salads", "Beverages", "Desserts", "Appetizers"} {
		db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name})
	}

	items := []entity.MenuItem{
		{Name: "Classic Burger", Price: decimal.NewFromInt(259), Category: "Mains", Department: "Kitchen", Description: "Beef patty with lettuce, tomato, cheese"},
		{Name: "Caesar Salad", Price: decimal.NewFromInt(199), Category: "Salads", Department: "Kitchen", Description: "Romaine lettuce, croutons, parmesan"},
		{Name: "Margherita Pizza", Price: decimal.NewFromInt(299), Category: "Mains", Department: "Kitchen", Description: "Fresh mozzarella, basil, tomato sauce"},
		{Name: "Fish & Chips", Price: decimal.NewFromInt(319), Category: "Mains", Department: "Kitchen", Description: "Beer-battered fish with crispy fries"},
		{Name: "Greek Salad", Price: decimal.NewFromInt(219), Category: "Salads", Department: "Kitchen", Description: "Feta, olives, cucumber, tomatoes"},
		{Name: "Pasta Carbonara", Price: decimal.NewFromInt(279), Category: "Mains", Department: "Kitchen", Description: "Creamy sauce with bacon and parmesan"},
		{Name: "Coca Cola", Price: decimal.NewFromInt(59), Category: "Beverages", Department: "Bar", Description: "330ml can"},
		{Name: "Fresh Orange Juice", Price: decimal.NewFromInt(99), Category: "Beverages", Department: "Bar", Description: "Freshly squeezed"},
		{Name: "Chocolate Cake", Price: decimal.NewFromInt(139), Category: "Desserts", Department: "Kitchen", Description: "Rich chocolate layer cake"},
		{Name: "Ice Cream Sundae", Price: decimal.NewFromInt(119), Category: "Desserts", Department: "Kitchen", Description: "Vanilla ice cream with toppings"},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("✅ Starter catalog seeded")
	return nil
}
