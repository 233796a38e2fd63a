package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:80;not null"`
	Email        string `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FullName     string `gorm:"size:120;not null"`
	IsAdmin      bool   `gorm:"default:false"`
	IsActive     bool   `gorm:"default:true"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

// Bootstraps an admin account against the local sqlite database.
//
// Usage:
//
//	go run scripts/create_admin.go -email admin@example.com -password changeme
func main() {
	dbPath := flag.String("db", "burgershop.sqlite", "Path to the sqlite database")
	username := flag.String("username", "admin", "Admin username")
	email := flag.String("email", "", "Admin email (required)")
	password := flag.String("password", "", "Admin password (required)")
	fullName := flag.String("name", "Administrator", "Admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		log.Fatalf("failed to migrate users table: %v", err)
	}

	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		log.Fatalf("a user with email %s already exists (id=%d)", *email, existing.ID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := User{
		Username:     *username,
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *fullName,
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Printf("Admin user created: id=%d email=%s\n", admin.ID, admin.Email)
}
