// One-shot migration: hash any org_accounts rows still carrying a plaintext
// password. Safe to re-run; bcrypt hashes are detected and skipped.
package main

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"org-compliance-api/config"
	"org-compliance-api/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	var accounts []models.OrgAccount
	if err := config.DB.Where("delete_at IS NULL").Find(&accounts).Error; err != nil {
		log.Fatal("Failed to load accounts:", err)
	}

	migrated := 0
	for i := range accounts {
		account := &accounts[i]
		if strings.HasPrefix(account.Password, "$2a$") || strings.HasPrefix(account.Password, "$2b$") {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password for %s: %v", account.Email, err)
			continue
		}

		now := time.Now()
		if err := config.DB.Model(&models.OrgAccount{}).
			Where("account_id = ?", account.AccountID).
			Updates(map[string]interface{}{"password": string(hashed), "update_at": now}).Error; err != nil {
			log.Printf("Failed to update %s: %v", account.Email, err)
			continue
		}
		migrated++
	}

	log.Printf("Done. %d account(s) migrated, %d total.", migrated, len(accounts))
}
