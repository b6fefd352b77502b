// Pre-creates the storage buckets so uploads never race directory creation
// on a fresh deployment.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"org-compliance-api/models"
	"org-compliance-api/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	buckets := []string{
		models.BucketSubmissions,
		models.BucketFormTemplates,
		models.BucketOsldFiles,
	}

	for _, bucket := range buckets {
		path, err := utils.BucketPath(bucket)
		if err != nil {
			log.Fatalf("Failed to create bucket %s: %v", bucket, err)
		}
		log.Printf("Bucket ready: %s", path)
	}
}
