// internal/infra/config/config.go
package config

import "os"

// Config holds the environment-variable settings for the whole service.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string
	GCPCreds                 string

	// SendGrid: transactional mail + marketing-contacts subscription.
	SendGridAPIKey     string
	MailFromAddress    string
	SubscriptionListID string

	// CORS origin for the storefront frontend.
	AllowedOrigin string
}

// Load reads the environment and returns the resolved Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		MailFromAddress:    getenvDefault("MAIL_FROM_ADDRESS", "no-reply@localhost"),
		SubscriptionListID: os.Getenv("SENDGRID_LIST_ID"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
