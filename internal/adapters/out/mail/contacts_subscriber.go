// internal/adapters/out/mail/contacts_subscriber.go
package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
)

const sendgridHost = "https://api.sendgrid.com"

// ContactsSubscriber implements usecase.Subscriber by upserting the address
// into a SendGrid marketing list. SendGrid handles the opt-in confirmation
// mail, so a 2xx here only acknowledges the request.
type ContactsSubscriber struct {
	apiKey string
	listID string
}

func NewContactsSubscriber(apiKey, listID string) *ContactsSubscriber {
	return &ContactsSubscriber{
		apiKey: strings.TrimSpace(apiKey),
		listID: strings.TrimSpace(listID),
	}
}

func (s *ContactsSubscriber) Subscribe(ctx context.Context, email string) error {
	if s == nil || s.apiKey == "" {
		return fmt.Errorf("contacts subscriber is not configured")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is empty")
	}

	payload := map[string]any{
		"contacts": []map[string]string{{"email": email}},
	}
	if s.listID != "" {
		payload["list_ids"] = []string{s.listID}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("contacts subscriber: marshal: %w", err)
	}

	request := sendgrid.GetRequest(s.apiKey, "/v3/marketing/contacts", sendgridHost)
	request.Method = rest.Put
	request.Body = body

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("contacts subscriber: request: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("[contacts_subscriber] error status=%d body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("contacts subscriber: upsert failed: status=%d", response.StatusCode)
	}

	log.Printf("[contacts_subscriber] subscribe accepted status=%d", response.StatusCode)
	return nil
}
