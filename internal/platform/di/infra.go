// internal/platform/di/infra.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "storefront/internal/infra/config"
)

// Infra owns the external clients the container wires: Firestore (document
// store) and Firebase Auth (identity verification).
//
// Firestore is strict (boot fails without it); Firebase Auth is best-effort
// so the public catalog routes still serve when identity is misconfigured.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	Firestore    *firestore.Client
	FirebaseApp  *firebase.App
	FirebaseAuth *firebaseauth.Client
}

// NewInfra initializes the shared clients.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	inf := &Infra{Config: cfg, ProjectID: projectID}

	// Credentials file is mainly for local dev; production uses ADC.
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] using credentials file for GCP clients")
	} else {
		log.Printf("[di.infra] using application default credentials")
	}

	fs, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("di.infra: firestore init: %w", err)
	}
	inf.Firestore = fs

	fbProject := strings.TrimSpace(cfg.FirebaseProjectID)
	if fbProject == "" {
		fbProject = projectID
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: fbProject}, clientOpts...)
	if err != nil {
		log.Printf("[di.infra] WARN: firebase app init failed: %v (auth routes will reject)", err)
		return inf, nil
	}
	inf.FirebaseApp = app

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Printf("[di.infra] WARN: firebase auth init failed: %v (auth routes will reject)", err)
		return inf, nil
	}
	inf.FirebaseAuth = authClient

	log.Printf("[di.infra] initialized project=%s firebaseAuth=%t", projectID, inf.FirebaseAuth != nil)
	return inf, nil
}

// Close releases owned clients.
func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		if err := i.Firestore.Close(); err != nil {
			return fmt.Errorf("di.infra: firestore close: %w", err)
		}
	}
	return nil
}
