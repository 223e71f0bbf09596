package database

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewFirestoreClient initialises a Firebase app for projectID and returns its Firestore client.
// credentials may be a file path, inline JSON or base64-encoded JSON; empty uses ADC.
func NewFirestoreClient(ctx context.Context, projectID, credentials string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firebase project ID cannot be empty")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, firebaseOptions(credentials)...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firestore client: %w", err)
	}
	return client, nil
}

func firebaseOptions(cred string) []option.ClientOption {
	if cred == "" {
		return nil
	}
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}
	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
