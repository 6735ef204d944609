// utils/firebase.go
package utils

import (
	"context"
	"log"

	"careinsight/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FCMClient    *messaging.Client
	FirebaseAuth *auth.Client
)

// FirebaseInit initializes the Firebase App with its Messaging and Auth clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	FCMClient, err = app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FirebaseAuth, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
}

// FirebaseVerifier accepts Firebase ID tokens minted by the client SDKs.
type FirebaseVerifier struct {
	Client *auth.Client
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	t, err := v.Client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return t.UID, nil
}
