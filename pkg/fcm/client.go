// Package fcm sends push notifications through Firebase Cloud Messaging.
//
// Transport errors are wrapped in DeliveryError, which tells retrying
// callers whether another attempt can succeed.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/aliskhannn/request-notifier/internal/model"
)

type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Client wraps the FCM messaging client.
type Client struct {
	sender    sender
	permanent func(error) bool // reports whether a send error is final for the token
}

// NewClient initialises a Firebase app for projectID and returns a Client.
// An empty credentialsFile uses Application Default Credentials.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	return &Client{sender: mc, permanent: isPermanent}, nil
}

// DeliveryError is returned when FCM rejects a push.
type DeliveryError struct {
	Token     string // device token the push was addressed to
	Permanent bool   // the token is invalid or unregistered
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("fcm delivery failed (permanent=%t): %v", e.Permanent, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsPermanent lets retry loops stop early on errors that will never clear.
func (e *DeliveryError) IsPermanent() bool { return e.Permanent }

// Send delivers push and returns the FCM message ID.
func (c *Client) Send(ctx context.Context, push model.Push) (string, error) {
	msg := &messaging.Message{
		Token: push.Token, // recipient device
		Notification: &messaging.Notification{
			Title: push.Title,
			Body:  push.Body,
		},
		Data: push.Data, // routing fields read by the app
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	id, err := c.sender.Send(ctx, msg)
	if err != nil {
		return "", &DeliveryError{Token: push.Token, Permanent: c.permanent(err), Err: err}
	}

	return id, nil
}

func isPermanent(err error) bool {
	return messaging.IsUnregistered(err) ||
		messaging.IsSenderIDMismatch(err) ||
		errorutils.IsInvalidArgument(err)
}
