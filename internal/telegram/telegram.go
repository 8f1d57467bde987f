// Package telegram sends operator alerts to a Telegram chat.
package telegram

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// SendMessageToUser sends a text alert to the configured operator
	SendMessageToUser(ctx context.Context, text string)

	// SendImageToUser sends a PNG with a caption to the configured operator
	SendImageToUser(ctx context.Context, caption string, png []byte)
}
