package interfaces

import (
	"context"

	"stock-news-alert/internal/types"
)

type Notifier interface {
	Send(ctx context.Context, body string) (types.Delivery, error)
}

type CredentialProvider interface {
	Load(ctx context.Context) (types.Credentials, error)
}

// CredentialEntry collects credentials from the operator and persists them
// where the CredentialProvider will find them.
type CredentialEntry interface {
	Enter(ctx context.Context) error
}
