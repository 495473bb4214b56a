package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/types"
)

// ErrCredentialsNotFound marks a credentials source that has nothing stored yet.
var ErrCredentialsNotFound = errors.New("credentials not found")

// FileProvider reads messaging credentials from a YAML or JSON file.
type FileProvider struct {
	path string
}

var _ interfaces.CredentialProvider = (*FileProvider)(nil)

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Path() string { return p.path }

func (p *FileProvider) Load(ctx context.Context) (types.Credentials, error) {
	var c types.Credentials

	b, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return c, &types.ConfigurationError{Msg: "credentials file " + p.path, Err: ErrCredentialsNotFound}
	}
	if err != nil {
		return c, &types.ConfigurationError{Msg: "read credentials file " + p.path, Err: err}
	}

	if strings.EqualFold(filepath.Ext(p.path), ".json") {
		err = json.Unmarshal(b, &c)
	} else {
		err = yaml.Unmarshal(b, &c)
	}
	if err != nil {
		return types.Credentials{}, &types.ConfigurationError{Msg: "parse credentials file " + p.path, Err: err}
	}

	if missing := missingFields(c); len(missing) > 0 {
		return types.Credentials{}, &types.ConfigurationError{
			Msg: "credentials file " + p.path + " is missing " + strings.Join(missing, ", "),
		}
	}
	logger.Debug(ctx, "Credentials loaded", "path", p.path)
	return c, nil
}

// Save writes c to the provider's path, readable by the owner only.
func (p *FileProvider) Save(c types.Credentials) error {
	var (
		b   []byte
		err error
	)
	if strings.EqualFold(filepath.Ext(p.path), ".json") {
		b, err = json.MarshalIndent(c, "", "  ")
	} else {
		b, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(p.path, b, 0o600)
}

func missingFields(c types.Credentials) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"account_sid", c.AccountSID},
		{"auth_token", c.AuthToken},
		{"from", c.From},
		{"to", c.To},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// fallbackProvider runs the entry flow at most once when credentials are
// absent, then loads exactly once more.
type fallbackProvider struct {
	provider interfaces.CredentialProvider
	entry    interfaces.CredentialEntry
}

// WithEntryFallback returns a provider that asks entry for credentials when
// provider reports ErrCredentialsNotFound. A second miss is terminal.
func WithEntryFallback(provider interfaces.CredentialProvider, entry interfaces.CredentialEntry) interfaces.CredentialProvider {
	if entry == nil {
		return provider
	}
	return &fallbackProvider{provider: provider, entry: entry}
}

func (f *fallbackProvider) Load(ctx context.Context) (types.Credentials, error) {
	c, err := f.provider.Load(ctx)
	if !errors.Is(err, ErrCredentialsNotFound) {
		return c, err
	}

	logger.Warn(ctx, "Messaging credentials not found, starting entry")
	if err := f.entry.Enter(ctx); err != nil {
		return types.Credentials{}, &types.ConfigurationError{Msg: "credential entry failed", Err: err}
	}

	c, err = f.provider.Load(ctx)
	if errors.Is(err, ErrCredentialsNotFound) {
		return types.Credentials{}, &types.ConfigurationError{Msg: "credentials still missing after entry", Err: err}
	}
	return c, err
}
