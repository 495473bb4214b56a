package credentials

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/types"
)

// PromptEntry asks for the messaging credentials on a line-oriented terminal
// and saves them through a FileProvider.
type PromptEntry struct {
	store *FileProvider
	in    *bufio.Reader
	out   io.Writer
}

var _ interfaces.CredentialEntry = (*PromptEntry)(nil)

func NewPromptEntry(store *FileProvider, in io.Reader, out io.Writer) *PromptEntry {
	return &PromptEntry{store: store, in: bufio.NewReader(in), out: out}
}

func (p *PromptEntry) Enter(ctx context.Context) error {
	fmt.Fprintf(p.out, "Messaging credentials not found; they will be saved to %s\n", p.store.Path())

	var c types.Credentials
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Twilio account SID", &c.AccountSID},
		{"Twilio auth token", &c.AuthToken},
		{"Sender number (from)", &c.From},
		{"Recipient number (to)", &c.To},
	} {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := p.ask(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := p.store.Save(c); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (p *PromptEntry) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line != "" {
		return line, nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", label, err)
	}
	return "", fmt.Errorf("%s cannot be empty", label)
}
