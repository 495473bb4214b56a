package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/types"
)

const twilioService = "twilio"

// Twilio sends alerts as SMS through the Twilio Messages API. Credentials
// are loaded on first use, so runs that never alert never need them.
type Twilio struct {
	creds     interfaces.CredentialProvider
	timeout   time.Duration
	transport http.RoundTripper
}

var _ interfaces.Notifier = (*Twilio)(nil)

// TwilioOption configures the Twilio notifier
type TwilioOption func(*Twilio)

// WithTimeout bounds each Twilio API call
func WithTimeout(timeout time.Duration) TwilioOption {
	return func(t *Twilio) {
		if timeout > 0 {
			t.timeout = timeout
		}
	}
}

// WithTransport replaces the HTTP transport used for API calls
func WithTransport(rt http.RoundTripper) TwilioOption {
	return func(t *Twilio) {
		t.transport = rt
	}
}

func NewTwilio(creds interfaces.CredentialProvider, opts ...TwilioOption) *Twilio {
	t := &Twilio{creds: creds, timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send delivers body from the configured sender to the configured recipient.
func (t *Twilio) Send(ctx context.Context, body string) (types.Delivery, error) {
	c, err := t.creds.Load(ctx)
	if err != nil {
		return types.Delivery{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.Delivery{}, &types.RemoteServiceError{Service: twilioService, Msg: "send cancelled", Err: err}
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(c.To)
	params.SetFrom(c.From)
	params.SetBody(body)

	resp, err := t.restClient(c).Api.CreateMessage(params)
	if err != nil {
		return types.Delivery{}, twilioError(err)
	}

	d := types.Delivery{}
	if resp.Sid != nil {
		d.SID = *resp.Sid
	}
	if resp.Status != nil {
		d.Status = *resp.Status
	}
	logger.Debug(ctx, "Twilio message created", "sid", d.SID, "status", d.Status)
	return d, nil
}

func (t *Twilio) restClient(c types.Credentials) *twilio.RestClient {
	hc := &http.Client{Timeout: t.timeout}
	if t.transport != nil {
		hc.Transport = t.transport
	}
	base := &client.Client{
		Credentials: client.NewCredentials(c.AccountSID, c.AuthToken),
		HTTPClient:  hc,
	}
	base.SetAccountSid(c.AccountSID)
	return twilio.NewRestClientWithParams(twilio.ClientParams{Client: base})
}

func twilioError(err error) error {
	var restErr *client.TwilioRestError
	if errors.As(err, &restErr) {
		return &types.RemoteServiceError{
			Service:    twilioService,
			StatusCode: restErr.Status,
			Msg:        fmt.Sprintf("%d: %s", restErr.Code, restErr.Message),
			Err:        err,
		}
	}
	return &types.RemoteServiceError{Service: twilioService, Msg: "send failed", Err: err}
}
