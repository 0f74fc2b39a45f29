// Package twiliomsg sends SMS messages to restaurant messaging groups.
package twiliomsg

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/restodesk/backoffice/internal/config"
)

var ErrNotConfigured = errors.New("twilio is not configured")

type Sender struct {
	client *twilio.RestClient
	from   string
}

func New(conf *config.TwilioConfig) *Sender {
	if conf == nil || conf.AccountSID == "" || conf.AuthToken == "" {
		return &Sender{}
	}

	return &Sender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: conf.AccountSID,
			Password: conf.AuthToken,
		}),
		from: conf.From,
	}
}

// Send delivers body to the phone number to. The twilio client has no
// context support, ctx is only checked before the call.
func (s *Sender) Send(ctx context.Context, to, body string) error {
	if s.client == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("s.client.Api.CreateMessage -> %w", err)
	}
	if resp.Sid != nil {
		zap.L().Debug("messaging group message sent", zap.String("sid", *resp.Sid))
	}

	return nil
}
