package email

import (
	"fmt"
)

// Provider names accepted by NewSender.
const (
	ProviderNone   = "none"
	ProviderLog    = "log"
	ProviderResend = "resend"
)

// NewSender returns the sender for provider. ProviderNone yields a nil
// Sender, which disables notifications.
func NewSender(provider, apiKey, from string) (Sender, error) {
	switch provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderLog:
		return &LogSender{senderAddress: from}, nil
	case ProviderResend:
		if apiKey == "" {
			return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return newResendSender(apiKey, from), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", provider)
	}
}
