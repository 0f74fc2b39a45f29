package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type POSProvider string

const (
	POSProviderMPlusKassa POSProvider = "MPLUSKASSA"
	POSProviderUntill     POSProvider = "UNTILL"
	POSProviderLightspeed POSProvider = "LIGHTSPEED"
	POSProviderCustom     POSProvider = "CUSTOM"

	mplusKassaBaseURLTemplate = "https://api.mpluskassa.nl:%d"
	lightspeedBaseURL         = "https://api.lightspeedapp.com"
)

var (
	ErrUnknownPOSProvider = errors.New("unknown POS provider")
	ErrInvalidPOSPort     = errors.New("POS port must be between 1 and 65535")
	ErrMissingPOSBaseURL  = errors.New("POS base URL is required for this provider")
	ErrInvalidPOSBaseURL  = errors.New("POS base URL must be an absolute http(s) URL")
)

var POSProviders = []POSProvider{
	POSProviderMPlusKassa,
	POSProviderUntill,
	POSProviderLightspeed,
	POSProviderCustom,
}

func ParsePOSProvider(raw string) (POSProvider, error) {
	p := POSProvider(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range POSProviders {
		if p == known {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPOSProvider, raw)
}

// ResolvePOSBaseURL derives the endpoint the backend talks to. MPLUSKASSA
// encodes the port into a fixed hostname, LIGHTSPEED has a fixed host unless
// overridden, the others need an explicit URL.
func ResolvePOSBaseURL(provider POSProvider, port int, explicit string) (string, error) {
	explicit = strings.TrimRight(strings.TrimSpace(explicit), "/")

	switch provider {
	case POSProviderMPlusKassa:
		if port < 1 || port > 65535 {
			return "", ErrInvalidPOSPort
		}
		return fmt.Sprintf(mplusKassaBaseURLTemplate, port), nil
	case POSProviderLightspeed:
		if explicit == "" {
			return lightspeedBaseURL, nil
		}
	case POSProviderUntill, POSProviderCustom:
		if explicit == "" {
			return "", ErrMissingPOSBaseURL
		}
	default:
		return "", ErrUnknownPOSProvider
	}

	if !isHTTPURL(explicit) {
		return "", ErrInvalidPOSBaseURL
	}

	return explicit, nil
}

type POSConfig struct {
	Provider        POSProvider `json:"provider"`
	Username        string      `json:"username"`
	Secret          string      `json:"-"`
	HasSecret       bool        `json:"has_secret"`
	Port            int         `json:"port,omitempty"`
	BaseURL         string      `json:"base_url"`
	LastTestedAt    *time.Time  `json:"last_tested_at,omitempty"`
	LastTestOK      bool        `json:"last_test_ok"`
	LastTestMessage string      `json:"last_test_message,omitempty"`
}

// POSInput is what an operator types into the POS form. An empty Secret
// means "keep the stored one".
type POSInput struct {
	Provider string
	Username string
	Secret   string
	Port     int
	BaseURL  string
}

type POSTestResult struct {
	OK       bool      `json:"ok"`
	Message  string    `json:"message"`
	BaseURL  string    `json:"base_url"`
	TestedAt time.Time `json:"tested_at"`
	// Recorded is set when the tested inputs are the stored config and the
	// outcome was written onto it.
	Recorded bool      `json:"recorded"`
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
