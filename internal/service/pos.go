package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/restodesk/backoffice/internal/domain"
)

var ErrPOSSecretRequired = errors.New("a POS password or API key is required")

type POSRestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	UpdatePOS(ctx context.Context, id uint, pos domain.POSConfig) (domain.Restaurant, error)
	RecordPOSTest(ctx context.Context, id uint, result domain.POSTestResult) (domain.Restaurant, error)
}

type POSTester interface {
	Test(ctx context.Context, baseURL, username, secret string) error
}

type SecretSealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

type POSTestRecorder interface {
	POSTest(provider string, ok bool)
}

type POSService struct {
	repo    POSRestaurantRepository
	tester  POSTester
	sealer  SecretSealer
	metrics POSTestRecorder
	now     func() time.Time
}

func NewPOSService(repo POSRestaurantRepository, tester POSTester, sealer SecretSealer, metrics POSTestRecorder) *POSService {
	if metrics == nil {
		metrics = nopPOSTests{}
	}

	return &POSService{
		repo:    repo,
		tester:  tester,
		sealer:  sealer,
		metrics: metrics,
		now:     time.Now,
	}
}

type nopPOSTests struct{}

func (nopPOSTests) POSTest(string, bool) {}

type POSProviderInfo struct {
	Provider       domain.POSProvider `json:"provider"`
	NeedsPort      bool               `json:"needs_port"`
	NeedsBaseURL   bool               `json:"needs_base_url"`
	DefaultBaseURL string             `json:"default_base_url,omitempty"`
}

func (s *POSService) Providers() []POSProviderInfo {
	out := make([]POSProviderInfo, 0, len(domain.POSProviders))
	for _, p := range domain.POSProviders {
		info := POSProviderInfo{Provider: p}
		switch p {
		case domain.POSProviderMPlusKassa:
			info.NeedsPort = true
		case domain.POSProviderLightspeed:
			info.DefaultBaseURL, _ = domain.ResolvePOSBaseURL(p, 0, "")
		default:
			info.NeedsBaseURL = true
		}
		out = append(out, info)
	}

	return out
}

// PreviewBaseURL resolves the endpoint the backend would call for the given
// provider inputs without touching any restaurant.
func (s *POSService) PreviewBaseURL(provider string, port int, explicit string) (string, error) {
	p, err := domain.ParsePOSProvider(provider)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	baseURL, err := domain.ResolvePOSBaseURL(p, port, explicit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return baseURL, nil
}

func (s *POSService) Get(ctx context.Context, restaurantID uint) (domain.POSConfig, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.POSConfig{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return restaurant.POS, nil
}

// Test checks connectivity with the submitted inputs. An unreachable or
// refusing POS is reported through the result, not as an error. The outcome
// is only written onto the stored config when the inputs match it.
func (s *POSService) Test(ctx context.Context, restaurantID uint, input domain.POSInput) (domain.POSTestResult, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.POSTestResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	cfg, secret, err := s.resolve(restaurant.POS, input)
	if err != nil {
		return domain.POSTestResult{}, err
	}

	result := domain.POSTestResult{
		OK:       true,
		Message:  "connection successful",
		BaseURL:  cfg.BaseURL,
		TestedAt: s.now().UTC(),
	}
	if err = s.tester.Test(ctx, cfg.BaseURL, cfg.Username, secret); err != nil {
		result.OK = false
		result.Message = err.Error()
	}
	s.metrics.POSTest(string(cfg.Provider), result.OK)

	same, err := s.sameAsStored(restaurant.POS, cfg, input.Secret)
	if err != nil {
		return domain.POSTestResult{}, err
	}
	if !same {
		return result, nil
	}

	result.Recorded = true
	if _, err = s.repo.RecordPOSTest(ctx, restaurantID, result); err != nil {
		return domain.POSTestResult{}, fmt.Errorf("s.repo.RecordPOSTest -> %w", err)
	}

	return result, nil
}

// sameAsStored reports whether tested targets the stored endpoint with the
// stored credentials. A blank secret means the stored one was used.
func (s *POSService) sameAsStored(stored, tested domain.POSConfig, secret string) (bool, error) {
	if stored.Provider == "" || stored.Provider != tested.Provider ||
		stored.Username != tested.Username || stored.BaseURL != tested.BaseURL {
		return false, nil
	}
	if secret == "" {
		return true, nil
	}

	storedSecret, err := s.sealer.Open(stored.Secret)
	if err != nil {
		return false, fmt.Errorf("s.sealer.Open -> %w", err)
	}

	return storedSecret == secret, nil
}

// Save stores the configuration. It does not test the connection.
func (s *POSService) Save(ctx context.Context, restaurantID uint, input domain.POSInput) (domain.POSConfig, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.POSConfig{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	cfg, _, err := s.resolve(restaurant.POS, input)
	if err != nil {
		return domain.POSConfig{}, err
	}

	if input.Secret != "" {
		if cfg.Secret, err = s.sealer.Seal(input.Secret); err != nil {
			return domain.POSConfig{}, fmt.Errorf("s.sealer.Seal -> %w", err)
		}
	}

	updated, err := s.repo.UpdatePOS(ctx, restaurantID, cfg)
	if err != nil {
		return domain.POSConfig{}, fmt.Errorf("s.repo.UpdatePOS -> %w", err)
	}

	return updated.POS, nil
}

// resolve validates input against the stored config. An empty secret falls
// back to the stored one. The returned config still carries the stored
// sealed secret, the plaintext is returned separately.
func (s *POSService) resolve(stored domain.POSConfig, input domain.POSInput) (domain.POSConfig, string, error) {
	provider, err := domain.ParsePOSProvider(input.Provider)
	if err != nil {
		return domain.POSConfig{}, "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return domain.POSConfig{}, "", fmt.Errorf("%w: POS username is required", ErrInvalidArgument)
	}

	baseURL, err := domain.ResolvePOSBaseURL(provider, input.Port, input.BaseURL)
	if err != nil {
		return domain.POSConfig{}, "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	secret := input.Secret
	if secret == "" {
		if stored.Secret == "" {
			return domain.POSConfig{}, "", fmt.Errorf("%w: %v", ErrInvalidArgument, ErrPOSSecretRequired)
		}
		if secret, err = s.sealer.Open(stored.Secret); err != nil {
			return domain.POSConfig{}, "", fmt.Errorf("s.sealer.Open -> %w", err)
		}
	}

	port := 0
	if provider == domain.POSProviderMPlusKassa {
		port = input.Port
	}

	return domain.POSConfig{
		Provider:  provider,
		Username:  username,
		Secret:    stored.Secret,
		HasSecret: true,
		Port:      port,
		BaseURL:   baseURL,
	}, secret, nil
}
