package response

import (
	"time"

	"github.com/restodesk/backoffice/internal/domain"
)

// POSForm is the wizard's POS form without the sealed secret.
type POSForm struct {
	Provider        string `json:"provider"`
	Username        string `json:"username"`
	HasSecret       bool   `json:"has_secret"`
	Port            int    `json:"port,omitempty"`
	BaseURL         string `json:"base_url"`
	ResolvedBaseURL string `json:"resolved_base_url,omitempty"`
}

type OnboardingStep struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type OnboardingSnapshot struct {
	RestaurantID   uint                    `json:"restaurant_id"`
	Version        int64                   `json:"version"`
	CurrentStep    int                     `json:"current_step"`
	Steps          []OnboardingStep        `json:"steps"`
	Personnel      []domain.PersonnelEntry `json:"personnel"`
	Payment        domain.PaymentLinkState `json:"payment"`
	POS            POSForm                 `json:"pos"`
	Tables         domain.TablesForm       `json:"tables"`
	Reviews        domain.ReviewsForm      `json:"reviews"`
	Messaging      domain.MessagingForm    `json:"messaging"`
	CompletedSteps []int                   `json:"completed_steps"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func NewOnboardingSnapshot(s domain.OnboardingSnapshot) OnboardingSnapshot {
	completed := make([]int, 0, len(s.CompletedSteps))
	done := make(map[domain.OnboardingStep]bool, len(s.CompletedSteps))
	for _, step := range s.CompletedSteps {
		completed = append(completed, int(step))
		done[step] = true
	}

	steps := make([]OnboardingStep, 0, int(domain.LastOnboardingStep)+1)
	for step := domain.FirstOnboardingStep; step <= domain.LastOnboardingStep; step++ {
		steps = append(steps, OnboardingStep{Index: int(step), Name: step.String(), Complete: done[step]})
	}

	pos := POSForm{
		Provider:  s.POS.Provider,
		Username:  s.POS.Username,
		HasSecret: s.POS.Secret != "",
		Port:      s.POS.Port,
		BaseURL:   s.POS.BaseURL,
	}
	if provider, err := domain.ParsePOSProvider(s.POS.Provider); err == nil {
		pos.ResolvedBaseURL, _ = domain.ResolvePOSBaseURL(provider, s.POS.Port, s.POS.BaseURL)
	}

	personnel := s.Personnel
	if personnel == nil {
		personnel = []domain.PersonnelEntry{}
	}

	return OnboardingSnapshot{
		RestaurantID:   s.RestaurantID,
		Version:        s.Version,
		CurrentStep:    int(s.CurrentStep),
		Steps:          steps,
		Personnel:      personnel,
		Payment:        s.Payment,
		POS:            pos,
		Tables:         s.Tables,
		Reviews:        s.Reviews,
		Messaging:      s.Messaging,
		CompletedSteps: completed,
		UpdatedAt:      s.UpdatedAt,
	}
}

type PaymentLinkResponse struct {
	Snapshot OnboardingSnapshot        `json:"snapshot"`
	Link     domain.PaymentAccountLink `json:"link"`
}

// LiveMessage is what the onboarding websocket feed sends.
type LiveMessage struct {
	Type     string              `json:"type"`
	Snapshot *OnboardingSnapshot `json:"snapshot,omitempty"`
	Reason   string              `json:"reason,omitempty"`
}

const (
	LiveSnapshot = "snapshot"
	LiveRemoved  = "removed"
)
