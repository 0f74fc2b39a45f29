package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

type OnboardingStep int

const (
	StepWelcome OnboardingStep = iota
	StepPersonnel
	StepPayment
	StepPOS
	StepTables
	StepReviews
	StepMessaging
)

const (
	FirstOnboardingStep = StepWelcome
	LastOnboardingStep  = StepMessaging
)

var stepNames = map[OnboardingStep]string{
	StepWelcome:   "welcome",
	StepPersonnel: "personnel",
	StepPayment:   "payment",
	StepPOS:       "pos",
	StepTables:    "tables",
	StepReviews:   "reviews",
	StepMessaging: "messaging",
}

func (s OnboardingStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return fmt.Sprintf("step(%d)", int(s))
}

func (s OnboardingStep) Valid() bool {
	return s >= FirstOnboardingStep && s <= LastOnboardingStep
}

// GatedSteps are the steps that carry a completion predicate.
var GatedSteps = []OnboardingStep{
	StepPersonnel,
	StepPayment,
	StepPOS,
	StepTables,
	StepReviews,
	StepMessaging,
}

var (
	ErrInvalidOnboardingStep = errors.New("invalid onboarding step")
	ErrNotOnFinalStep        = errors.New("onboarding can only be finished from the messaging step")
	ErrAlreadyOnLastStep     = errors.New("already on the last step, finish the onboarding instead")
)

// StepValidationError blocks a forward transition. Message is meant to be
// shown next to the form.
type StepValidationError struct {
	Step    OnboardingStep
	Message string
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Step, e.Step, e.Message)
}

// IncompleteOnboardingError lists the steps whose data does not validate.
type IncompleteOnboardingError struct {
	Missing []OnboardingStep
}

func (e *IncompleteOnboardingError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = fmt.Sprintf("%d (%s)", s, s)
	}

	return "onboarding incomplete, missing steps: " + strings.Join(names, ", ")
}

type PersonnelEntry struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	IsRestaurantAdmin bool   `json:"is_restaurant_admin"`
	IsRestaurantStaff bool   `json:"is_restaurant_staff"`
}

type PaymentLinkState struct {
	Status    string `json:"status"`
	AccountID string `json:"account_id"`
	URL       string `json:"url"`
}

// POSForm holds the raw POS inputs. Secret is stored sealed.
type POSForm struct {
	Provider string `json:"provider"`
	Username string `json:"username"`
	Secret   string `json:"secret,omitempty"`
	Port     int    `json:"port,omitempty"`
	BaseURL  string `json:"base_url"`
}

type TablesForm struct {
	TableCount int      `json:"table_count"`
	Sections   []string `json:"sections"`
}

type ReviewsForm struct {
	ReviewLink string `json:"review_link"`
}

type MessagingForm struct {
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// OnboardingSnapshot is the versioned record of one restaurant's setup flow.
// CompletedSteps is always derived from the data, never trusted as stored.
type OnboardingSnapshot struct {
	RestaurantID   uint             `json:"restaurant_id"`
	Version        int64            `json:"version"`
	CurrentStep    OnboardingStep   `json:"current_step"`
	Personnel      []PersonnelEntry `json:"personnel"`
	Payment        PaymentLinkState `json:"payment"`
	POS            POSForm          `json:"pos"`
	Tables         TablesForm       `json:"tables"`
	Reviews        ReviewsForm      `json:"reviews"`
	Messaging      MessagingForm    `json:"messaging"`
	CompletedSteps []OnboardingStep `json:"completed_steps"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewOnboardingSnapshot(restaurantID uint, now time.Time) OnboardingSnapshot {
	return OnboardingSnapshot{
		RestaurantID:   restaurantID,
		CurrentStep:    StepWelcome,
		Personnel:      []PersonnelEntry{},
		CompletedSteps: []OnboardingStep{},
		UpdatedAt:      now,
	}
}

func OnboardingSnapshotKey(restaurantID uint) string {
	return fmt.Sprintf("onboarding_%d", restaurantID)
}

// ValidateStep runs the completion predicate of step against the current
// data. Welcome has no requirements.
func (s OnboardingSnapshot) ValidateStep(step OnboardingStep) error {
	switch step {
	case StepWelcome:
		return nil
	case StepPersonnel:
		return s.validatePersonnel()
	case StepPayment:
		if s.Payment.Status != PaymentLinkLinked || s.Payment.AccountID == "" {
			return &StepValidationError{Step: step, Message: "link a payment provider account before continuing"}
		}
		return nil
	case StepPOS:
		return s.validatePOS()
	case StepTables:
		if s.Tables.TableCount < 1 {
			return &StepValidationError{Step: step, Message: "configure at least one table"}
		}
		for _, section := range s.Tables.Sections {
			if strings.TrimSpace(section) != "" {
				return nil
			}
		}
		return &StepValidationError{Step: step, Message: "configure at least one section"}
	case StepReviews:
		if !isHTTPURL(strings.TrimSpace(s.Reviews.ReviewLink)) {
			return &StepValidationError{Step: step, Message: "enter a valid review link"}
		}
		return nil
	case StepMessaging:
		if strings.TrimSpace(s.Messaging.Phone) == "" {
			return &StepValidationError{Step: step, Message: "enter the phone number of the messaging group"}
		}
		if s.Messaging.Status != MessagingStatusConnected {
			return &StepValidationError{Step: step, Message: "connect the messaging group before continuing"}
		}
		return nil
	}

	return ErrInvalidOnboardingStep
}

func (s OnboardingSnapshot) validatePersonnel() error {
	if len(s.Personnel) == 0 {
		return &StepValidationError{Step: StepPersonnel, Message: "add at least one team member"}
	}

	hasAdmin := false
	for i, p := range s.Personnel {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
			return &StepValidationError{
				Step:    StepPersonnel,
				Message: fmt.Sprintf("team member %d needs a name and an email", i+1),
			}
		}
		if p.IsRestaurantAdmin {
			hasAdmin = true
		}
	}
	if !hasAdmin {
		return &StepValidationError{Step: StepPersonnel, Message: "add at least one team member with the manager role"}
	}

	return nil
}

func (s OnboardingSnapshot) validatePOS() error {
	provider, err := ParsePOSProvider(s.POS.Provider)
	if err != nil {
		return &StepValidationError{Step: StepPOS, Message: "choose a POS provider"}
	}
	if strings.TrimSpace(s.POS.Username) == "" || s.POS.Secret == "" {
		return &StepValidationError{Step: StepPOS, Message: "enter the POS credentials"}
	}
	if _, err := ResolvePOSBaseURL(provider, s.POS.Port, s.POS.BaseURL); err != nil {
		return &StepValidationError{Step: StepPOS, Message: err.Error()}
	}

	return nil
}

func (s OnboardingSnapshot) StepComplete(step OnboardingStep) bool {
	return step != StepWelcome && s.ValidateStep(step) == nil
}

// DeriveCompletedSteps recomputes the completed set from the data alone.
func (s OnboardingSnapshot) DeriveCompletedSteps() []OnboardingStep {
	completed := make([]OnboardingStep, 0, len(GatedSteps))
	for _, step := range GatedSteps {
		if s.StepComplete(step) {
			completed = append(completed, step)
		}
	}

	return completed
}

func (s *OnboardingSnapshot) Refresh() {
	s.CompletedSteps = s.DeriveCompletedSteps()
}

// Advance moves forward one step when the current step validates.
func (s *OnboardingSnapshot) Advance() error {
	if s.CurrentStep >= LastOnboardingStep {
		return ErrAlreadyOnLastStep
	}
	if err := s.ValidateStep(s.CurrentStep); err != nil {
		return err
	}
	s.CurrentStep++

	return nil
}

// Back moves one step backwards without re-validating anything.
func (s *OnboardingSnapshot) Back() {
	if s.CurrentStep > FirstOnboardingStep {
		s.CurrentStep--
	}
}

// ReadyToFinish checks the terminal transition: the flow must sit on the
// messaging step and every gated step must validate.
func (s OnboardingSnapshot) ReadyToFinish() error {
	if s.CurrentStep != LastOnboardingStep {
		return ErrNotOnFinalStep
	}

	var missing []OnboardingStep
	for _, step := range GatedSteps {
		if !s.StepComplete(step) {
			missing = append(missing, step)
		}
	}
	if len(missing) > 0 {
		return &IncompleteOnboardingError{Missing: missing}
	}

	return nil
}

// StepDiff reports which steps flipped between two derived completion sets.
func StepDiff(before, after []OnboardingStep) (completed, reopened []OnboardingStep) {
	in := func(set []OnboardingStep, s OnboardingStep) bool {
		for _, x := range set {
			if x == s {
				return true
			}
		}
		return false
	}

	for _, s := range after {
		if !in(before, s) {
			completed = append(completed, s)
		}
	}
	for _, s := range before {
		if !in(after, s) {
			reopened = append(reopened, s)
		}
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i] < completed[j] })
	sort.Slice(reopened, func(i, j int) bool { return reopened[i] < reopened[j] })

	return completed, reopened
}

type OnboardingEventKind string

const (
	EventStepCompleted       OnboardingEventKind = "step_completed"
	EventStepReopened        OnboardingEventKind = "step_reopened"
	EventOnboardingCompleted OnboardingEventKind = "onboarding_completed"
)

type OnboardingEvent struct {
	ID           uint                `json:"id"`
	RestaurantID uint                `json:"restaurant_id"`
	Step         OnboardingStep      `json:"step"`
	Kind         OnboardingEventKind `json:"kind"`
	CreatedAt    time.Time           `json:"created_at"`
}
