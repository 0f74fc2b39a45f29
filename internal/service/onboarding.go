package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
	"github.com/restodesk/backoffice/internal/repository"
)

var ErrSnapshotNotFound = repository.ErrSnapshotNotFound

type SnapshotStore interface {
	Get(ctx context.Context, restaurantID uint) (domain.OnboardingSnapshot, error)
	Save(ctx context.Context, snapshot domain.OnboardingSnapshot, expectedVersion int64) (domain.OnboardingSnapshot, error)
	Restore(ctx context.Context, snapshot domain.OnboardingSnapshot, claimedVersion int64) error
	Delete(ctx context.Context, restaurantID uint) error
	List(ctx context.Context) ([]domain.OnboardingSnapshot, error)
}

type OnboardingEventRepository interface {
	Append(ctx context.Context, events ...domain.OnboardingEvent) error
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]domain.OnboardingEvent, error)
}

type OnboardingRestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	ApplyOnboarding(ctx context.Context, id uint, result domain.OnboardingResult) (domain.Restaurant, error)
	UpdatePaymentAccount(ctx context.Context, id uint, accountID, status string) (domain.Restaurant, error)
}

type MessageSender interface {
	Send(ctx context.Context, to, body string) error
}

// OnboardingNotifier fans snapshot changes out to live listeners.
type OnboardingNotifier interface {
	SnapshotUpdated(snapshot domain.OnboardingSnapshot)
	SnapshotRemoved(restaurantID uint, reason string)
}

type TransitionRecorder interface {
	OnboardingTransition(transition string, err error)
}

type OnboardingDeps struct {
	Snapshots   SnapshotStore
	Events      OnboardingEventRepository
	Restaurants OnboardingRestaurantRepository
	Payments    PaymentAccountLinker
	Messages    MessageSender
	Sealer      SecretSealer
	Publisher   events.Publisher
	Notifier    OnboardingNotifier
	Metrics     TransitionRecorder
	OrderingURL string
}

// StepInput carries the form of one step. Only the part matching the saved
// step is read.
type StepInput struct {
	Personnel []domain.PersonnelEntry
	POS       domain.POSInput
	Tables    domain.TablesForm
	Reviews   domain.ReviewsForm
	Messaging domain.MessagingForm
}

type OnboardingService struct {
	snapshots   SnapshotStore
	events      OnboardingEventRepository
	restaurants OnboardingRestaurantRepository
	payments    PaymentAccountLinker
	messages    MessageSender
	sealer      SecretSealer
	publisher   events.Publisher
	notifier    OnboardingNotifier
	metrics     TransitionRecorder
	orderingURL string
	now         func() time.Time
	newToken    func() string
}

func NewOnboardingService(deps OnboardingDeps) *OnboardingService {
	s := &OnboardingService{
		snapshots:   deps.Snapshots,
		events:      deps.Events,
		restaurants: deps.Restaurants,
		payments:    deps.Payments,
		messages:    deps.Messages,
		sealer:      deps.Sealer,
		publisher:   deps.Publisher,
		notifier:    deps.Notifier,
		metrics:     deps.Metrics,
		orderingURL: deps.OrderingURL,
		now:         time.Now,
		newToken:    uuid.NewString,
	}
	if s.publisher == nil {
		s.publisher = events.NewLogPublisher()
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.metrics == nil {
		s.metrics = nopTransitions{}
	}

	return s
}

// Get returns the restaurant's snapshot, creating it on the first visit.
func (s *OnboardingService) Get(ctx context.Context, restaurantID uint) (domain.OnboardingSnapshot, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return domain.OnboardingSnapshot{}, fmt.Errorf("s.restaurants.FindByID -> %w", err)
	}

	snapshot, err := s.snapshots.Get(ctx, restaurantID)
	if err == nil {
		snapshot.Refresh()
		return snapshot, nil
	}
	if !errors.Is(err, ErrSnapshotNotFound) {
		return domain.OnboardingSnapshot{}, fmt.Errorf("s.snapshots.Get -> %w", err)
	}

	fresh := domain.NewOnboardingSnapshot(restaurantID, s.now().UTC())
	fresh.Refresh()
	created, err := s.snapshots.Save(ctx, fresh, 0)
	if errors.Is(err, ErrSnapshotVersionConflict) {
		// another tab created it first
		if created, err = s.snapshots.Get(ctx, restaurantID); err != nil {
			return domain.OnboardingSnapshot{}, fmt.Errorf("s.snapshots.Get -> %w", err)
		}
		created.Refresh()
		return created, nil
	}
	if err != nil {
		return domain.OnboardingSnapshot{}, fmt.Errorf("s.snapshots.Save -> %w", err)
	}
	s.notifier.SnapshotUpdated(created)

	return created, nil
}

// SaveStep replaces the data of one step.
func (s *OnboardingService) SaveStep(ctx context.Context, restaurantID uint, step domain.OnboardingStep, expectedVersion int64, input StepInput) (domain.OnboardingSnapshot, error) {
	if !step.Valid() {
		return domain.OnboardingSnapshot{}, fmt.Errorf("%w: %v", ErrInvalidArgument, domain.ErrInvalidOnboardingStep)
	}

	return s.mutate(ctx, restaurantID, expectedVersion, "save_"+step.String(), func(_ domain.Restaurant, snapshot *domain.OnboardingSnapshot) error {
		switch step {
		case domain.StepPersonnel:
			personnel, err := normalizePersonnel(input.Personnel)
			if err != nil {
				return err
			}
			snapshot.Personnel = personnel
		case domain.StepPOS:
			form, err := s.posForm(snapshot.POS, input.POS)
			if err != nil {
				return err
			}
			snapshot.POS = form
		case domain.StepTables:
			if input.Tables.TableCount < 0 || input.Tables.TableCount > maxGeneratedTables {
				return fmt.Errorf("%w: table count must be between 0 and %d", ErrInvalidArgument, maxGeneratedTables)
			}
			snapshot.Tables = domain.TablesForm{
				TableCount: input.Tables.TableCount,
				Sections:   trimAll(input.Tables.Sections),
			}
		case domain.StepReviews:
			snapshot.Reviews = domain.ReviewsForm{ReviewLink: strings.TrimSpace(input.Reviews.ReviewLink)}
		case domain.StepMessaging:
			phone := strings.TrimSpace(input.Messaging.Phone)
			if phone != snapshot.Messaging.Phone {
				snapshot.Messaging = domain.MessagingForm{Phone: phone, Status: domain.MessagingStatusPending}
			}
		default:
			return fmt.Errorf("%w: step %s has no editable data", ErrInvalidArgument, step)
		}

		return nil
	})
}

// Next validates the current step and moves forward.
func (s *OnboardingService) Next(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error) {
	return s.mutate(ctx, restaurantID, expectedVersion, "next", func(_ domain.Restaurant, snapshot *domain.OnboardingSnapshot) error {
		return snapshot.Advance()
	})
}

// Previous moves one step back. Nothing is validated.
func (s *OnboardingService) Previous(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error) {
	return s.mutate(ctx, restaurantID, expectedVersion, "previous", func(_ domain.Restaurant, snapshot *domain.OnboardingSnapshot) error {
		snapshot.Back()
		return nil
	})
}

// CreatePaymentLink opens (or reuses) the connected payment account and
// returns the hosted onboarding link for it. A newly opened account is kept
// on the restaurant right away, so a retry after a lost save reuses it.
func (s *OnboardingService) CreatePaymentLink(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, domain.PaymentAccountLink, error) {
	const transition = "payment_link"

	restaurant, current, err := s.prepare(ctx, restaurantID, expectedVersion)
	if err != nil {
		s.metrics.OnboardingTransition(transition, err)
		return domain.OnboardingSnapshot{}, domain.PaymentAccountLink{}, err
	}

	accountID := current.Payment.AccountID
	if accountID == "" {
		accountID = restaurant.Fees.PaymentAccountID
	}
	link, err := s.payments.CreateAccountLink(ctx, restaurant, accountID)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrIntegrationFailed, err)
		s.metrics.OnboardingTransition(transition, err)
		return domain.OnboardingSnapshot{}, domain.PaymentAccountLink{}, err
	}
	if link.AccountID != accountID {
		if _, err = s.restaurants.UpdatePaymentAccount(ctx, restaurantID, link.AccountID, domain.PaymentLinkPending); err != nil {
			zap.L().Warn("failed to keep new payment account on restaurant",
				zap.Uint("restaurant_id", restaurantID), zap.String("account_id", link.AccountID), zap.Error(err))
		}
	}

	snapshot, err := s.mutate(ctx, restaurantID, expectedVersion, transition, func(_ domain.Restaurant, snapshot *domain.OnboardingSnapshot) error {
		status := domain.PaymentLinkPending
		if link.AccountID == snapshot.Payment.AccountID && snapshot.Payment.Status == domain.PaymentLinkLinked {
			status = domain.PaymentLinkLinked
		}
		snapshot.Payment = domain.PaymentLinkState{
			Status:    status,
			AccountID: link.AccountID,
			URL:       link.URL,
		}

		return nil
	})
	if err != nil {
		return domain.OnboardingSnapshot{}, domain.PaymentAccountLink{}, err
	}

	return snapshot, link, nil
}

// ConfirmPaymentLink marks the payment step linked once the provider accepts
// charges on the account.
func (s *OnboardingService) ConfirmPaymentLink(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error) {
	return s.mutate(ctx, restaurantID, expectedVersion, "payment_confirm", func(_ domain.Restaurant, snapshot *domain.OnboardingSnapshot) error {
		if snapshot.Payment.AccountID == "" {
			return fmt.Errorf("%w: create a payment link first", ErrInvalidArgument)
		}

		enabled, err := s.payments.ChargesEnabled(ctx, snapshot.Payment.AccountID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIntegrationFailed, err)
		}

		snapshot.Payment.Status = domain.PaymentLinkPending
		if enabled {
			snapshot.Payment.Status = domain.PaymentLinkLinked
		}

		return nil
	})
}

// ConnectMessaging sends a welcome message to the group phone. Delivery
// marks the group connected. The version is checked before sending so a
// stale tab does not text the group.
func (s *OnboardingService) ConnectMessaging(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error) {
	const transition = "messaging_connect"

	restaurant, current, err := s.prepare(ctx, restaurantID, expectedVersion)
	if err == nil {
		err = s.sendWelcome(ctx, restaurant, current.Messaging.Phone)
	}
	if err != nil {
		s.metrics.OnboardingTransition(transition, err)
		return domain.OnboardingSnapshot{}, err
	}
	phone := strings.TrimSpace(current.Messaging.Phone)

	return s.mutate(ctx, restaurantID, expectedVersion, transition, func(_ domain.Restaurant, snapshot *domain.OnboardingSnapshot) error {
		if strings.TrimSpace(snapshot.Messaging.Phone) == phone {
			snapshot.Messaging.Status = domain.MessagingStatusConnected
		}

		return nil
	})
}

func (s *OnboardingService) sendWelcome(ctx context.Context, restaurant domain.Restaurant, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: enter the phone number of the messaging group first", ErrInvalidArgument)
	}

	body := fmt.Sprintf("Welcome to RestoDesk! This number now receives order notifications for %s.", restaurant.Name)
	if err := s.messages.Send(ctx, phone, body); err != nil {
		return fmt.Errorf("%w: %v", ErrIntegrationFailed, err)
	}

	return nil
}

// Finish writes the collected data into the restaurant and drops the
// snapshot. The snapshot is claimed with a version bump first so two
// concurrent finishes cannot both apply. A failed apply puts the snapshot
// back at expectedVersion, so the caller can fix the data and retry.
func (s *OnboardingService) Finish(ctx context.Context, restaurantID uint, expectedVersion int64) (restaurant domain.Restaurant, err error) {
	defer func() { s.metrics.OnboardingTransition("finish", err) }()

	restaurant, snapshot, err := s.prepare(ctx, restaurantID, expectedVersion)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if err = snapshot.ReadyToFinish(); err != nil {
		return domain.Restaurant{}, err
	}

	result, err := s.onboardingResult(restaurant, snapshot)
	if err != nil {
		return domain.Restaurant{}, err
	}

	claim := snapshot
	claim.UpdatedAt = s.now().UTC()
	claimed, err := s.snapshots.Save(ctx, claim, expectedVersion)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.snapshots.Save -> %w", err)
	}

	restaurant, err = s.restaurants.ApplyOnboarding(ctx, restaurantID, result)
	if err != nil {
		s.release(ctx, snapshot, claimed)
		return domain.Restaurant{}, fmt.Errorf("s.restaurants.ApplyOnboarding -> %w", err)
	}

	if err := s.snapshots.Delete(ctx, restaurantID); err != nil {
		zap.L().Warn("failed to delete finished onboarding snapshot",
			zap.Uint("restaurant_id", restaurantID), zap.Error(err))
	}

	s.audit(ctx, domain.OnboardingEvent{
		RestaurantID: restaurantID,
		Step:         domain.LastOnboardingStep,
		Kind:         domain.EventOnboardingCompleted,
		CreatedAt:    result.OnboardedAt,
	})
	publishEvent(ctx, s.publisher, events.New(events.EntityOnboarding, events.ActionCompleted, restaurantID, map[string]int{
		"staff":  len(result.Staff),
		"tables": len(result.Tables),
	}))
	s.notifier.SnapshotRemoved(restaurantID, "completed")

	for i := range restaurant.Tables {
		restaurant.Tables[i].Link = domain.TableLink(s.orderingURL, restaurantID, restaurant.Tables[i].Token)
	}

	return restaurant, nil
}

// release undoes a finish claim. A conflict means someone saved after the
// claim and already notified. Any other failure leaves the claim stored, so
// listeners are told its version.
func (s *OnboardingService) release(ctx context.Context, original, claimed domain.OnboardingSnapshot) {
	err := s.snapshots.Restore(ctx, original, claimed.Version)
	if err == nil {
		return
	}

	zap.L().Warn("failed to release onboarding finish claim",
		zap.Uint("restaurant_id", original.RestaurantID), zap.Int64("claimed_version", claimed.Version), zap.Error(err))
	if !errors.Is(err, ErrSnapshotVersionConflict) {
		claimed.Refresh()
		s.notifier.SnapshotUpdated(claimed)
	}
}

// Reset discards the snapshot. The next Get starts over at welcome.
func (s *OnboardingService) Reset(ctx context.Context, restaurantID uint) error {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return fmt.Errorf("s.restaurants.FindByID -> %w", err)
	}
	if err := s.snapshots.Delete(ctx, restaurantID); err != nil {
		return fmt.Errorf("s.snapshots.Delete -> %w", err)
	}
	s.notifier.SnapshotRemoved(restaurantID, "reset")

	return nil
}

func (s *OnboardingService) ListEvents(ctx context.Context, restaurantID uint) ([]domain.OnboardingEvent, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("s.restaurants.FindByID -> %w", err)
	}

	list, err := s.events.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("s.events.ListByRestaurant -> %w", err)
	}

	return list, nil
}

// Stale returns the snapshots nobody touched for at least olderThan.
func (s *OnboardingService) Stale(ctx context.Context, olderThan time.Duration) ([]domain.OnboardingSnapshot, error) {
	all, err := s.snapshots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.snapshots.List -> %w", err)
	}

	cutoff := s.now().Add(-olderThan)
	stale := make([]domain.OnboardingSnapshot, 0)
	for _, snapshot := range all {
		if snapshot.UpdatedAt.Before(cutoff) {
			snapshot.Refresh()
			stale = append(stale, snapshot)
		}
	}

	return stale, nil
}

// mutate runs change against the stored snapshot when expectedVersion still
// matches, then records step flips in the audit log.
func (s *OnboardingService) mutate(
	ctx context.Context,
	restaurantID uint,
	expectedVersion int64,
	transition string,
	change func(restaurant domain.Restaurant, snapshot *domain.OnboardingSnapshot) error,
) (saved domain.OnboardingSnapshot, err error) {
	defer func() { s.metrics.OnboardingTransition(transition, err) }()

	restaurant, snapshot, err := s.prepare(ctx, restaurantID, expectedVersion)
	if err != nil {
		return domain.OnboardingSnapshot{}, err
	}

	before := snapshot.CompletedSteps
	if err = change(restaurant, &snapshot); err != nil {
		return domain.OnboardingSnapshot{}, err
	}
	snapshot.Refresh()
	snapshot.UpdatedAt = s.now().UTC()

	saved, err = s.snapshots.Save(ctx, snapshot, expectedVersion)
	if err != nil {
		return domain.OnboardingSnapshot{}, fmt.Errorf("s.snapshots.Save -> %w", err)
	}

	completed, reopened := domain.StepDiff(before, saved.CompletedSteps)
	flips := make([]domain.OnboardingEvent, 0, len(completed)+len(reopened))
	for _, step := range completed {
		flips = append(flips, domain.OnboardingEvent{RestaurantID: restaurantID, Step: step, Kind: domain.EventStepCompleted, CreatedAt: saved.UpdatedAt})
	}
	for _, step := range reopened {
		flips = append(flips, domain.OnboardingEvent{RestaurantID: restaurantID, Step: step, Kind: domain.EventStepReopened, CreatedAt: saved.UpdatedAt})
	}
	s.audit(ctx, flips...)
	s.notifier.SnapshotUpdated(saved)

	return saved, nil
}

// prepare checks expectedVersion before a step calls out to a provider.
// mutate checks it again when saving.
func (s *OnboardingService) prepare(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.Restaurant, domain.OnboardingSnapshot, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.Restaurant{}, domain.OnboardingSnapshot{}, fmt.Errorf("s.restaurants.FindByID -> %w", err)
	}

	snapshot, err := s.load(ctx, restaurantID)
	if err != nil {
		return domain.Restaurant{}, domain.OnboardingSnapshot{}, err
	}
	if snapshot.Version != expectedVersion {
		return domain.Restaurant{}, domain.OnboardingSnapshot{}, ErrSnapshotVersionConflict
	}

	return restaurant, snapshot, nil
}

// load reads the stored snapshot or starts an unsaved one at version 0.
func (s *OnboardingService) load(ctx context.Context, restaurantID uint) (domain.OnboardingSnapshot, error) {
	snapshot, err := s.snapshots.Get(ctx, restaurantID)
	if errors.Is(err, ErrSnapshotNotFound) {
		snapshot = domain.NewOnboardingSnapshot(restaurantID, s.now().UTC())
	} else if err != nil {
		return domain.OnboardingSnapshot{}, fmt.Errorf("s.snapshots.Get -> %w", err)
	}
	snapshot.Refresh()

	return snapshot, nil
}

func (s *OnboardingService) audit(ctx context.Context, list ...domain.OnboardingEvent) {
	if len(list) == 0 {
		return
	}
	if err := s.events.Append(ctx, list...); err != nil {
		zap.L().Warn("failed to append onboarding audit events",
			zap.Uint("restaurant_id", list[0].RestaurantID), zap.Error(err))
	}
}

// posForm merges submitted POS inputs into the stored form. A blank secret
// keeps the sealed one already stored.
func (s *OnboardingService) posForm(stored domain.POSForm, input domain.POSInput) (domain.POSForm, error) {
	form := domain.POSForm{
		Provider: strings.ToUpper(strings.TrimSpace(input.Provider)),
		Username: strings.TrimSpace(input.Username),
		Secret:   stored.Secret,
		Port:     input.Port,
		BaseURL:  strings.TrimSpace(input.BaseURL),
	}
	if input.Port < 0 || input.Port > 65535 {
		return domain.POSForm{}, fmt.Errorf("%w: %v", ErrInvalidArgument, domain.ErrInvalidPOSPort)
	}

	if input.Secret != "" {
		sealed, err := s.sealer.Seal(input.Secret)
		if err != nil {
			return domain.POSForm{}, fmt.Errorf("s.sealer.Seal -> %w", err)
		}
		form.Secret = sealed
	}

	return form, nil
}

func (s *OnboardingService) onboardingResult(restaurant domain.Restaurant, snapshot domain.OnboardingSnapshot) (domain.OnboardingResult, error) {
	provider, err := domain.ParsePOSProvider(snapshot.POS.Provider)
	if err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("domain.ParsePOSProvider -> %w", err)
	}
	baseURL, err := domain.ResolvePOSBaseURL(provider, snapshot.POS.Port, snapshot.POS.BaseURL)
	if err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("domain.ResolvePOSBaseURL -> %w", err)
	}
	port := 0
	if provider == domain.POSProviderMPlusKassa {
		port = snapshot.POS.Port
	}

	staff := make([]domain.TeamMember, 0, len(snapshot.Personnel))
	for _, p := range snapshot.Personnel {
		staff = append(staff, domain.TeamMember{
			RestaurantID:      restaurant.ID,
			Name:              p.Name,
			Email:             p.Email,
			Phone:             p.Phone,
			IsRestaurantAdmin: p.IsRestaurantAdmin,
			IsRestaurantStaff: p.IsRestaurantStaff,
			IsActive:          true,
		})
	}

	tables := domain.PlanTables(
		restaurant.ID,
		domain.NextTableNumber(restaurant.Tables),
		snapshot.Tables.TableCount,
		snapshot.Tables.Sections,
		s.newToken,
	)

	return domain.OnboardingResult{
		Staff:  staff,
		Tables: tables,
		POS: domain.POSConfig{
			Provider:  provider,
			Username:  snapshot.POS.Username,
			Secret:    snapshot.POS.Secret,
			HasSecret: true,
			Port:      port,
			BaseURL:   baseURL,
		},
		ReviewLink: snapshot.Reviews.ReviewLink,
		MessagingGroup: domain.MessagingGroup{
			Phone:  snapshot.Messaging.Phone,
			Status: snapshot.Messaging.Status,
		},
		PaymentAccount: snapshot.Payment.AccountID,
		PaymentStatus:  snapshot.Payment.Status,
		OnboardedAt:    s.now().UTC(),
	}, nil
}

func normalizePersonnel(entries []domain.PersonnelEntry) ([]domain.PersonnelEntry, error) {
	out := make([]domain.PersonnelEntry, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		e.Email = strings.ToLower(strings.TrimSpace(e.Email))
		e.Phone = strings.TrimSpace(e.Phone)

		member := domain.TeamMember{IsRestaurantAdmin: e.IsRestaurantAdmin, IsRestaurantStaff: e.IsRestaurantStaff}
		if err := member.ValidateRoles(); err != nil {
			return nil, fmt.Errorf("%w: team member %d: %v", ErrInvalidArgument, i+1, err)
		}
		if e.Email != "" {
			if seen[e.Email] {
				return nil, fmt.Errorf("%w: email %s is used twice", ErrInvalidArgument, e.Email)
			}
			seen[e.Email] = true
		}
		out = append(out, e)
	}

	return out, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

type nopNotifier struct{}

func (nopNotifier) SnapshotUpdated(domain.OnboardingSnapshot) {}
func (nopNotifier) SnapshotRemoved(uint, string)             {}

type nopTransitions struct{}

func (nopTransitions) OnboardingTransition(string, error) {}
