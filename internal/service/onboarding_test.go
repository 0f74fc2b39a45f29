package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
)

type onboardingFixture struct {
	env      *testEnv
	svc      *OnboardingService
	linker   *fakeLinker
	sender   *fakeSender
	notifier *fakeNotifier
	metrics  *countingRecorder
	now      time.Time
}

func newOnboardingFixture(t *testing.T) *onboardingFixture {
	t.Helper()

	f := &onboardingFixture{
		env:      newTestEnv(t),
		linker:   &fakeLinker{accountID: "acct_123"},
		sender:   &fakeSender{},
		notifier: &fakeNotifier{},
		metrics:  newCountingRecorder(),
		now:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewOnboardingService(OnboardingDeps{
		Snapshots:   f.env.snapshots,
		Events:      f.env.events,
		Restaurants: f.env.restaurants,
		Payments:    f.linker,
		Messages:    f.sender,
		Sealer:      f.env.sealer,
		Publisher:   f.env.published,
		Notifier:    f.notifier,
		Metrics:     f.metrics,
		OrderingURL: testOrderingURL,
	})
	f.svc.now = func() time.Time { return f.now }

	return f
}

// walk fills every step and advances to messaging, returning the last
// snapshot.
func (f *onboardingFixture) walk(t *testing.T, restaurantID uint) domain.OnboardingSnapshot {
	t.Helper()
	ctx := context.Background()

	s, err := f.svc.Get(ctx, restaurantID)
	require.NoError(t, err)

	s, err = f.svc.Next(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, restaurantID, domain.StepPersonnel, s.Version, StepInput{Personnel: []domain.PersonnelEntry{
		{Name: "Ana", Email: "Ana@Example.com ", IsRestaurantAdmin: true},
		{Name: "Bo", Email: "bo@example.com", IsRestaurantStaff: true},
	}})
	require.NoError(t, err)
	s, err = f.svc.Next(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	s, _, err = f.svc.CreatePaymentLink(ctx, restaurantID, s.Version)
	require.NoError(t, err)
	f.linker.enabled = true
	s, err = f.svc.ConfirmPaymentLink(ctx, restaurantID, s.Version)
	require.NoError(t, err)
	s, err = f.svc.Next(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, restaurantID, domain.StepPOS, s.Version, StepInput{POS: domain.POSInput{
		Provider: "mpluskassa", Username: "api", Secret: "s3cret", Port: 34562,
	}})
	require.NoError(t, err)
	s, err = f.svc.Next(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, restaurantID, domain.StepTables, s.Version, StepInput{Tables: domain.TablesForm{
		TableCount: 4, Sections: []string{"Terrace", " ", "Bar"},
	}})
	require.NoError(t, err)
	s, err = f.svc.Next(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, restaurantID, domain.StepReviews, s.Version, StepInput{Reviews: domain.ReviewsForm{
		ReviewLink: "https://g.page/r/abc/review",
	}})
	require.NoError(t, err)
	s, err = f.svc.Next(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, restaurantID, domain.StepMessaging, s.Version, StepInput{Messaging: domain.MessagingForm{
		Phone: "+31600000000",
	}})
	require.NoError(t, err)
	s, err = f.svc.ConnectMessaging(ctx, restaurantID, s.Version)
	require.NoError(t, err)

	return s
}

func TestOnboardingService_GetCreatesSnapshotOnce(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	first, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.Equal(t, domain.StepWelcome, first.CurrentStep)
	assert.Empty(t, first.CompletedSteps)

	again, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Version, again.Version)

	_, err = f.svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestOnboardingService_NextBlocksOnInvalidStep(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	s, err = f.svc.Next(ctx, r.ID, s.Version)
	require.NoError(t, err)
	require.Equal(t, domain.StepPersonnel, s.CurrentStep)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepPersonnel, s.Version, StepInput{Personnel: []domain.PersonnelEntry{
		{Name: "Bo", Email: "bo@example.com", IsRestaurantStaff: true},
	}})
	require.NoError(t, err)

	_, err = f.svc.Next(ctx, r.ID, s.Version)
	var stepErr *domain.StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, domain.StepPersonnel, stepErr.Step)
	assert.Equal(t, 1, f.metrics.failures["next"])

	stored, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPersonnel, stored.CurrentStep)
	assert.Equal(t, s.Version, stored.Version)
}

func TestOnboardingService_RejectsStaleVersion(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, r.ID, s.Version)
	require.NoError(t, err)

	_, err = f.svc.Next(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrSnapshotVersionConflict)
}

func TestOnboardingService_SaveStepValidatesInput(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		step  domain.OnboardingStep
		input StepInput
	}{
		{
			name:  "both role flags",
			step:  domain.StepPersonnel,
			input: StepInput{Personnel: []domain.PersonnelEntry{{Name: "A", Email: "a@x.io", IsRestaurantAdmin: true, IsRestaurantStaff: true}}},
		},
		{
			name:  "no role flag",
			step:  domain.StepPersonnel,
			input: StepInput{Personnel: []domain.PersonnelEntry{{Name: "A", Email: "a@x.io"}}},
		},
		{
			name: "duplicate email",
			step: domain.StepPersonnel,
			input: StepInput{Personnel: []domain.PersonnelEntry{
				{Name: "A", Email: "a@x.io", IsRestaurantAdmin: true},
				{Name: "B", Email: "A@X.io", IsRestaurantStaff: true},
			}},
		},
		{name: "welcome has no data", step: domain.StepWelcome},
		{name: "payment is set through links", step: domain.StepPayment},
		{name: "negative table count", step: domain.StepTables, input: StepInput{Tables: domain.TablesForm{TableCount: -1}}},
		{name: "port out of range", step: domain.StepPOS, input: StepInput{POS: domain.POSInput{Provider: "MPLUSKASSA", Port: 70000}}},
		{name: "unknown step", step: domain.OnboardingStep(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SaveStep(ctx, r.ID, tt.step, s.Version, tt.input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestOnboardingService_POSSecretIsSealedAndKept(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepPOS, s.Version, StepInput{POS: domain.POSInput{
		Provider: "untill", Username: "api", Secret: "plain", BaseURL: "https://pos.example.com/",
	}})
	require.NoError(t, err)
	assert.NotEqual(t, "plain", s.POS.Secret)
	plain, err := f.env.sealer.Open(s.POS.Secret)
	require.NoError(t, err)
	assert.Equal(t, "plain", plain)
	assert.Contains(t, s.CompletedSteps, domain.StepPOS)

	sealed := s.POS.Secret
	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepPOS, s.Version, StepInput{POS: domain.POSInput{
		Provider: "UNTILL", Username: "api2", BaseURL: "https://pos.example.com",
	}})
	require.NoError(t, err)
	assert.Equal(t, sealed, s.POS.Secret)
	assert.Equal(t, "api2", s.POS.Username)
}

func TestOnboardingService_AuditsStepFlips(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepReviews, s.Version, StepInput{Reviews: domain.ReviewsForm{ReviewLink: "https://g.page/x"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.OnboardingStep{domain.StepReviews}, s.CompletedSteps)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepReviews, s.Version, StepInput{Reviews: domain.ReviewsForm{ReviewLink: "not a link"}})
	require.NoError(t, err)
	assert.Empty(t, s.CompletedSteps)

	list, err := f.svc.ListEvents(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.EventStepCompleted, list[0].Kind)
	assert.Equal(t, domain.EventStepReopened, list[1].Kind)
	assert.Equal(t, domain.StepReviews, list[1].Step)
}

func TestOnboardingService_MessagingPhoneChangeResetsStatus(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)

	_, err = f.svc.ConnectMessaging(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepMessaging, s.Version, StepInput{Messaging: domain.MessagingForm{Phone: "+3161111"}})
	require.NoError(t, err)
	s, err = f.svc.ConnectMessaging(ctx, r.ID, s.Version)
	require.NoError(t, err)
	assert.Equal(t, domain.MessagingStatusConnected, s.Messaging.Status)
	assert.Equal(t, []string{"+3161111"}, f.sender.sent)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepMessaging, s.Version, StepInput{Messaging: domain.MessagingForm{Phone: "+3161111"}})
	require.NoError(t, err)
	assert.Equal(t, domain.MessagingStatusConnected, s.Messaging.Status)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepMessaging, s.Version, StepInput{Messaging: domain.MessagingForm{Phone: "+3162222"}})
	require.NoError(t, err)
	assert.Equal(t, domain.MessagingStatusPending, s.Messaging.Status)

	f.sender.err = errUpstream
	_, err = f.svc.ConnectMessaging(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrIntegrationFailed)
}

func TestOnboardingService_PaymentLinkFailure(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)

	_, err = f.svc.ConfirmPaymentLink(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	f.linker.err = errUpstream
	_, _, err = f.svc.CreatePaymentLink(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrIntegrationFailed)

	stored, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Version, stored.Version)
}

func TestOnboardingService_ProviderCallsNeedCurrentVersion(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepMessaging, s.Version, StepInput{Messaging: domain.MessagingForm{Phone: "+31600000000"}})
	require.NoError(t, err)

	_, _, err = f.svc.CreatePaymentLink(ctx, r.ID, s.Version-1)
	assert.ErrorIs(t, err, ErrSnapshotVersionConflict)
	assert.Zero(t, f.linker.calls)

	_, err = f.svc.ConnectMessaging(ctx, r.ID, s.Version-1)
	assert.ErrorIs(t, err, ErrSnapshotVersionConflict)
	assert.Empty(t, f.sender.sent)
	assert.Equal(t, 1, f.metrics.failures["messaging_connect"])

	s, _, err = f.svc.CreatePaymentLink(ctx, r.ID, s.Version)
	require.NoError(t, err)
	assert.Equal(t, "acct_123", s.Payment.AccountID)

	// the new account is on the restaurant before the wizard finishes
	stored, err := f.env.restaurants.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "acct_123", stored.Fees.PaymentAccountID)
	assert.Equal(t, domain.PaymentLinkPending, stored.Fees.PaymentLinkStatus)
}

func TestOnboardingService_FinishAppliesEverything(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s := f.walk(t, r.ID)
	require.Equal(t, domain.StepMessaging, s.CurrentStep)
	require.Len(t, s.CompletedSteps, len(domain.GatedSteps))

	_, err := f.svc.Next(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, domain.ErrAlreadyOnLastStep)

	done, err := f.svc.Finish(ctx, r.ID, s.Version)
	require.NoError(t, err)
	require.NotNil(t, done.OnboardedAt)
	assert.Equal(t, "https://g.page/r/abc/review", done.ReviewLink)
	assert.Equal(t, domain.MessagingStatusConnected, done.MessagingGroup.Status)
	assert.Equal(t, domain.POSProviderMPlusKassa, done.POS.Provider)
	assert.Equal(t, "https://api.mpluskassa.nl:34562", done.POS.BaseURL)
	assert.True(t, done.POS.HasSecret)
	assert.Equal(t, "acct_123", done.Fees.PaymentAccountID)
	assert.Equal(t, domain.PaymentLinkLinked, done.Fees.PaymentLinkStatus)

	require.Len(t, done.Staff, 2)
	assert.Equal(t, "ana@example.com", done.Staff[0].Email)
	assert.True(t, done.Staff[0].IsRestaurantAdmin)

	require.Len(t, done.Tables, 4)
	assert.Equal(t, 1, done.Tables[0].Number)
	assert.Equal(t, "Terrace", done.Tables[0].Section)
	assert.Equal(t, "Bar", done.Tables[1].Section)
	assert.Contains(t, done.Tables[0].Link, testOrderingURL)

	_, err = f.env.snapshots.Get(ctx, r.ID)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	list, err := f.svc.ListEvents(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventOnboardingCompleted, list[len(list)-1].Kind)

	published := f.env.published.Events()
	require.NotEmpty(t, published)
	last := published[len(published)-1]
	assert.Equal(t, events.EntityOnboarding, last.Entity)
	assert.Equal(t, events.ActionCompleted, last.Action)
	assert.Equal(t, []string{"completed"}, f.notifier.removed)
}

func TestOnboardingService_FinishRequiresFinalStepAndVersion(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	_, err = f.svc.Finish(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, domain.ErrNotOnFinalStep)

	s = f.walk(t, r.ID)
	_, err = f.svc.Finish(ctx, r.ID, s.Version-1)
	assert.ErrorIs(t, err, ErrSnapshotVersionConflict)

	// reopen a step while sitting on messaging
	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepReviews, s.Version, StepInput{})
	require.NoError(t, err)
	_, err = f.svc.Finish(ctx, r.ID, s.Version)
	var incomplete *domain.IncompleteOnboardingError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []domain.OnboardingStep{domain.StepReviews}, incomplete.Missing)
}

func TestOnboardingService_FailedFinishKeepsVersion(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	_, err := NewTeamService(f.env.members, f.env.restaurants).Create(ctx, domain.TeamMember{
		RestaurantID: r.ID, Name: "Bo", Email: "bo@example.com", IsRestaurantStaff: true, IsActive: true,
	})
	require.NoError(t, err)

	s := f.walk(t, r.ID)

	_, err = f.svc.Finish(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrTeamMemberEmailExists)

	stored, err := f.env.snapshots.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Version, stored.Version)
	assert.Empty(t, f.notifier.removed)

	// the retry reports the same problem, not a version conflict
	_, err = f.svc.Finish(ctx, r.ID, s.Version)
	assert.ErrorIs(t, err, ErrTeamMemberEmailExists)

	s, err = f.svc.SaveStep(ctx, r.ID, domain.StepPersonnel, s.Version, StepInput{Personnel: []domain.PersonnelEntry{
		{Name: "Ana", Email: "ana@example.com", IsRestaurantAdmin: true},
	}})
	require.NoError(t, err)
	done, err := f.svc.Finish(ctx, r.ID, s.Version)
	require.NoError(t, err)
	assert.Len(t, done.Staff, 2)
	assert.Equal(t, 2, f.metrics.failures["finish"])
}

func TestOnboardingService_PreviousAndReset(t *testing.T) {
	f := newOnboardingFixture(t)
	r := f.env.seedRestaurant(t, "Bistro")
	ctx := context.Background()

	s, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	s, err = f.svc.Previous(ctx, r.ID, s.Version)
	require.NoError(t, err)
	assert.Equal(t, domain.StepWelcome, s.CurrentStep)

	s, err = f.svc.Next(ctx, r.ID, s.Version)
	require.NoError(t, err)
	s, err = f.svc.Previous(ctx, r.ID, s.Version)
	require.NoError(t, err)
	assert.Equal(t, domain.StepWelcome, s.CurrentStep)

	require.NoError(t, f.svc.Reset(ctx, r.ID))
	fresh, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.Version)
	assert.Contains(t, f.notifier.removed, "reset")
}

func TestOnboardingService_Stale(t *testing.T) {
	f := newOnboardingFixture(t)
	old := f.env.seedRestaurant(t, "Old")
	recent := f.env.seedRestaurant(t, "Recent")
	ctx := context.Background()

	_, err := f.svc.Get(ctx, old.ID)
	require.NoError(t, err)

	f.now = f.now.Add(72 * time.Hour)
	_, err = f.svc.Get(ctx, recent.ID)
	require.NoError(t, err)

	stale, err := f.svc.Stale(ctx, 48*time.Hour)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, old.ID, stale[0].RestaurantID)
}
