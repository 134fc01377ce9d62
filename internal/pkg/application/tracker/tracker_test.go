package tracker

import (
	"context"
	goerrors "errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/diwise/piwikpro-bridge/internal/pkg/infrastructure/journal"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	"github.com/matryer/is"
)

func TestCallsBeforeInitFail(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	tr := New(journal.NewMemory())

	err := tr.TrackScreen(ctx, "example/path", nil)
	is.True(goerrors.Is(err, errors.ErrNotInitialized))
	is.Equal(err.Error(), "Piwik Pro SDK has not been initialized")

	_, err = tr.GetUserID(ctx)
	is.True(goerrors.Is(err, errors.ErrNotInitialized))

	err = tr.SetDryRun(ctx, true)
	is.True(goerrors.Is(err, errors.ErrNotInitialized))

	err = tr.Dispatch(ctx)
	is.True(goerrors.Is(err, errors.ErrNotInitialized))
}

func TestSecondInitFails(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	err := tr.Init(ctx, "https://example.com", "1111-2222-3333-dddd")

	is.True(goerrors.Is(err, errors.ErrAlreadyInitialized))
	is.Equal(err.Error(), "Piwik Pro SDK has been already initialized")
}

func TestInitWithInvalidURLFails(t *testing.T) {
	is := is.New(t)

	tr := New(journal.NewMemory())
	err := tr.Init(context.Background(), "not a url", "1111-2222-3333-dddd")

	is.True(goerrors.Is(err, errors.ErrBadRequest))

	_, err = tr.GetVisitorID(context.Background())
	is.True(goerrors.Is(err, errors.ErrNotInitialized)) // a failed init should leave the tracker uninitialized
}

func TestInitGeneratesVisitorID(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	visitorID, err := tr.GetVisitorID(ctx)

	is.NoErr(err)
	is.True(regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(visitorID))
}

func TestSettingsRoundTripInSeconds(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	is.NoErr(tr.SetSessionTimeout(ctx, 1800))
	is.NoErr(tr.SetDispatchInterval(ctx, 5))

	timeout, err := tr.GetSessionTimeout(ctx)
	is.NoErr(err)
	is.Equal(timeout, 1800)

	interval, err := tr.GetDispatchInterval(ctx)
	is.NoErr(err)
	is.Equal(interval, 5)
}

func TestDefaultSettings(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	anonymized, _ := tr.IsAnonymizationOn(ctx)
	prefixing, _ := tr.IsPrefixingOn(ctx)
	includeDefaults, _ := tr.GetIncludeDefaultCustomVariables(ctx)
	optOut, _ := tr.GetOptOut(ctx)
	dryRun, _ := tr.GetDryRun(ctx)
	timeout, _ := tr.GetSessionTimeout(ctx)

	is.True(anonymized)
	is.True(prefixing)
	is.True(includeDefaults)
	is.True(!optOut)
	is.True(!dryRun)
	is.Equal(timeout, 1800)
}

func TestUserSettings(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	is.NoErr(tr.SetUserID(ctx, "user-1"))
	is.NoErr(tr.SetUserEmail(ctx, "john@example.com"))
	is.NoErr(tr.SetVisitorID(ctx, "0123456789abcdef"))

	userID, _ := tr.GetUserID(ctx)
	email, _ := tr.GetUserEmail(ctx)
	visitorID, _ := tr.GetVisitorID(ctx)

	is.Equal(userID, "user-1")
	is.Equal(email, "john@example.com")
	is.Equal(visitorID, "0123456789abcdef")
}

func TestDispatchHandsQueuedEventsToJournal(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	is.NoErr(tr.TrackScreen(ctx, "example/path", nil))
	is.NoErr(tr.TrackGoal(ctx, 27, nil))
	is.Equal(tr.Queued(), 2)
	is.Equal(len(j.Events()), 0)

	is.NoErr(tr.Dispatch(ctx))

	events := j.Events()
	is.Equal(len(events), 2)
	is.Equal(events[0].Type, "screen")
	is.Equal(events[0].Params["path"], "screen/example/path")
	is.Equal(events[1].Type, "goal")
	is.Equal(events[0].SiteID, "1111-2222-3333-dddd")
	is.True(events[0].NewSession)
	is.True(!events[1].NewSession)
	is.Equal(tr.Queued(), 0)
}

func TestScreenPathIsNotPrefixedWhenPrefixingIsOff(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	tr.SetPrefixing(ctx, false)
	tr.TrackScreen(ctx, "example/path", nil)
	tr.Dispatch(ctx)

	is.Equal(j.Events()[0].Params["path"], "example/path")
}

func TestOptionsAreKeptInEventParams(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	options := &types.CustomEventOptions{Name: "pizza"}
	tr.TrackCustomEvent(ctx, "food", "order", options)
	tr.Dispatch(ctx)

	params := j.Events()[0].Params
	is.Equal(params["category"], "food")
	is.Equal(params["options"], options)
}

func TestZeroDispatchIntervalDispatchesImmediately(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	is.NoErr(tr.SetDispatchInterval(ctx, 0))
	is.NoErr(tr.TrackSearch(ctx, "pizza", nil))

	is.Equal(len(j.Events()), 1)
	is.Equal(tr.Queued(), 0)
}

func TestOptOutDropsEvents(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	tr.TrackScreen(ctx, "first", nil)
	is.NoErr(tr.SetOptOut(ctx, true))
	is.NoErr(tr.TrackScreen(ctx, "second", nil))
	tr.Dispatch(ctx)

	is.Equal(len(j.Events()), 0)

	optOut, err := tr.GetOptOut(ctx)
	is.NoErr(err)
	is.True(optOut)
}

func TestDryRunKeepsEventsFromJournal(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	is.NoErr(tr.SetDryRun(ctx, true))
	dryRun, _ := tr.GetDryRun(ctx)
	is.True(dryRun)

	tr.TrackDownload(ctx, "http://example.com/file.pdf", nil)
	is.NoErr(tr.Dispatch(ctx))

	is.Equal(len(j.Events()), 0)
	is.Equal(len(tr.DryRunTarget()), 1)

	is.NoErr(tr.SetDryRun(ctx, false))
	dryRun, _ = tr.GetDryRun(ctx)
	is.True(!dryRun)
	is.Equal(len(tr.DryRunTarget()), 0)
}

func TestAnonymizationHidesUser(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	tr.SetUserID(ctx, "user-1")
	tr.TrackScreen(ctx, "anonymous", nil)
	tr.SetAnonymizationState(ctx, false)
	tr.TrackScreen(ctx, "identified", nil)
	tr.Dispatch(ctx)

	events := j.Events()
	is.True(events[0].Anonymized)
	is.Equal(events[0].UserID, "")
	is.True(!events[1].Anonymized)
	is.Equal(events[1].UserID, "user-1")
}

func TestInvalidURLIsRejected(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	is.True(goerrors.Is(tr.TrackOutlink(ctx, "example", nil), errors.ErrBadRequest))
	is.True(goerrors.Is(tr.TrackCampaign(ctx, "", nil), errors.ErrBadRequest))
	is.Equal(tr.Queued(), 0)
}

func TestProfileAttributesAreStored(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	err := tr.TrackProfileAttributes(ctx, []types.ProfileAttribute{
		{Name: "food", Value: "pizza"},
		{Name: "color", Value: "green"},
	})
	is.NoErr(err)

	attrs, err := tr.GetProfileAttributes(ctx)
	is.NoErr(err)
	is.Equal(attrs, map[string]string{"food": "pizza", "color": "green"})
}

func TestEmptyProfileAttributesAreRejected(t *testing.T) {
	is, ctx, tr, _ := testSetup(t)

	err := tr.TrackProfileAttributes(ctx, nil)
	is.True(goerrors.Is(err, errors.ErrEmptyProfileAttributes))
}

func TestAudienceMembership(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	tr := New(journal.NewMemory(), Audiences("a83d4aac"))
	tr.Init(ctx, "https://example.com", "1111-2222-3333-dddd")

	member, err := tr.CheckAudienceMembership(ctx, "a83d4aac")
	is.NoErr(err)
	is.True(member)

	member, err = tr.CheckAudienceMembership(ctx, "unknown")
	is.NoErr(err)
	is.True(!member)
}

func TestSessionTimeoutStartsNewSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	j := journal.NewMemory()

	tr := New(j, Clock(func() time.Time { return now }), SessionTimeout(time.Minute))
	tr.Init(ctx, "https://example.com", "1111-2222-3333-dddd")

	tr.TrackScreen(ctx, "a", nil)
	now = now.Add(30 * time.Second)
	tr.TrackScreen(ctx, "b", nil)
	now = now.Add(2 * time.Minute)
	tr.TrackScreen(ctx, "c", nil)
	tr.StartNewSession(ctx)
	tr.TrackScreen(ctx, "d", nil)
	tr.Dispatch(ctx)

	events := j.Events()
	is.True(events[0].NewSession)
	is.True(!events[1].NewSession)
	is.True(events[2].NewSession) // inactivity longer than the session timeout
	is.True(events[3].NewSession) // explicitly started session
}

func TestFailedDispatchRequeuesEvents(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	tr := New(failingJournal{})
	tr.Init(ctx, "https://example.com", "1111-2222-3333-dddd")
	tr.TrackScreen(ctx, "a", nil)

	err := tr.Dispatch(ctx)

	is.True(err != nil)
	is.Equal(tr.Queued(), 1)
}

func TestAutomaticDispatch(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	is.NoErr(tr.Start(ctx))
	is.True(tr.Start(ctx) != nil) // should not be possible to start twice

	tr.TrackScreen(ctx, "a", nil)
	tr.SetDispatchInterval(ctx, 1)

	deadline := time.Now().Add(5 * time.Second)
	for len(j.Events()) == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	is.NoErr(tr.Stop(ctx))
	is.Equal(len(j.Events()), 1)
}

func TestStopDispatchesRemainingEvents(t *testing.T) {
	is, ctx, tr, j := testSetup(t)

	tr.SetDispatchInterval(ctx, -1)
	tr.Start(ctx)
	tr.TrackScreen(ctx, "a", nil)

	is.NoErr(tr.Stop(ctx))
	is.Equal(len(j.Events()), 1)
}

type failingJournal struct{}

func (failingJournal) Write(context.Context, []journal.Event) error {
	return fmt.Errorf("write failed")
}

func testSetup(t *testing.T) (*is.I, context.Context, *Tracker, *journal.Memory) {
	is := is.New(t)
	ctx := context.Background()

	j := journal.NewMemory()
	tr := New(j)

	is.NoErr(tr.Init(ctx, "https://example.com", "1111-2222-3333-dddd"))

	return is, ctx, tr, j
}
