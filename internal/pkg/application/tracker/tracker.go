// Package tracker is an in-process stand in for the native Piwik PRO tracker.
// It keeps the tracker state of a single app installation, queues tracked
// events and dispatches them to a journal.
package tracker

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/diwise/piwikpro-bridge/internal/pkg/infrastructure/journal"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultDispatchInterval time.Duration = 120 * time.Second
	DefaultSessionTimeout   time.Duration = 30 * time.Minute

	screenPrefix string = "screen/"
)

var tracer = otel.Tracer("piwikpro-bridge/tracker")

var _ piwikpro.NativeCapability = &Tracker{}

func DispatchInterval(interval time.Duration) func(*Tracker) {
	return func(t *Tracker) {
		t.dispatchInterval = interval
	}
}

func SessionTimeout(timeout time.Duration) func(*Tracker) {
	return func(t *Tracker) {
		t.sessionTimeout = timeout
	}
}

// Audiences sets the audiences that the visitor is a member of.
func Audiences(audienceIDs ...string) func(*Tracker) {
	return func(t *Tracker) {
		for _, id := range audienceIDs {
			t.audiences[id] = struct{}{}
		}
	}
}

// AppVersion is reported in the default custom variables of every event.
func AppVersion(version string) func(*Tracker) {
	return func(t *Tracker) {
		t.appVersion = version
	}
}

func Clock(now func() time.Time) func(*Tracker) {
	return func(t *Tracker) {
		t.now = now
	}
}

type Tracker struct {
	mu sync.Mutex

	initialized bool
	apiURL      string
	siteID      string

	userID    string
	userEmail string
	visitorID string

	sessionTimeout   time.Duration
	dispatchInterval time.Duration
	lastActivity     time.Time
	newSession       bool

	includeDefaultCustomVariables bool
	anonymization                 bool
	optOut                        bool
	prefixing                     bool
	dryRunTarget                  []journal.Event

	appVersion string
	queue      []journal.Event
	profile    map[string]string
	audiences  map[string]struct{}
	journal    journal.Journal
	now        func() time.Time

	running      bool
	reconfigured chan struct{}
	done         chan struct{}
	stopped      chan struct{}
}

func New(j journal.Journal, options ...func(*Tracker)) *Tracker {
	t := &Tracker{
		sessionTimeout:                DefaultSessionTimeout,
		dispatchInterval:              DefaultDispatchInterval,
		includeDefaultCustomVariables: true,
		anonymization:                 true,
		prefixing:                     true,
		queue:                         []journal.Event{},
		profile:                       map[string]string{},
		audiences:                     map[string]struct{}{},
		journal:                       j,
		now:                           time.Now,
		reconfigured:                  make(chan struct{}, 1),
	}

	for _, option := range options {
		option(t)
	}

	return t
}

func (t *Tracker) Init(ctx context.Context, apiURL, siteID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return errors.NewAlreadyInitializedError()
	}

	if err := validateURL(apiURL); err != nil {
		return err
	}

	if siteID == "" {
		return errors.NewBadRequestError("site id must not be empty")
	}

	t.apiURL = apiURL
	t.siteID = siteID
	t.visitorID = newVisitorID()
	t.newSession = true
	t.initialized = true

	logging.GetFromContext(ctx).Info("tracker initialized", "api_url", apiURL, "site_id", siteID)

	return nil
}

func (t *Tracker) TrackScreen(ctx context.Context, path string, options *types.ScreenViewOptions) error {
	return t.track(ctx, "screen", func() (map[string]any, error) {
		if t.prefixing && !strings.HasPrefix(path, screenPrefix) {
			path = screenPrefix + path
		}
		return withOptions(map[string]any{"path": path}, options), nil
	})
}

func (t *Tracker) TrackCustomEvent(ctx context.Context, category, action string, options *types.CustomEventOptions) error {
	return t.track(ctx, "custom-event", func() (map[string]any, error) {
		return withOptions(map[string]any{"category": category, "action": action}, options), nil
	})
}

func (t *Tracker) TrackException(ctx context.Context, description string, isFatal bool, options *types.ExceptionOptions) error {
	return t.track(ctx, "exception", func() (map[string]any, error) {
		return withOptions(map[string]any{"description": description, "isFatal": isFatal}, options), nil
	})
}

func (t *Tracker) TrackSocialInteraction(ctx context.Context, interaction, network string, options *types.SocialInteractionOptions) error {
	return t.track(ctx, "social-interaction", func() (map[string]any, error) {
		return withOptions(map[string]any{"interaction": interaction, "network": network}, options), nil
	})
}

func (t *Tracker) TrackDownload(ctx context.Context, url string, options *types.DownloadOptions) error {
	return t.track(ctx, "download", func() (map[string]any, error) {
		if err := validateURL(url); err != nil {
			return nil, err
		}
		return withOptions(map[string]any{"url": url}, options), nil
	})
}

func (t *Tracker) TrackOutlink(ctx context.Context, url string, options *types.OutlinkOptions) error {
	return t.track(ctx, "outlink", func() (map[string]any, error) {
		if err := validateURL(url); err != nil {
			return nil, err
		}
		return withOptions(map[string]any{"url": url}, options), nil
	})
}

func (t *Tracker) TrackSearch(ctx context.Context, keyword string, options *types.SearchOptions) error {
	return t.track(ctx, "search", func() (map[string]any, error) {
		return withOptions(map[string]any{"keyword": keyword}, options), nil
	})
}

func (t *Tracker) TrackImpression(ctx context.Context, contentName string, options *types.ImpressionOptions) error {
	return t.track(ctx, "impression", func() (map[string]any, error) {
		return withOptions(map[string]any{"contentName": contentName}, options), nil
	})
}

func (t *Tracker) TrackInteraction(ctx context.Context, contentName string, options *types.InteractionOptions) error {
	return t.track(ctx, "interaction", func() (map[string]any, error) {
		return withOptions(map[string]any{"contentName": contentName, "interaction": "click"}, options), nil
	})
}

func (t *Tracker) TrackGoal(ctx context.Context, goal int, options *types.GoalOptions) error {
	return t.track(ctx, "goal", func() (map[string]any, error) {
		return withOptions(map[string]any{"goal": goal}, options), nil
	})
}

func (t *Tracker) TrackEcommerce(ctx context.Context, orderID string, grandTotal int, options *types.EcommerceOptions) error {
	return t.track(ctx, "ecommerce", func() (map[string]any, error) {
		return withOptions(map[string]any{"orderId": orderID, "grandTotal": grandTotal}, options), nil
	})
}

func (t *Tracker) TrackCampaign(ctx context.Context, url string, options *types.CampaignOptions) error {
	return t.track(ctx, "campaign", func() (map[string]any, error) {
		if err := validateURL(url); err != nil {
			return nil, err
		}
		return withOptions(map[string]any{"url": url}, options), nil
	})
}

// TrackProfileAttributes sets the first attribute and adds the rest, the
// same way the native audience manager builds the event.
func (t *Tracker) TrackProfileAttributes(ctx context.Context, attributes []types.ProfileAttribute) error {
	return t.track(ctx, "profile-attributes", func() (map[string]any, error) {
		if len(attributes) == 0 {
			return nil, errors.NewEmptyProfileAttributesError()
		}

		for _, a := range attributes {
			t.profile[a.Name] = a.Value
		}

		return map[string]any{"profileAttributes": slices.Clone(attributes)}, nil
	})
}

func (t *Tracker) GetProfileAttributes(ctx context.Context) (map[string]string, error) {
	return get(t, func() map[string]string {
		return maps.Clone(t.profile)
	})
}

func (t *Tracker) CheckAudienceMembership(ctx context.Context, audienceID string) (bool, error) {
	return get(t, func() bool {
		_, ok := t.audiences[audienceID]
		return ok
	})
}

func (t *Tracker) SetUserID(ctx context.Context, userID string) error {
	return t.set(func() { t.userID = userID })
}

func (t *Tracker) GetUserID(ctx context.Context) (string, error) {
	return get(t, func() string { return t.userID })
}

func (t *Tracker) SetUserEmail(ctx context.Context, email string) error {
	return t.set(func() { t.userEmail = email })
}

func (t *Tracker) GetUserEmail(ctx context.Context) (string, error) {
	return get(t, func() string { return t.userEmail })
}

func (t *Tracker) SetVisitorID(ctx context.Context, visitorID string) error {
	return t.set(func() { t.visitorID = visitorID })
}

func (t *Tracker) GetVisitorID(ctx context.Context) (string, error) {
	return get(t, func() string { return t.visitorID })
}

func (t *Tracker) SetSessionTimeout(ctx context.Context, timeout int) error {
	return t.set(func() { t.sessionTimeout = time.Duration(timeout) * time.Second })
}

func (t *Tracker) GetSessionTimeout(ctx context.Context) (int, error) {
	return get(t, func() int { return int(t.sessionTimeout / time.Second) })
}

func (t *Tracker) StartNewSession(ctx context.Context) error {
	return t.set(func() { t.newSession = true })
}

func (t *Tracker) SetDispatchInterval(ctx context.Context, interval int) error {
	err := t.set(func() { t.dispatchInterval = time.Duration(interval) * time.Second })
	if err == nil {
		select {
		case t.reconfigured <- struct{}{}:
		default:
		}
	}
	return err
}

func (t *Tracker) GetDispatchInterval(ctx context.Context) (int, error) {
	return get(t, func() int { return int(t.dispatchInterval / time.Second) })
}

func (t *Tracker) SetIncludeDefaultCustomVariables(ctx context.Context, include bool) error {
	return t.set(func() { t.includeDefaultCustomVariables = include })
}

func (t *Tracker) GetIncludeDefaultCustomVariables(ctx context.Context) (bool, error) {
	return get(t, func() bool { return t.includeDefaultCustomVariables })
}

func (t *Tracker) SetAnonymizationState(ctx context.Context, enabled bool) error {
	return t.set(func() { t.anonymization = enabled })
}

func (t *Tracker) IsAnonymizationOn(ctx context.Context) (bool, error) {
	return get(t, func() bool { return t.anonymization })
}

// SetOptOut stops the tracker from recording anything until opt out is
// turned off again. Events already queued are discarded.
func (t *Tracker) SetOptOut(ctx context.Context, optOut bool) error {
	return t.set(func() {
		t.optOut = optOut
		if optOut {
			t.queue = []journal.Event{}
		}
	})
}

func (t *Tracker) GetOptOut(ctx context.Context) (bool, error) {
	return get(t, func() bool { return t.optOut })
}

// SetDryRun keeps dispatched events in memory instead of sending them to the
// journal. Turning it off drops everything kept so far.
func (t *Tracker) SetDryRun(ctx context.Context, dryRun bool) error {
	return t.set(func() {
		if dryRun {
			if t.dryRunTarget == nil {
				t.dryRunTarget = []journal.Event{}
			}
		} else {
			t.dryRunTarget = nil
		}
	})
}

func (t *Tracker) GetDryRun(ctx context.Context) (bool, error) {
	return get(t, func() bool { return t.dryRunTarget != nil })
}

// DryRunTarget returns the events dispatched while dry run was on.
func (t *Tracker) DryRunTarget() []journal.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.dryRunTarget)
}

func (t *Tracker) SetPrefixing(ctx context.Context, enabled bool) error {
	return t.set(func() { t.prefixing = enabled })
}

func (t *Tracker) IsPrefixingOn(ctx context.Context) (bool, error) {
	return get(t, func() bool { return t.prefixing })
}

// Dispatch hands every queued event to the journal. If the journal fails the
// events are queued again and will be part of the next dispatch.
func (t *Tracker) Dispatch(ctx context.Context) error {
	t.mu.Lock()

	if !t.initialized {
		t.mu.Unlock()
		return errors.NewNotInitializedError()
	}

	batch := t.takeQueue()
	t.mu.Unlock()

	return t.flush(ctx, batch)
}

// Queued returns the number of events waiting to be dispatched.
func (t *Tracker) Queued() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.queue)
}

func (t *Tracker) track(ctx context.Context, eventType string, params func() (map[string]any, error)) error {
	t.mu.Lock()

	if !t.initialized {
		t.mu.Unlock()
		return errors.NewNotInitializedError()
	}

	p, err := params()
	if err != nil {
		t.mu.Unlock()
		return err
	}

	if t.optOut {
		t.mu.Unlock()
		logging.GetFromContext(ctx).Debug("visitor opted out, event dropped", "type", eventType)
		return nil
	}

	t.queue = append(t.queue, t.newEvent(eventType, p))

	var batch []journal.Event
	if t.dispatchInterval == 0 {
		batch = t.takeQueue()
	}

	t.mu.Unlock()

	return t.flush(ctx, batch)
}

// newEvent must be called with the lock held.
func (t *Tracker) newEvent(eventType string, params map[string]any) journal.Event {
	now := t.now()

	newSession := t.newSession
	if !t.lastActivity.IsZero() && t.sessionTimeout > 0 && now.Sub(t.lastActivity) > t.sessionTimeout {
		newSession = true
	}

	t.newSession = false
	t.lastActivity = now

	if t.includeDefaultCustomVariables {
		defaults := types.CustomVariables{
			"1": {Name: "Platform", Value: runtime.GOOS + "/" + runtime.GOARCH},
			"2": {Name: "Runtime", Value: runtime.Version()},
		}
		if t.appVersion != "" {
			defaults["3"] = types.CustomVariable{Name: "App version", Value: t.appVersion}
		}
		params["defaultCustomVariables"] = defaults
	}

	e := journal.Event{
		ID:         journal.NewEventID(now),
		Type:       eventType,
		SiteID:     t.siteID,
		VisitorID:  t.visitorID,
		NewSession: newSession,
		Anonymized: t.anonymization,
		Params:     params,
		Timestamp:  now.UTC(),
	}

	if !t.anonymization {
		e.UserID = t.userID
		e.UserEmail = t.userEmail
	}

	return e
}

// takeQueue must be called with the lock held. While dry run is on the
// queue is moved to the dry run target and nil is returned.
func (t *Tracker) takeQueue() []journal.Event {
	if len(t.queue) == 0 {
		return nil
	}

	batch := t.queue
	t.queue = []journal.Event{}

	if t.dryRunTarget != nil {
		t.dryRunTarget = append(t.dryRunTarget, batch...)
		return nil
	}

	return batch
}

func (t *Tracker) flush(ctx context.Context, batch []journal.Event) error {
	var err error

	if len(batch) == 0 || t.journal == nil {
		return nil
	}

	ctx, span := tracer.Start(ctx, "dispatch", trace.WithAttributes(attribute.Int("event-count", len(batch))))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = t.journal.Write(ctx, batch)
	if err != nil {
		t.mu.Lock()
		t.queue = append(batch, t.queue...)
		t.mu.Unlock()

		err = fmt.Errorf("failed to dispatch %d events: %w", len(batch), err)
		return err
	}

	logging.GetFromContext(ctx).Debug("dispatched events", "count", len(batch))

	return nil
}

func (t *Tracker) set(fn func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return errors.NewNotInitializedError()
	}

	fn()
	return nil
}

func get[T any](t *Tracker, fn func() T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		var zero T
		return zero, errors.NewNotInitializedError()
	}

	return fn(), nil
}

func withOptions[T any](params map[string]any, options *T) map[string]any {
	if options != nil {
		params["options"] = options
	}
	return params
}

func validateURL(u string) error {
	parsed, err := url.ParseRequestURI(u)
	if err != nil || parsed.Host == "" {
		return errors.NewBadRequestError(fmt.Sprintf("invalid url %q", u))
	}
	return nil
}

// newVisitorID returns 16 random lower case hex characters.
func newVisitorID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
