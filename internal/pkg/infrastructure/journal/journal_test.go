package journal

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns

var method = expects.RequestMethod
var bodyContaining = expects.RequestBodyContaining

func TestMemoryKeepsEventsInOrder(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	m := NewMemory()
	is.NoErr(m.Write(ctx, []Event{testEvent("screen"), testEvent("goal")}))
	is.NoErr(m.Write(ctx, []Event{testEvent("search")}))

	events := m.Events()
	is.Equal(len(events), 3)
	is.Equal(events[0].Type, "screen")
	is.Equal(events[2].Type, "search")
}

func TestMemoryEventsReturnsACopy(t *testing.T) {
	is := is.New(t)

	m := NewMemory()
	m.Write(context.Background(), []Event{testEvent("screen")})

	events := m.Events()
	events[0].Type = "changed"

	is.Equal(m.Events()[0].Type, "screen")
}

func TestEventIDsAreSortedByTime(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	first := NewEventID(now)
	second := NewEventID(now.Add(time.Millisecond))

	is.Equal(len(first), 26)
	is.True(strings.Compare(first, second) < 0)
}

func TestTeeWritesToAllJournals(t *testing.T) {
	is := is.New(t)

	a, b := NewMemory(), NewMemory()
	j := Tee(a, b)

	is.NoErr(j.Write(context.Background(), []Event{testEvent("screen")}))

	is.Equal(len(a.Events()), 1)
	is.Equal(len(b.Events()), 1)
}

func TestTeeJoinsErrors(t *testing.T) {
	is := is.New(t)

	m := NewMemory()
	j := Tee(failingJournal{}, m)

	err := j.Write(context.Background(), []Event{testEvent("screen")})

	is.True(err != nil)
	is.Equal(len(m.Events()), 1) // a failing journal should not stop the others
}

func TestWebhookPostsEvents(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			bodyContaining(`"type":"custom-event"`),
		),
		Returns(
			response.Code(http.StatusOK),
		),
	)
	defer s.Close()

	ctx := context.Background()
	w := NewWebhook(s.URL())

	is.NoErr(w.Start())

	err := w.Write(ctx, []Event{testEvent("custom-event")})
	is.NoErr(err)

	w.Stop()

	is.Equal(s.RequestCount(), 1)
}

func TestWebhookPostsOneRequestPerBatch(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	ctx := context.Background()
	w := NewWebhook(s.URL())
	w.Start()

	w.Write(ctx, []Event{testEvent("screen"), testEvent("goal")})
	w.Write(ctx, []Event{testEvent("search")})

	w.Stop()

	is.Equal(s.RequestCount(), 2)
}

func TestWebhookMustBeStarted(t *testing.T) {
	is := is.New(t)

	w := NewWebhook("http://localhost")

	err := w.Write(context.Background(), []Event{testEvent("screen")})
	is.True(err != nil)
}

func TestWebhookCannotBeStartedTwice(t *testing.T) {
	is := is.New(t)

	w := NewWebhook("http://localhost")
	is.NoErr(w.Start())
	defer w.Stop()

	is.True(w.Start() != nil)
}

func TestPostgresConnStr(t *testing.T) {
	is := is.New(t)

	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USER", "bridge")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	cfg := LoadConfiguration(context.Background())

	is.Equal(cfg.ConnStr(), "postgres://bridge:secret@db:5432/diwise?sslmode=disable")
}

type failingJournal struct{}

func (failingJournal) Write(context.Context, []Event) error {
	return fmt.Errorf("write failed")
}

func testEvent(eventType string) Event {
	now := time.Now().UTC()

	return Event{
		ID:        NewEventID(now),
		Type:      eventType,
		SiteID:    "1111-2222-3333-dddd",
		VisitorID: "0123456789abcdef",
		Timestamp: now,
	}
}
