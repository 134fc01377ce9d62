package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type action func()

// Webhook posts every dispatched batch to an HTTP endpoint. Posting happens
// on a background queue, so Write does not wait for the receiver.
type Webhook struct {
	mu       sync.Mutex
	started  bool
	endpoint string

	queue chan action
}

func NewWebhook(endpoint string) *Webhook {
	return &Webhook{
		endpoint: endpoint,
		queue:    make(chan action, 32),
	}
}

func (w *Webhook) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return fmt.Errorf("already started")
	}

	w.started = true

	go w.run()

	return nil
}

// Stop blocks until every batch queued before the call has been posted.
func (w *Webhook) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		resultChan := make(chan bool)

		w.queue <- func() {
			close(w.queue)
			resultChan <- true
		}

		<-resultChan
		w.started = false
	}
	return nil
}

func (w *Webhook) Write(ctx context.Context, events []Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return fmt.Errorf("webhook journal is not started")
	}

	var err error

	logger := logging.GetFromContext(ctx)

	ctx, span := tracer.Start(context.WithoutCancel(ctx), "post-events")

	batch := append([]Event{}, events...)

	w.queue <- func() {
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		err = postEvents(ctx, batch, w.endpoint)
		if err != nil {
			logger.Error("failed to post tracking events", "err", err.Error())
		}
	}

	return nil
}

func postEvents(ctx context.Context, events []Event, endpoint string) error {
	body, err := json.Marshal(struct {
		Events []Event `json:"events"`
	}{events})
	if err != nil {
		return fmt.Errorf("marshalling error (%w)", err)
	}

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("unable to create new request (%w)", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request (%w)", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("receiver responded with status code %d", resp.StatusCode)
	}

	return nil
}

func (w *Webhook) run() {
	for action := range w.queue {
		if action == nil {
			return
		}

		action()
	}
}
