// Package nats publishes watch events on a NATS subject so that other
// services can react to diverging nodes.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/nats-io/nats.go"
)

// DefaultSubject is the subject prefix used when none is configured. Events
// are published on "<prefix>.<kind>".
const DefaultSubject = "chaindiff.reports"

// conn is the subset of *nats.Conn used by the publisher.
type conn interface {
	PublishMsg(msg *nats.Msg) error
	Drain() error
}

type publisher struct {
	conn    conn
	subject string
}

var _ watch.ReportNotifier = (*publisher)(nil)

// subjectFor returns the subject of the events of one kind.
func (p *publisher) subjectFor(event watch.Event) string {
	return fmt.Sprintf("%s.%s", p.subject, event.Report.Kind)
}

// NotifyReport publishes event as JSON. The report id is used as message id
// so that JetStream consumers can deduplicate redeliveries.
func (p *publisher) NotifyReport(ctx context.Context, event watch.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	msg := nats.NewMsg(p.subjectFor(event))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.Report.ID)
	msg.Header.Set("Content-Type", "application/json")

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish report event: %w", err)
	}

	logger.Debug(ctx, "report event published", "nats.subject", msg.Subject, "report.id", event.Report.ID)
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *publisher) Close() error {
	return p.conn.Drain()
}

// NewPublisher connects to the NATS server at url. An empty subject falls
// back to DefaultSubject.
func NewPublisher(url, subject string) (*publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("chaindiff"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(1*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return newPublisher(nc, subject), nil
}

func newPublisher(c conn, subject string) *publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &publisher{conn: c, subject: subject}
}
