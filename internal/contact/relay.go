package contact

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Relay delivers a submission to whoever should read it: a mail relay, a
// form endpoint, or an embedding program.
type Relay interface {
	Deliver(ctx context.Context, s Submission) error
}

// ErrRelayFull is returned by ChanRelay when the receiver is not keeping up.
var ErrRelayFull = errors.New("contact relay: channel full")

// LogRelay records submissions in the structured log and nothing else.
type LogRelay struct {
	Logger *zap.Logger
}

// Deliver implements Relay.
func (r *LogRelay) Deliver(_ context.Context, s Submission) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("contact form submitted",
		zap.String("id", s.ID),
		zap.String("name", s.Name),
		zap.Int("message_len", len(s.Message)),
		zap.Time("submitted_at", s.SubmittedAt),
	)
	return nil
}

// ChanRelay hands submissions to a channel without blocking.
type ChanRelay struct {
	Ch chan<- Submission
}

// Deliver implements Relay. Drops the submission and returns ErrRelayFull
// if the channel has no room.
func (r *ChanRelay) Deliver(ctx context.Context, s Submission) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case r.Ch <- s:
		return nil
	default:
		return ErrRelayFull
	}
}

// DiscardRelay accepts and drops every submission.
type DiscardRelay struct{}

// Deliver implements Relay.
func (DiscardRelay) Deliver(context.Context, Submission) error { return nil }

// TracingRelay wraps another relay in a "contact.deliver" span.
type TracingRelay struct {
	Next   Relay
	Tracer trace.Tracer
}

// Deliver implements Relay.
func (r *TracingRelay) Deliver(ctx context.Context, s Submission) error {
	if r.Tracer == nil {
		return r.Next.Deliver(ctx, s)
	}
	ctx, span := r.Tracer.Start(ctx, "contact.deliver",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("contact.submission_id", s.ID),
			attribute.Int("contact.message_len", len(s.Message)),
		),
	)
	defer span.End()

	if err := r.Next.Deliver(ctx, s); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
