package booking

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

var submitTracer = otel.Tracer("smilebright.internal.booking.submit")

// Submitter delivers a booking request to the collection endpoint.
type Submitter interface {
	Submit(ctx context.Context, f Fields) error
}

// FormSubmitter posts form-encoded bookings to a hosted form endpoint.
type FormSubmitter struct {
	endpoint   string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewFormSubmitter builds a submitter with an explicit request timeout.
func NewFormSubmitter(endpoint string, timeout time.Duration, logger *logging.Logger) (*FormSubmitter, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrEndpointRequired
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("booking: parse endpoint: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &FormSubmitter{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

var _ Submitter = (*FormSubmitter)(nil)

// Submit sends one POST. Any 2xx is success; the response body is ignored.
func (s *FormSubmitter) Submit(ctx context.Context, f Fields) error {
	ctx, span := submitTracer.Start(ctx, "booking.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("smilebright.booking.service", f.Service)),
	)
	defer span.End()

	form := url.Values{}
	form.Set("name", f.Name)
	form.Set("phone", f.Phone)
	form.Set("service", f.Service)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("booking: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("booking: post to endpoint: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &RemoteError{StatusCode: resp.StatusCode}
		span.RecordError(rerr)
		span.SetStatus(codes.Error, "endpoint rejected booking")
		s.logger.Warn("booking endpoint rejected submission", "status", resp.StatusCode)
		return rerr
	}
	return nil
}
