package einvoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rezonia/myinvois-gateway/internal/canonical"
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/document"
	"github.com/rezonia/myinvois-gateway/internal/metrics"
	"github.com/rezonia/myinvois-gateway/internal/myinvois"
	"github.com/rezonia/myinvois-gateway/internal/schema"
)

// Processor runs the assemble, validate, canonicalize and submit pipeline.
type Processor struct {
	codes   *code.Set
	client  *myinvois.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the processor
type Option func(*Processor)

// WithClient attaches a MyInvois API client, enabling Submit
func WithClient(c *myinvois.Client) Option {
	return func(p *Processor) {
		p.client = c
	}
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithMetrics attaches pipeline counters
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Processor) {
		p.metrics = m
	}
}

// WithCodes overrides the built-in code registries
func WithCodes(c *code.Set) Option {
	return func(p *Processor) {
		p.codes = c
	}
}

// NewProcessor creates a processor with the built-in code registries.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		codes:  code.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate assembles the payload and returns every violation found, input
// stage and schema stage combined. An empty slice means the document is valid.
func (p *Processor) Validate(in Input) []FieldError {
	if errs := in.Check(); len(errs) > 0 {
		return errs
	}
	tree := document.Build(in).ToWire()
	_, violations := schema.Validate(tree, document.InvoiceSchema(p.codes))
	return violations
}

// Prepare assembles, validates and canonicalizes one payload. On validation
// failure it returns a *ValidationError carrying every violation.
func (p *Processor) Prepare(in Input) (*Document, error) {
	if errs := in.Check(); len(errs) > 0 {
		p.countValidation("invalid", len(errs))
		return nil, schema.NewValidationError(errs)
	}

	tree := document.Build(in).ToWire()
	if p.metrics != nil {
		p.metrics.DocumentsBuilt.Inc()
	}

	defaulted, violations := schema.Validate(tree, document.InvoiceSchema(p.codes))
	if len(violations) > 0 {
		p.countValidation("invalid", len(violations))
		return nil, schema.NewValidationError(violations)
	}
	p.countValidation("valid", 0)

	doc, err := canonical.Canonicalize(defaulted)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("document prepared",
		slog.String("code_number", in.ID),
		slog.String("hash", doc.Hash))

	return &Document{
		CodeNumber: in.ID,
		Canonical:  doc.Raw,
		Hash:       doc.Hash,
		Encoded:    doc.Encoded,
	}, nil
}

// Submit prepares every payload and posts the batch to the invoicing API.
func (p *Processor) Submit(ctx context.Context, inputs ...Input) (*myinvois.SubmissionResult, error) {
	if p.client == nil {
		return nil, fmt.Errorf("no API client configured")
	}

	docs := make([]myinvois.SubmissionDocument, len(inputs))
	for i, in := range inputs {
		prepared, err := p.Prepare(in)
		if err != nil {
			return nil, err
		}
		docs[i] = myinvois.SubmissionDocument{
			Format:       "JSON",
			DocumentHash: prepared.Hash,
			CodeNumber:   prepared.CodeNumber,
			Document:     prepared.Encoded,
		}
	}

	start := time.Now()
	result, err := p.client.Submit(ctx, docs)
	if p.metrics != nil {
		p.metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
		outcome := "accepted"
		if err != nil {
			outcome = "failed"
		}
		p.metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	}
	return result, err
}

func (p *Processor) countValidation(outcome string, violations int) {
	if p.metrics == nil {
		return
	}
	p.metrics.ValidationsTotal.WithLabelValues(outcome).Inc()
	p.metrics.ValidationViolations.Add(float64(violations))
}
