package signup

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/justerika/signup-gateway/pkg/logger"
)

// maxFieldLen caps source and tag values before they reach the sheet.
const maxFieldLen = 100

// Service runs the signup pipeline: normalize, validate, record, notify.
type Service struct {
	recorder Recorder
	notifier Notifier
	log      *slog.Logger
}

type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(recorder Recorder, notifier Notifier, opts ...ServiceOption) *Service {
	if recorder == nil {
		panic("signup: recorder is required")
	}
	if notifier == nil {
		panic("signup: notifier is required")
	}

	s := &Service{
		recorder: recorder,
		notifier: notifier,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe stores one signup and fires the notification emails. Recording
// is the gate: if the row cannot be appended nothing is sent and the error
// is terminal. Notification failures are logged and do not affect the
// returned record.
func (s *Service) Subscribe(ctx context.Context, brand Brand, p Payload, ip string) (Record, error) {
	addr := NormalizeEmail(ExtractEmail(p))
	if !ValidEmail(addr) {
		return Record{}, ErrInvalidEmail
	}

	if !brand.Configured() {
		s.log.ErrorContext(ctx, "subscription rejected: brand has no sheet",
			logger.Brand(brand.Name), logger.Email(addr))
		return Record{}, ErrBrandNotConfigured
	}

	source := brand.DefaultSource
	if v, ok := p.Get("source"); ok && v != "" {
		source = v
	}
	tag := brand.DefaultTag
	if v, ok := p.Get("tag"); ok && v != "" {
		tag = v
	}

	rec, err := s.recorder.Append(ctx, brand, addr, truncate(source, maxFieldLen), truncate(tag, maxFieldLen))
	if err != nil {
		s.log.ErrorContext(ctx, "failed to record subscription",
			logger.Brand(brand.Name), logger.Email(addr), logger.Error(err))
		if !errors.Is(err, ErrRecordFailed) {
			err = errors.Join(ErrRecordFailed, err)
		}
		return Record{}, err
	}
	rec.SignupIP = ip

	s.notify(ctx, brand, rec)

	s.log.InfoContext(ctx, "subscription stored",
		logger.Brand(brand.Name), logger.Email(rec.Email), logger.Source(rec.Source))
	return rec, nil
}

// notify runs both sends concurrently and waits for them. The context is
// detached so a client disconnect cannot cancel an email mid-flight.
func (s *Service) notify(ctx context.Context, brand Brand, rec Record) {
	ctx = context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	var welcome, operator SendOutcome

	wg.Add(2)
	go func() {
		defer wg.Done()
		welcome = s.notifier.SendWelcome(ctx, brand, rec)
	}()
	go func() {
		defer wg.Done()
		operator = s.notifier.NotifyOperator(ctx, brand, rec)
	}()
	wg.Wait()

	s.log.InfoContext(ctx, "notifications processed",
		logger.Brand(brand.Name),
		slog.String("welcome", string(welcome)),
		slog.String("operator", string(operator)),
	)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
