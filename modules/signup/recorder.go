package signup

import (
	"context"
	"errors"
	"time"
)

// Recorder persists a subscription and returns the stored record, including
// the timestamp it assigned.
type Recorder interface {
	Append(ctx context.Context, brand Brand, email, source, tag string) (Record, error)
}

// rowAppender is the slice of the sheets client the recorder needs.
type rowAppender interface {
	AppendRow(ctx context.Context, spreadsheetID string, row []any) error
}

// SheetsRecorder appends subscriptions to the brand's Google sheet.
type SheetsRecorder struct {
	api rowAppender
	now func() time.Time
}

type SheetsRecorderOption func(*SheetsRecorder)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) SheetsRecorderOption {
	return func(r *SheetsRecorder) {
		if now != nil {
			r.now = now
		}
	}
}

func NewSheetsRecorder(api rowAppender, opts ...SheetsRecorderOption) *SheetsRecorder {
	r := &SheetsRecorder{api: api, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SheetsRecorder) Append(ctx context.Context, brand Brand, email, source, tag string) (Record, error) {
	rec := Record{
		Email:     email,
		Source:    source,
		Tag:       tag,
		Timestamp: r.now().UTC(),
	}
	if err := r.api.AppendRow(ctx, brand.SheetID, rec.Row()); err != nil {
		return Record{}, errors.Join(ErrRecordFailed, err)
	}
	return rec, nil
}

// UnavailableRecorder rejects every append. It is wired when the Google
// credentials are absent so the server can still boot and serve health
// checks while every subscription attempt fails loudly.
type UnavailableRecorder struct{}

func (UnavailableRecorder) Append(context.Context, Brand, string, string, string) (Record, error) {
	return Record{}, errors.Join(ErrRecordFailed, errors.New("recorder is not configured"))
}
