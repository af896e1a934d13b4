package signup

import "time"

// Record is one stored subscription. The timestamp is assigned when the row
// is appended and reused for every downstream send, never recomputed.
type Record struct {
	Email     string
	Source    string
	Tag       string
	Timestamp time.Time
	SignupIP  string
}

// Row is the four-column sheet layout: email, source, tag, timestamp.
func (r Record) Row() []any {
	return []any{r.Email, r.Source, r.Tag, r.Timestamp.UTC().Format(time.RFC3339)}
}

// TemplateModel is the substitution model passed to provider templates.
// Field names are duplicated under two conventions because the brands'
// templates were authored at different times.
func (r Record) TemplateModel() map[string]any {
	ts := r.Timestamp.UTC().Format(time.RFC3339)
	return map[string]any{
		"email":            r.Email,
		"source":           r.Source,
		"tag":              r.Tag,
		"timestamp":        ts,
		"subscriber_email": r.Email,
		"signup_ip":        r.SignupIP,
		"signup_source":    r.Source,
		"signup_timestamp": ts,
	}
}
