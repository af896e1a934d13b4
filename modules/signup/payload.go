package signup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Field is one key/value pair from the request body.
type Field struct {
	Key   string
	Value string
}

// Payload is the decoded request body with field order preserved. Order
// matters: when no known email key is present, extraction falls back to the
// first "@"-containing value in submission order.
type Payload []Field

// Get returns the first value for key.
func (p Payload) Get(key string) (string, bool) {
	for _, f := range p {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// ParsePayload decodes the request body according to its content type.
// JSON and form-encoded bodies are accepted; anything else is treated as
// form-encoded, matching how loosely the deployed landing pages post.
func ParsePayload(r *http.Request) (Payload, error) {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			ct = mt
		}
	}

	if ct == "application/json" {
		return parseJSONPayload(r.Body)
	}
	return parseFormPayload(r.Body)
}

// parseJSONPayload decodes a top-level JSON object keeping only string
// values, in key order. encoding/json maps would lose the order, so the
// token stream is walked directly. Nested objects and arrays are skipped.
func parseJSONPayload(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrMalformedPayload, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedPayload)
	}

	var p Payload
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Join(ErrMalformedPayload, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string object key", ErrMalformedPayload)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, errors.Join(ErrMalformedPayload, err)
		}
		switch v := valTok.(type) {
		case string:
			p = append(p, Field{Key: key, Value: v})
		case json.Delim:
			if err := skipJSONValue(dec); err != nil {
				return nil, errors.Join(ErrMalformedPayload, err)
			}
		default:
			// numbers, booleans and nulls cannot hold an email address
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Join(ErrMalformedPayload, err)
	}
	return p, nil
}

// skipJSONValue consumes the remainder of a compound value whose opening
// delimiter was already read.
func skipJSONValue(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// parseFormPayload decodes urlencoded pairs by hand because url.ParseQuery
// returns an unordered map.
func parseFormPayload(r io.Reader) (Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrMalformedPayload, err)
	}

	var p Payload
	for pair := range strings.SplitSeq(strings.TrimSpace(string(raw)), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, errors.Join(ErrMalformedPayload, err)
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, errors.Join(ErrMalformedPayload, err)
		}
		p = append(p, Field{Key: key, Value: value})
	}
	return p, nil
}
