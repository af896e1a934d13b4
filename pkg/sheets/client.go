package sheets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// appendRange matches the four-column layout the signup sheets use:
// email, source, tag, timestamp.
const appendRange = "Sheet1!A:D"

// Client appends rows to Google Sheets using a long-lived refresh token.
type Client struct {
	svc *sheetsapi.Service
}

// NewClient builds a Sheets API client from config. The refresh token is
// exchanged for access tokens automatically as they expire.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if !cfg.Enabled() {
		return nil, ErrMissingCredentials
	}

	ts := cfg.OAuthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, errors.Join(ErrClientInit, err)
	}

	return &Client{svc: svc}, nil
}

// AppendRow appends one row to the first sheet of the given spreadsheet.
// USER_ENTERED keeps the behavior of typing values into the sheet by hand,
// so timestamps render as dates rather than raw strings.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID string, row []any) error {
	if spreadsheetID == "" {
		return fmt.Errorf("%w: spreadsheet ID is required", ErrAppendFailed)
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(spreadsheetID, appendRange, &sheetsapi.ValueRange{Values: [][]any{row}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Join(ErrAppendFailed, err)
	}
	return nil
}
