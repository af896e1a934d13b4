// Package sheets wraps the Google Sheets API for appending signup rows,
// authenticated with an OAuth2 refresh token.
package sheets
