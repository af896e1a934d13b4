package sheets

import "errors"

var (
	ErrMissingCredentials = errors.New("sheets: missing google credentials")
	ErrClientInit         = errors.New("sheets: failed to init client")
	ErrAppendFailed       = errors.New("sheets: failed to append row")
)
