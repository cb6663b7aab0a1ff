package dashboard

import "errors"

var (
	// ErrEmptyDataset reports a dataset with zero readings. Views surface it
	// so callers can render the defined empty state instead of failing.
	ErrEmptyDataset = errors.New("reading dataset is empty")

	// ErrUnknownParameter reports a key that is not in the parameter
	// registry. Rendering skips such keys; explicit toggles reject them.
	ErrUnknownParameter = errors.New("unknown parameter key")
)
