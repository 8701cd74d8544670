package tokenizer

import "errors"

var (
	// ErrNoFeaturizer indicates the session has no featurizer registered for
	// the text's language. This is a configuration error, not retryable.
	ErrNoFeaturizer = errors.New("no featurizer implementation")

	// ErrAlignment indicates the display and normalized token streams
	// disagree: word-bearing display tokens outstripped the available
	// normalized or featurized forms. Fatal for the call.
	ErrAlignment = errors.New("token stream alignment")

	// ErrStoreUnavailable indicates the persisted feature-set lookup failed.
	// The failure propagates unrecovered; the session performs no retry.
	ErrStoreUnavailable = errors.New("feature set lookup unavailable")
)
