// Package voice abstracts speech-to-text capture behind a capability
// interface so the rest of the client never depends on a specific speech
// backend. Capture is single-utterance, en-US, final results only.
package voice

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by recognizers that cannot capture speech in
// the current environment.
var ErrUnsupported = errors.New("speech capture not supported")

// Recognizer captures one utterance of speech as plain text. The text feeds
// the dashboard search field; it carries no authorization meaning.
type Recognizer interface {
	// Supported reports whether Capture can work in this environment.
	Supported() bool
	// Capture blocks until one utterance is transcribed or ctx ends.
	Capture(ctx context.Context) (string, error)
}

// Unsupported is the default recognizer for environments without a speech
// backend.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }

func (Unsupported) Capture(context.Context) (string, error) {
	return "", ErrUnsupported
}
