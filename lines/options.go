package lines

import (
	"io"

	"github.com/rs/zerolog"
)

// Option configures a Session at construction time.
type Option func(*Session)

// WithWriter directs the session's output to w instead of os.Stdout. Unless
// WithWidth is also given, w must be a terminal so the width can be queried.
func WithWriter(w io.Writer) Option {
	return func(s *Session) {
		s.w = w
	}
}

// WithWidth fixes the number of columns used for wrapping instead of
// querying the output terminal.
func WithWidth(width int) Option {
	return func(s *Session) {
		s.width = width
	}
}

// WithLogger attaches a debug logger. It must write somewhere other than
// the session's own output, e.g. a file: logging to the managed terminal
// would corrupt the display. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}
