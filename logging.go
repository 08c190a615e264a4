package myjpeg

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger. It defaults to writing to
// stderr; a CLI driver embedding this package may replace it (for instance
// to route output through a rotating file writer) before calling Encode or
// Decode.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// callID tags one Encode or Decode invocation so its log lines can be
// correlated, the way a request ID correlates a server's log lines.
func callID() string {
	return uuid.NewString()
}
