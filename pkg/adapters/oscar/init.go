package oscar

import (
	"log/slog"

	"github.com/leapstack-labs/sqlshim/pkg/adapter"
)

func init() {
	adapter.Register("oscar", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
