// Command rxchain runs chained streams from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/fxsml/rxchain/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(slog.LevelError).Error("rxchain failed", "error", err)
		os.Exit(1)
	}
}
