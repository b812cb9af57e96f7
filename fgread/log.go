package fgread

import (
	"log/slog"
	"os"
	"sync"

	"github.com/lmittmann/tint"
)

var (
	logOnce   sync.Once
	pkgLogger *slog.Logger
)

// defaultLogger returns the package-wide logger used when no WithLogger
// option is supplied: tinted output on stderr at info level.
func defaultLogger() *slog.Logger {
	logOnce.Do(func() {
		pkgLogger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelInfo,
		}))
	})
	return pkgLogger
}
