// Package log provides the zerolog-based package logger shared by the
// library's diagnostic helpers. The logger defaults to no-op so importing
// the codec produces no output; callers opt in with SetStd or SetWriter.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var pkgLogger = zerolog.Nop()

// SetStd routes the package logger to a console writer on stderr.
func SetStd() {
	pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// SetWriter routes the package logger to w with JSON output.
func SetWriter(w io.Writer) {
	pkgLogger = zerolog.New(w).With().Timestamp().Logger()
}

// SetNop silences the package logger.
func SetNop() {
	pkgLogger = zerolog.Nop()
}

// SetLevel adjusts the package logger's level filter.
func SetLevel(level zerolog.Level) {
	pkgLogger = pkgLogger.Level(level)
}

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }
func Fatal() *zerolog.Event { return pkgLogger.Fatal() }
func Panic() *zerolog.Event { return pkgLogger.Panic() }
func Log() *zerolog.Event   { return pkgLogger.Log() }

// Print sends an info-level event. Arguments are handled in the manner of
// fmt.Print.
func Print(v ...interface{}) {
	pkgLogger.Info().CallerSkipFrame(1).Msg(fmt.Sprint(v...))
}

// Printf sends an info-level event. Arguments are handled in the manner of
// fmt.Printf.
func Printf(format string, v ...interface{}) {
	pkgLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}
