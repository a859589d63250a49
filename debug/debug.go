package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Convert bool
	Diff    bool
}

var (
	d   *debug
	log *slog.Logger
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("TJ_DEBUG_PARSE")
	d.Convert = boolEnv("TJ_DEBUG_CONVERT")
	d.Diff = boolEnv("TJ_DEBUG_DIFF")
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}
func Diff() bool {
	return d.Diff
}

// Logger returns the logger debug output is written to.
func Logger() *slog.Logger {
	return log
}

// SetLogger replaces the debug logger, for instance to capture output in
// tests. It is not safe to call concurrently with logging.
func SetLogger(l *slog.Logger) {
	log = l
}
