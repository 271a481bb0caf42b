package logger

import (
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// build assembles the handler fanout. Callers hold mu.
func build() *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(output, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceLevelName,
		}),
	}
	handlers = append(handlers, sinks...)
	return slog.New(slogmulti.Fanout(handlers...))
}

// EnableJournal adds a systemd journal sink next to the text output.
func EnableJournal() error {
	h, err := slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	sinks = append(sinks, h)
	base = build()
	return nil
}

// toJournalKey maps an attribute key to a valid journal field name.
func toJournalKey(key string) string {
	key = strings.ToUpper(key)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, key)
}

// replaceLevelName prints TRACE instead of slog's "DEBUG-4".
func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if l, ok := a.Value.Any().(slog.Level); ok && l <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
