package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Empty means discard;
	// "-" means stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledPackages only logs messages originating from these packages (if
	// non-empty). Package name is the immediate directory name, e.g. "core".
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages prevents logging from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`
}

func (c Config) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// filterHandler wraps another slog.Handler and drops records whose source
// package is filtered out by the configuration.
type filterHandler struct {
	inner    slog.Handler
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

func newFilterHandler(inner slog.Handler, cfg Config) slog.Handler {
	enabled := sliceToSet(cfg.EnabledPackages)
	disabled := sliceToSet(cfg.DisabledPackages)
	if enabled == nil && disabled == nil {
		return inner
	}
	return &filterHandler{inner: inner, enabled: enabled, disabled: disabled}
}

func (h *filterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *filterHandler) Handle(ctx context.Context, r slog.Record) error {
	pkg := sourcePackage(r)
	if pkg != "" {
		if _, deny := h.disabled[pkg]; deny {
			return nil
		}
		if h.enabled != nil {
			if _, allow := h.enabled[pkg]; !allow {
				return nil
			}
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *filterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &filterHandler{inner: h.inner.WithAttrs(attrs), enabled: h.enabled, disabled: h.disabled}
}

func (h *filterHandler) WithGroup(name string) slog.Handler {
	return &filterHandler{inner: h.inner.WithGroup(name), enabled: h.enabled, disabled: h.disabled}
}

// sourcePackage extracts the immediate directory name of the record's source file.
func sourcePackage(r slog.Record) string {
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
