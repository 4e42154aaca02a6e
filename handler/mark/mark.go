package mark

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

var (
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

var _ slog.Handler = (*markHandler)(nil)

// New returns a handler that prints one short line per notable record.
// Warnings and errors are always printed; "wrote swatch" only when verbose.
func New(w io.Writer, verbose bool) slog.Handler {
	return &markHandler{
		out:     w,
		verbose: verbose,
	}
}

type markHandler struct {
	out     io.Writer
	verbose bool
	attrs   []slog.Attr
}

func (h *markHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return true
	}
	return h.verbose && level >= slog.LevelInfo
}

func (h *markHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := map[string]string{}
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	switch {
	case r.Level >= slog.LevelError:
		return h.write(fmt.Sprintf("%s %s", red("error:"), r.Message))
	case r.Level >= slog.LevelWarn:
		msg := r.Message
		if tok, ok := attrs["token"]; ok {
			msg = fmt.Sprintf("%s: %q", msg, tok)
		}
		return h.write(fmt.Sprintf("%s %s", yellow("warning:"), msg))
	case r.Message == "wrote swatch":
		return h.write(fmt.Sprintf("%s %s %s", green("✓"), attrs["path"], gray(attrs["color"])))
	}
	return nil
}

func (h *markHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &markHandler{
		out:     h.out,
		verbose: h.verbose,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *markHandler) WithGroup(name string) slog.Handler {
	// groups only qualify keys; the summary line ignores them
	return h
}

func (h *markHandler) write(line string) error {
	_, err := fmt.Fprintln(h.out, line)
	return err
}
