package mark

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
)

func TestHandler(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name    string
		verbose bool
		log     func(l *slog.Logger)
		want    string
	}{
		{
			"warning",
			false,
			func(l *slog.Logger) {
				l.Warn("unrecognized color, falling back to gray", slog.String("token", "purple"))
			},
			"warning: unrecognized color, falling back to gray: \"purple\"\n",
		},
		{
			"error",
			false,
			func(l *slog.Logger) { l.Error("boom") },
			"error: boom\n",
		},
		{
			"wrote swatch is quiet by default",
			false,
			func(l *slog.Logger) {
				l.Info("wrote swatch", slog.String("path", "/tmp/out.png"), slog.String("color", "#00ff00"))
			},
			"",
		},
		{
			"wrote swatch when verbose",
			true,
			func(l *slog.Logger) {
				l.With(slog.String("path", "/tmp/out.png")).Info("wrote swatch", slog.String("color", "#00ff00"))
			},
			"✓ /tmp/out.png #00ff00\n",
		},
		{
			"debug is ignored",
			true,
			func(l *slog.Logger) { l.Debug("resolved color") },
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			tt.log(slog.New(New(buf, tt.verbose)))
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
