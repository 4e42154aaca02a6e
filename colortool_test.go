package colortool

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(c color.RGBA) bool
		wantErr error
	}{
		{"hex", []string{"#00ff00", "out.png"}, func(c color.RGBA) bool { return c == color.RGBA{0, 0xff, 0, 0xff} }, nil},
		{"percent", []string{"0", "100", "0", "out.png"}, func(c color.RGBA) bool { return c == color.RGBA{0, 0xff, 0, 0xff} }, nil},
		{"dark", []string{"dark", "out.png"}, inByteRange(DarkRange), nil},
		{"light", []string{"light", "out.png"}, inByteRange(LightRange), nil},
		{"random", []string{"random", "out.png"}, inByteRange(RandomRange), nil},
		{"path only", []string{"out.png"}, inByteRange(RandomRange), nil},
		{"unknown option", []string{"purple", "out.png"}, func(c color.RGBA) bool { return c == Gray.RGBA8() }, nil},
		{"no arguments", nil, nil, ErrUsage},
		{"too many arguments", []string{"1", "2", "3", "4", "out.png"}, nil, ErrUsage},
		{"out of range", []string{"0", "101", "0", "out.png"}, nil, ErrRange},
		{"not a number", []string{"0", "x", "0", "out.png"}, nil, ErrParse},
		{"invalid hex", []string{"#xyz", "out.png"}, nil, ErrParse},
		{"invalid hex before six digits", []string{"#zz00ff00", "out.png"}, nil, ErrParse},
		{"missing directory", []string{"dark", "missing/out.png"}, nil, ErrWrite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wd := t.TempDir()
			g, err := New(WithWorkingDir(wd), WithSeed(7))
			if err != nil {
				t.Fatal(err)
			}
			p, _, err := g.Generate(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got err %v, want %v", err, tt.wantErr)
				}
				entries, err := os.ReadDir(wd)
				if err != nil {
					t.Fatal(err)
				}
				if len(entries) != 0 {
					t.Errorf("want no files written, got %d", len(entries))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.Join(wd, "out.png"); p != want {
				t.Errorf("got path %q, want %q", p, want)
			}
			img := decodePNG(t, p)
			b := img.Bounds()
			if b.Dx() != SwatchSize || b.Dy() != SwatchSize {
				t.Fatalf("got size %dx%d, want %dx%d", b.Dx(), b.Dy(), SwatchSize, SwatchSize)
			}
			first := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
			if !tt.check(first) {
				t.Errorf("unexpected color %v", first)
			}
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if c := color.RGBAModel.Convert(img.At(x, y)); c != first {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, first)
					}
				}
			}
		})
	}
}

func TestGenerateLogsFallback(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	g, err := New(WithWorkingDir(t.TempDir()), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := g.Generate([]string{"purple", "out.png"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"level=WARN", "token=purple", `msg="wrote swatch"`} {
		if !strings.Contains(got, want) {
			t.Errorf("log %q does not contain %q", got, want)
		}
	}
}

func inByteRange(rng [2]float64) func(color.RGBA) bool {
	lo, hi := uint8(math.Ceil(rng[0]*0xff)), uint8(math.Floor(rng[1]*0xff))
	return func(c color.RGBA) bool {
		for _, v := range []uint8{c.R, c.G, c.B} {
			if v < lo || v > hi {
				return false
			}
		}
		return c.A == 0xff
	}
}
