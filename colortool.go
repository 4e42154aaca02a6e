package colortool

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/k1LoW/errors"
)

// Source provides uniformly distributed numbers in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type Generator struct {
	src    Source
	wd     string
	logger *slog.Logger
}

type Option func(*Generator) error

// WithRand sets the source of randomness for the random, dark and light options.
func WithRand(src Source) Option {
	return func(g *Generator) error {
		if src == nil {
			return fmt.Errorf("random source is nil")
		}
		g.src = src
		return nil
	}
}

// WithSeed makes random colors reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) error {
		g.src = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}

// WithWorkingDir sets the directory relative output paths are resolved against.
func WithWorkingDir(dir string) Option {
	return func(g *Generator) error {
		g.wd = dir
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.src == nil {
		seed := uint64(time.Now().UnixNano())
		g.src = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g, nil
}

// Resolve converts s into a concrete color.
func (g *Generator) Resolve(s Spec) (_ Color, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	switch s.Kind {
	case KindRandom:
		return randomColor(g.src, RandomRange), nil
	case KindDark:
		return randomColor(g.src, DarkRange), nil
	case KindLight:
		return randomColor(g.src, LightRange), nil
	case KindHex:
		return ParseHex(s.Hex)
	case KindRGBPercent:
		return ParsePercent(s.Percent)
	default:
		g.logger.Warn("unrecognized color, falling back to gray", slog.String("token", s.Token))
		return Gray, nil
	}
}

// Generate parses args, resolves the color and writes a swatch PNG.
// It returns the absolute path of the written file and the color used.
func (g *Generator) Generate(args []string) (_ string, _ Color, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	s, p, err := ParseArgs(args, g.wd)
	if err != nil {
		return "", Color{}, err
	}
	g.logger.Debug("parsed arguments", slog.String("kind", s.Kind.String()), slog.String("token", s.Token), slog.String("path", p))
	c, err := g.Resolve(s)
	if err != nil {
		return "", Color{}, err
	}
	g.logger.Debug("resolved color", slog.String("color", c.String()))
	if err := WritePNG(p, Render(c)); err != nil {
		return "", Color{}, err
	}
	g.logger.Info("wrote swatch", slog.String("path", p), slog.String("color", c.Hex()))
	return p, c, nil
}
