package colortool

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Kind int

const (
	KindUnresolved Kind = iota
	KindRandom
	KindDark
	KindLight
	KindHex
	KindRGBPercent
)

func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindDark:
		return "dark"
	case KindLight:
		return "light"
	case KindHex:
		return "hex"
	case KindRGBPercent:
		return "rgb"
	default:
		return "unresolved"
	}
}

// Spec is the color requested on the command line.
type Spec struct {
	Kind Kind
	// Hex holds the hex digits without the leading '#' (KindHex).
	Hex string
	// Percent holds the raw red, green and blue tokens (KindRGBPercent).
	// They are validated when the Spec is resolved.
	Percent [3]string
	// Token is the color token as the user typed it.
	Token string
}

var options = map[string]Kind{
	"random": KindRandom,
	"dark":   KindDark,
	"light":  KindLight,
}

// ParseArgs interprets command line arguments (without the program name).
// The last argument is always the output path, resolved against wd when relative.
func ParseArgs(args []string, wd string) (Spec, string, error) {
	var s Spec
	switch len(args) {
	case 1:
		s = Spec{Kind: KindRandom, Token: "random"}
	case 2:
		s = parseColorToken(args[0])
	case 4:
		s = Spec{
			Kind:    KindRGBPercent,
			Percent: [3]string{args[0], args[1], args[2]},
			Token:   strings.Join(args[:3], " "),
		}
	default:
		return Spec{}, "", fmt.Errorf("%w: expected 1, 2 or 4 arguments, got %d", ErrUsage, len(args))
	}
	p, err := ResolvePath(args[len(args)-1], wd)
	if err != nil {
		return Spec{}, "", err
	}
	return s, p, nil
}

func parseColorToken(token string) Spec {
	if hex, ok := strings.CutPrefix(token, "#"); ok {
		return Spec{Kind: KindHex, Hex: hex, Token: token}
	}
	if k, ok := options[token]; ok {
		return Spec{Kind: k, Token: token}
	}
	return Spec{Kind: KindUnresolved, Token: token}
}

// ResolvePath returns p as an absolute path, joining it with wd when p is relative.
func ResolvePath(p, wd string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: output path is empty", ErrUsage)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	if wd == "" {
		return "", fmt.Errorf("%w: cannot resolve relative path %s without a working directory", ErrUsage, p)
	}
	return filepath.Join(wd, p), nil
}
