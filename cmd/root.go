/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/k1LoW/colortool"
	"github.com/k1LoW/colortool/handler/mark"
	"github.com/k1LoW/colortool/version"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

const usage = `colortool: a tool to create a single color png file for use in backgrounds
  usage: colortool random|dark|light|hexcode|<redvalue> <greenvalue> <bluevalue> /path/to/imagefile.png
         random:   random color is generated
         dark:     random dark color suitable for dark mode backgrounds
         light:    random light color suitable for dark mode backgrounds
         hexcode:  hexstring designating the color in the format #112233
         <redvalue> <greenvalue> <bluevalue>
                   three values from 0-100 to give the respective RGB values
         when only the path is given a random color is generated
`

var (
	seed    uint64
	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "colortool [random|dark|light|#hexcode|<red> <green> <blue>] /path/to/imagefile.png",
	Short:         "colortool is a tool to create a single color png file for use in backgrounds",
	Long:          usage,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	// the argument count is checked by colortool.ParseArgs
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		opts := []colortool.Option{
			colortool.WithWorkingDir(wd),
			colortool.WithLogger(newLogger(cmd.ErrOrStderr())),
		}
		if cmd.Flags().Changed("seed") {
			opts = append(opts, colortool.WithSeed(seed))
		}
		g, err := colortool.New(opts...)
		if err != nil {
			return err
		}
		if _, _, err := g.Generate(args); err != nil {
			return err
		}
		return nil
	},
}

func Execute() {
	rootCmd.SetOut(colorable.NewColorableStdout())
	rootCmd.SetErr(colorable.NewColorableStderr())
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}

// printError prints a one-line message for err, followed by the usage text for usage errors.
func printError(cmd *cobra.Command, err error) {
	if debug {
		newLogger(cmd.ErrOrStderr()).Debug("failed", slog.String("error", err.Error()), slog.Any("stack_traces", errors.StackTraces(err)))
	}
	red := color.New(color.FgRed)
	_, _ = red.Fprintln(cmd.ErrOrStderr(), err.Error())
	if errors.Is(err, colortool.ErrUsage) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), usage)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	handlers := []slog.Handler{mark.New(w, verbose)}
	if debug {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func init() {
	rootCmd.Flags().Uint64VarP(&seed, "seed", "", 0, "seed for random, dark and light colors")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the written path and color")
	rootCmd.Flags().BoolVarP(&debug, "debug", "", false, "print debug logs")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", colortool.ErrUsage, err)
	})
}
