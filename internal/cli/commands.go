package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deedles.dev/xshape"
)

func (a *app) commands() []*cobra.Command {
	return []*cobra.Command{
		a.shapeCommand("render SHAPE", "Draw a shape", 1, func(s []xshape.Shape, _ []string) (any, error) {
			return s[0].Resolve()
		}),
		a.shapeCommand("area SHAPE", "Print the area of a shape", 1, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Area(s[0])
		}),
		a.shapeCommand("invert SHAPE", "Swap the width and height of a shape", 1, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Invert(s[0])
		}),
		a.shapeCommand("add A B", "Add two shapes", 2, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Add(s[0], s[1])
		}),
		a.shapeCommand("sub A B", "Subtract B from A", 2, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Sub(s[0], s[1])
		}),
		a.shapeCommand("mul A B", "Multiply two lines into a rectangle", 2, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Mul(s[0], s[1])
		}),
		a.shapeCommand("row A B", "Add a row to A", 2, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Row(s[0], s[1])
		}),
		a.shapeCommand("eq A B", "Check if two shapes are equal in either orientation", 2, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Eq(s[0], s[1])
		}),
		a.shapeCommand("contains A B", "Check if B fits inside of A", 2, func(s []xshape.Shape, _ []string) (any, error) {
			return xshape.Contains(s[0], s[1])
		}),
		a.shapeCommand("scale SHAPE FACTOR", "Multiply a shape by a number", 1, func(s []xshape.Shape, rest []string) (any, error) {
			return xshape.Scale(s[0], rest[0])
		}),
		a.shapeCommand("div SHAPE DIVISOR", "Divide a shape by a number", 1, func(s []xshape.Shape, rest []string) (any, error) {
			return xshape.Div(s[0], rest[0])
		}),
		a.shapeCommand("pow SHAPE EXPONENT", "Raise a shape to the power 0, 1, or 2", 1, func(s []xshape.Shape, rest []string) (any, error) {
			e, err := strconv.Atoi(rest[0])
			if err != nil {
				return nil, fmt.Errorf("exponent: %w", err)
			}
			return xshape.Pow(s[0], e)
		}),
		a.lineCommand(),
		a.parseCommand(),
	}
}

// shapeCommand returns a command that parses its first nshapes
// arguments as shapes and passes them to op along with any remaining
// arguments. The number of arguments is taken from use.
func (a *app) shapeCommand(use, short string, nshapes int, op func(shapes []xshape.Shape, rest []string) (any, error)) *cobra.Command {
	fields := strings.Fields(use)
	name, nargs := fields[0], len(fields)-1

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := parseShapes(args[:nshapes])
			if err != nil {
				return err
			}

			a.logger.Debug("evaluating", zap.String("op", name), zap.Strings("args", args))
			v, err := op(shapes, args[nshapes:])
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return a.printer.print(cmd.OutOrStdout(), v)
		},
	}
}

func (a *app) lineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "line LEFT RIGHT",
		Short: "Extend two lines from o and close them together",
		Long: `Extend two lines from o by LEFT and RIGHT segments and close them.

The result is one unit wider than RIGHT. LEFT only opens the line and its
length does not affect the result.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseCount("left", args[0])
			if err != nil {
				return err
			}
			right, err := parseCount("right", args[1])
			if err != nil {
				return err
			}

			r := xshape.CloseLine(extendN(left), extendN(right))
			a.logger.Debug("closed line", zap.Int("left", left), zap.Int("right", right), zap.Int("width", r.Width()))
			return a.printer.print(cmd.OutOrStdout(), r)
		},
	}
}

func extendN(n int) xshape.Line {
	l := xshape.Begin()
	for range n {
		l = xshape.Extend(l)
	}
	return l
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse",
		Short: "Read a shape in the literal notation from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := xshape.Decode(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			return a.printer.print(cmd.OutOrStdout(), r)
		},
	}
}
