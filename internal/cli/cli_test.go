package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"deedles.dev/xshape"
	"deedles.dev/xshape/internal/cli"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Render", []string{"render", "3x2"}, "(o- - -o\n|o- - -o)\n"},
		{"RenderLiteral", []string{"render", "(o- -o)"}, "(o- -o)\n"},
		{"Area", []string{"area", "5x5"}, "25\n"},
		{"Invert", []string{"invert", "1x2"}, "(o- -o)\n"},
		{"Add", []string{"add", "2x1", "3x1"}, "(o- - - - -o)\n"},
		{"Sub", []string{"sub", "10x1", "4x1"}, "(o- - - - - -o)\n"},
		{"Mul", []string{"mul", "2x1", "1x2"}, "(o- -o\n|o- -o)\n"},
		{"Row", []string{"row", "2x1", "9x9"}, "(o- -o\n|o- -o)\n"},
		{"Eq", []string{"eq", "5x3", "3x5"}, "true\n"},
		{"Contains", []string{"contains", "5x3", "6x1"}, "false\n"},
		{"Scale", []string{"scale", "2x1", "1.5"}, "(o- - -o)\n"},
		{"Div", []string{"div", "6x1", "3"}, "(o- -o)\n"},
		{"Pow", []string{"pow", "2x1", "2"}, "(o- -o\n|o- -o)\n"},
		{"Line", []string{"line", "1", "2"}, "(o- - -o)\n"},
		{"Box", []string{"--format", "box", "render", "2x2"}, "┌───┐\n└───┘\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, "", test.args...)
			require.Nil(t, err)
			require.Equal(t, test.want, out)
		})
	}
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "(o- -o\n|[   ]\n|o- -o)\n", "parse", "--output", "yaml")
	require.Nil(t, err)

	var doc struct {
		Width  int      `yaml:"width"`
		Height int      `yaml:"height"`
		Area   int      `yaml:"area"`
		Rows   []string `yaml:"rows"`
	}
	require.Nil(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, 2, doc.Width)
	require.Equal(t, 3, doc.Height)
	require.Equal(t, 6, doc.Area)
	require.Equal(t, []string{"(o- -o", "|[   ]", "|o- -o)"}, doc.Rows)
}

func TestYAMLScalar(t *testing.T) {
	out, err := run(t, "", "-o", "yaml", "area", "4x2")
	require.Nil(t, err)
	require.Equal(t, "result: 8\n", out)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("XSHAPE_FORMAT", "box")
	out, err := run(t, "", "render", "1x1")
	require.Nil(t, err)
	require.Equal(t, "╶─╴\n", out)

	out, err = run(t, "", "--format", "literal", "render", "1x1")
	require.Nil(t, err)
	require.Equal(t, "(o-o)\n", out)

	t.Setenv("XSHAPE_OUTPUT", "xml")
	_, err = run(t, "", "render", "1x1")
	require.ErrorContains(t, err, "unknown output")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "", "area", "o- -")
	require.ErrorIs(t, err, xshape.ErrUnopenedLine)

	_, err = run(t, "", "mul", "2x2", "3x3")
	require.ErrorIs(t, err, xshape.ErrMultiplication)

	_, err = run(t, "", "pow", "2x1", "3")
	require.ErrorIs(t, err, xshape.ErrPower)

	_, err = run(t, "", "scale", "1x1", "")
	require.ErrorIs(t, err, xshape.ErrMultiplication)

	_, err = run(t, "", "div", "3x1", "2")
	require.ErrorIs(t, err, xshape.ErrDivision)

	_, err = run(t, "", "render", "0x1")
	require.ErrorIs(t, err, xshape.ErrDimension)

	_, err = run(t, "", "render", "five")
	require.ErrorContains(t, err, "WxH")

	_, err = run(t, "", "parse")
	require.ErrorIs(t, err, xshape.ErrSyntax)

	_, err = run(t, "", "line", "-1", "2")
	require.Error(t, err)

	_, err = run(t, "", "--format", "argb", "render", "1x1")
	require.ErrorContains(t, err, "unknown format")
}
