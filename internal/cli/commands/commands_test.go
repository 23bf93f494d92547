// seehuhn.de/go/fillet - tangent arcs between lines and circular arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/internal/cli/config"
)

// run executes cmd with the given config and arguments, and returns what
// the command wrote to stdout.
func run(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(config.NewContext(context.Background(), cfg))
	return out.String(), err
}

func jsonConfig() *config.Config {
	cfg := config.Default()
	cfg.Output = config.OutputJSON
	return cfg
}

func TestSolveText(t *testing.T) {
	out, err := run(t, NewSolveCommand(), config.Default(), "",
		"--radius", "2", "line:0,0,10,0", "line:10,0,10,10")
	require.NoError(t, err)
	assert.Equal(t, "fillet: arc:8,2,2,270,0\nfirst:  line:0,0,8,0\nsecond: line:10,2,10,10\n", out)
}

func TestSolveJSON(t *testing.T) {
	out, err := run(t, NewSolveCommand(), jsonConfig(), "",
		"-r", "2", "line:0,0,10,0", "line:10,0,10,10")
	require.NoError(t, err)

	var res Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.OK())
	assert.Equal(t, 2.0, res.Radius)
	assert.Equal(t, "arc:8,2,2,270,0", res.Fillet)
	assert.Equal(t, "line:0,0,8,0", res.First)
	assert.Equal(t, "line:10,2,10,10", res.Second)
}

func TestSolveFailure(t *testing.T) {
	out, err := run(t, NewSolveCommand(), config.Default(), "",
		"-r", "20", "line:0,0,10,0", "line:10,0,10,10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fillet.ErrNoFillet))
	assert.Equal(t, fillet.NoShardIntersection, fillet.KindOf(err))
	assert.Equal(t, "failed: no shard intersection\n", out)
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"missing radius", []string{"line:0,0,1,0", "line:1,0,1,1"}, "radius"},
		{"one path", []string{"-r", "1", "line:0,0,1,0"}, "accepts 2 arg(s)"},
		{"bad path", []string{"-r", "1", "line:0,0,1", "line:1,0,1,1"}, "line needs 4 numbers"},
		{"unknown type", []string{"-r", "1", "line:0,0,1,0", "spline:1,0"}, "unknown type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, NewSolveCommand(), config.Default(), "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			assert.False(t, errors.Is(err, fillet.ErrNoFillet))
		})
	}
}

const batchInput = `
radius: 2
pairs:
  - name: corner
    first: line:0,0,10,0
    second: line:10,0,10,10
  - name: small
    first: line:0,0,10,0
    second: line:10,0,10,10
    radius: 1
  - name: apart
    first: line:0,0,10,0
    second: line:20,0,20,10
`

func TestBatchText(t *testing.T) {
	out, err := run(t, NewBatchCommand(), config.Default(), batchInput, "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fillet.ErrNoFillet))
	assert.Contains(t, err.Error(), "1 of 3 pairs failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "corner: arc:8,2,2,270,0 line:0,0,8,0 line:10,2,10,10", lines[0])
	assert.Equal(t, "small: arc:9,1,1,270,0 line:0,0,9,0 line:10,1,10,10", lines[1])
	assert.Equal(t, "apart: failed: no common endpoint", lines[2])
}

func TestBatchJSONFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "pairs.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(`
pairs:
  - first: line:0,0,10,0
    second: line:10,0,10,10
    radius: 2
`), 0o644))

	out, err := run(t, NewBatchCommand(), jsonConfig(), "", fileName)
	require.NoError(t, err)

	var results []Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "pair1", results[0].Name)
	assert.Equal(t, "arc:8,2,2,270,0", results[0].Fillet)
}

func TestReadBatchErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{"empty", "", "empty batch file"},
		{"no pairs", "radius: 1\n", "no pairs"},
		{"unknown field", "pairs:\n  - first: line:0,0,1,0\n    colour: red\n", "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBatch(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestRenderPNG(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "corner.png")
	cfg := config.Default()
	cfg.Render.Width = 200
	cfg.Render.Height = 100

	_, err := run(t, NewRenderCommand(), cfg, "",
		"-r", "2", "--out", fileName, "line:0,0,10,0", "line:10,0,10,10")
	require.NoError(t, err)

	f, err := os.Open(fileName)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestRenderPDFOnFailure(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "corner.pdf")

	_, err := run(t, NewRenderCommand(), config.Default(), "",
		"-r", "20", "--out", fileName, "line:0,0,10,0", "line:10,0,10,10")
	require.Error(t, err)
	assert.Equal(t, fillet.NoShardIntersection, fillet.KindOf(err))

	// the inputs are drawn anyway
	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, NewVersionCommand("1.2.3"), config.Default(), "")
	require.NoError(t, err)
	assert.Equal(t, "fillet v1.2.3\n", out)
}
