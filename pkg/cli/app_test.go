package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mchmarny/evs/pkg/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	initLogging(false)
	code := m.Run()
	os.Exit(code)
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	app := newApp(&buf)
	require.NoError(t, app.Run(context.Background(), append([]string{appName}, args...)))
	return buf.String()
}

func TestScoreDefault(t *testing.T) {
	out := run(t)
	assert.Equal(t, "Ethereum Validator Score: 77.37\n", out)
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Ethereum Validator Score: 77.37\n", run(t, "--format", "text"))
	assert.Equal(t, "Ethereum Validator Score: 77.37\n", run(t, "--format", "xml"))
}

func TestScoreDebug(t *testing.T) {
	defer initLogging(false)
	assert.Equal(t, "Ethereum Validator Score: 77.37\n", run(t, "--debug"))
}

func TestScoreJSON(t *testing.T) {
	out := run(t, "--format", "json")

	var b map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.InDelta(t, score.Compute(score.Sample(), score.SampleTotalValidators), b["score"], 1e-9)
	assert.Equal(t, score.ModelVersion, b["version"])
	assert.Len(t, b["weighted"], 5)
}

func TestScoreYAML(t *testing.T) {
	out := run(t, "--format", "yml")

	var b score.Breakdown
	require.NoError(t, yaml.Unmarshal([]byte(out), &b))
	assert.InDelta(t, 77.373, float64(b.Score), 0.001)
	assert.InDelta(t, 95.0, float64(b.Uptime), 1e-9)
	assert.Equal(t, score.SampleTotalValidators, b.TotalValidators)
}

func TestWeightsText(t *testing.T) {
	out := run(t, "weights")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "uptime"))
	assert.True(t, strings.HasSuffix(lines[0], "0.40"))
	assert.True(t, strings.HasPrefix(lines[4], "balance_growth"))
}

func TestWeightsYAML(t *testing.T) {
	out := run(t, "weights", "--format", "yaml")

	var cats []score.CategoryWeight
	require.NoError(t, yaml.Unmarshal([]byte(out), &cats))
	assert.Equal(t, score.Categories(), cats)
}

func TestWeightsJSON(t *testing.T) {
	out := run(t, "--format", "json", "weights")

	var cats []score.CategoryWeight
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	assert.Len(t, cats, 5)
}

func TestUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	app := newApp(&buf)
	app.ErrWriter = &buf
	err := app.Run(context.Background(), []string{appName, "--nope"})
	assert.Error(t, err)
}
