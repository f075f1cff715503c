package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stockind/pkg/cleaner"
	"github.com/c9s/stockind/pkg/indicator"
	"github.com/c9s/stockind/pkg/testing/testhelper"
	"github.com/c9s/stockind/pkg/version"
)

func writeHistory(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "quotes.csv")
	require.NoError(t, os.WriteFile(path, testhelper.HistoryCSV(), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--dotenv", ""))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestChaikinCmd_JSON(t *testing.T) {
	out, err := execute(t, "chaikin", "--file", writeHistory(t), "--format", "json")
	require.NoError(t, err)

	var results []struct {
		Index      int     `json:"index"`
		Adl        string  `json:"adl"`
		Oscillator *string `json:"oscillator"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 502)

	assert.Nil(t, results[8].Oscillator)
	assert.NotNil(t, results[9].Oscillator)
	assert.Equal(t, 502, results[501].Index)
}

func TestChaikinCmd_CSVTail(t *testing.T) {
	out, err := execute(t, "chaikin", "--file", writeHistory(t), "--format", "csv", "--tail", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "index,date,money_flow_multiplier,money_flow_volume,adl,oscillator", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "502,2018-12-31,"), lines[3])
}

func TestChaikinCmd_Table(t *testing.T) {
	out, err := execute(t, "chaikin", "--file", writeHistory(t), "--fast", "2", "--slow", "5", "--tail", "2", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Chaikin Oscillator")
	assert.Contains(t, out, "2018-12-31")
	assert.Contains(t, out, "0.8052")
}

func TestChaikinCmd_ConfigFile(t *testing.T) {
	history := writeHistory(t)
	configFile := filepath.Join(t.TempDir(), "stockind.yaml")
	content := "chaikin:\n  fastPeriods: 4\n  slowPeriods: 8\ninput:\n  file: " + history + "\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	out, err := execute(t, "chaikin", "--config", configFile)
	require.NoError(t, err)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 502)
	assert.Nil(t, results[6]["oscillator"])
	assert.NotNil(t, results[7]["oscillator"])

	// flags win over the config file
	out, err = execute(t, "chaikin", "--config", configFile, "--slow", "12")
	require.NoError(t, err)

	var overridden []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &overridden))
	assert.Nil(t, overridden[10]["oscillator"])
	assert.NotNil(t, overridden[11]["oscillator"])
}

func TestChaikinCmd_BadPeriods(t *testing.T) {
	_, err := execute(t, "chaikin", "--file", writeHistory(t), "--fast", "10", "--slow", "3")
	assert.ErrorIs(t, err, indicator.ErrInvalidPeriods)
}

func TestChaikinCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "chaikin")
	assert.Error(t, err)
}

func TestChaikinCmd_DuplicateDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.csv")
	content := "2017-01-03,1,2,0.5,1.5,100\n2017-01-03,1,2,0.5,1.5,100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := execute(t, "chaikin", "--file", path)
	assert.ErrorIs(t, err, cleaner.ErrDuplicateDate)
}

func TestPrepareCmd(t *testing.T) {
	out, err := execute(t, "prepare", "--file", writeHistory(t), "--format", "csv", "--tail", "1")
	require.NoError(t, err)
	assert.Equal(t, "index,date,open,high,low,close,volume\n502,2018-12-31,244.92,245.54,242.87,245.28,147031456\n", out)

	out, err = execute(t, "prepare", "--file", writeHistory(t), "--format", "csv", "--tail", "1", "--part", "close")
	require.NoError(t, err)
	assert.Equal(t, "index,date,value\n502,2018-12-31,245.28\n", out)

	_, err = execute(t, "prepare", "--file", writeHistory(t), "--part", "mid")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)
}
