package root

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configTemplate = `
webServer:
  host: 127.0.0.1
  port: 9000
persistence:
  driver: %s
  filePath: %s
  refreshInterval: 1m
logger:
  level: error
  mode: 0644
  dir: %s
`

const importDoc = `{
  "version": "2.0",
  "gritLogs": [
    {"id": "a", "date": "2024-01-10", "taskName": "cold shower", "difficultyScore": 5, "enduredTime": 30, "enduranceScore": 150},
    {"id": "b", "date": "2024-01-11", "taskName": "deep work", "difficultyScore": 8, "enduredTime": 45, "enduranceScore": 360}
  ],
  "rewardSettings": [
    {"id": "r1", "targetScore": 500, "rewardContent": "book", "isCompleted": false}
  ]
}`

func writeConfig(t *testing.T, driver string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(configTemplate, driver, filepath.Join(dir, "storage.db"), filepath.Join(dir, "logs"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImportExportReset(t *testing.T) {
	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			config := writeConfig(t, driver)
			input := filepath.Join(t.TempDir(), "in.json")
			require.NoError(t, os.WriteFile(input, []byte(importDoc), 0644))

			out, err := run(t, "import", input, "--config", config)
			require.NoError(t, err)
			assert.Contains(t, out, "Imported 2 logs, 0 reviews, 1 rewards")

			exported := filepath.Join(t.TempDir(), "out.json")
			out, err = run(t, "export", "-o", exported, "--config", config)
			require.NoError(t, err)
			assert.Contains(t, out, "Exported 2 logs")

			raw, err := os.ReadFile(exported)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"taskName": "deep work"`)
			assert.Contains(t, string(raw), `"version": "2.0"`)

			out, err = run(t, "reset", "--yes", "--config", config)
			require.NoError(t, err)
			assert.Contains(t, out, "All data reset")

			out, err = run(t, "export", "--config", config)
			require.NoError(t, err)
			assert.Contains(t, out, `"gritLogs": []`)
		})
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	_, err := run(t, "reset", "--config", writeConfig(t, "file"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	config := writeConfig(t, "file")
	input := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"foo":1}`), 0644))

	_, err := run(t, "import", input, "--config", config)
	require.Error(t, err)

	_, err = run(t, "import", "--config", config)
	assert.EqualError(t, err, "file is required")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "export", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open store")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "gritd v"+Version+"\n", out)
}
