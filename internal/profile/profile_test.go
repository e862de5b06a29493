package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalAllEntryKinds(t *testing.T) {
	data := `{
		"name": "dev-leftovers",
		"entries": [
			{"type": "file", "value": "/tmp/a.txt"},
			{"type": "directory", "value": "/tmp/build"},
			{"type": "pattern", "value": "/tmp/dumps/*.dmp", "exception": "mostRecent"},
			{"type": "pattern", "value": "/tmp/logs/*.log"}
		]
	}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(data), &p))
	require.NoError(t, p.Validate())

	require.Len(t, p.Entries, 4)
	assert.Equal(t, "dev-leftovers", p.Name)
	assert.Equal(t, Entry{Kind: KindFile, Value: "/tmp/a.txt"}, p.Entries[0])
	assert.Equal(t, Entry{Kind: KindDirectory, Value: "/tmp/build"}, p.Entries[1])
	assert.Equal(t, Entry{Kind: KindPattern, Value: "/tmp/dumps/*.dmp", Exception: ExceptionMostRecent}, p.Entries[2])
	assert.Equal(t, ExceptionNone, p.Entries[3].Exception)
}

func TestUnmarshalExceptionKinds(t *testing.T) {
	for _, name := range []string{"mostRecent", "firstAscending", "firstDescending"} {
		var e Entry
		data := `{"type": "pattern", "value": "x/*", "exception": "` + name + `"}`
		require.NoError(t, json.Unmarshal([]byte(data), &e), name)
		assert.Equal(t, name, e.Exception.String())
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(`{"type": "symlink", "value": "/tmp/x"}`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown entry type "symlink"`)
}

func TestUnmarshalRejectsUnknownException(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(`{"type": "pattern", "value": "x/*", "exception": "oldest"}`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown exception "oldest"`)
}

func TestValidateRejectsEmptyName(t *testing.T) {
	p := Profile{Entries: []Entry{{Kind: KindFile, Value: "/tmp/a"}}}
	assert.Error(t, p.Validate())
}

func TestValidateRejectsEmptyValue(t *testing.T) {
	p := Profile{Name: "x", Entries: []Entry{{Kind: KindFile}}}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestValidateRejectsExceptionOnLiteralEntries(t *testing.T) {
	p := Profile{Name: "x", Entries: []Entry{
		{Kind: KindFile, Value: "/tmp/a", Exception: ExceptionMostRecent},
	}}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only valid on pattern entries")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	data := `{"name": "p", "entries": [{"type": "file", "value": "/tmp/a.txt"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "p", p.Name)
	require.Len(t, p.Entries, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	data := `{"name": "", "entries": []}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSampleRoundTrip(t *testing.T) {
	s := Sample()
	require.NoError(t, s.Validate())

	data, err := json.MarshalIndent(&s, "", "  ")
	require.NoError(t, err)

	var back Profile
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}
