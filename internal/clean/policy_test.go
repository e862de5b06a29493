package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/sweep/internal/resolve"
)

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{
		"silent":      ModeSilent,
		"every-entry": ModeEveryEntry,
		"every-path":  ModeEveryPath,
	} {
		got, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
}

func TestParseModeRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "everyPath", "quiet", "dry-run"} {
		_, err := ParseMode(name)
		assert.Error(t, err, name)
	}
}

func TestRequiresConfirmation(t *testing.T) {
	target := resolve.Target{Path: "/tmp/x", Kind: resolve.KindFile}

	assert.True(t, RequiresConfirmation(ModeEveryPath, target))
	assert.False(t, RequiresConfirmation(ModeSilent, target))
	assert.False(t, RequiresConfirmation(ModeEveryEntry, target))
}

func TestConfirmsEntries(t *testing.T) {
	assert.True(t, ModeEveryEntry.ConfirmsEntries())
	assert.False(t, ModeSilent.ConfirmsEntries())
	assert.False(t, ModeEveryPath.ConfirmsEntries())
}
