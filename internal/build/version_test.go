package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	assert.True(t, IsDevBuild())
	assert.Equal(t, "testidcheck dev (commit unknown, built unknown)", Summary())

	Version, Commit, BuildDate = "v1.2.0", "abc123", "2026-01-02"
	assert.False(t, IsDevBuild())
	assert.Equal(t, "testidcheck v1.2.0 (commit abc123, built 2026-01-02)", Summary())
}
