package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test User")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644))
	run("add", "main.go")
	run("commit", "-m", "initial")

	return dir
}

func TestClient_Revision(t *testing.T) {
	dir := setupTestRepo(t)
	c := NewClient()

	assert.True(t, c.RepoExists(dir))

	sha, err := c.CurrentCommitSHA(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, sha)

	rev, err := c.Revision(dir)
	require.NoError(t, err)
	assert.Equal(t, sha, rev)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0644))
	dirty, err := c.IsDirty(dir)
	require.NoError(t, err)
	assert.True(t, dirty)

	rev, err = c.Revision(dir)
	require.NoError(t, err)
	assert.Equal(t, sha+"-dirty", rev)
}

func TestClient_OutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	c := NewClient()

	assert.False(t, c.RepoExists(filepath.Join(dir, "missing")))

	_, err := c.Revision(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git rev-parse failed")
}
