package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Client reads revision information from a working tree.
type Client struct{}

// NewClient creates a new Git client.
func NewClient() *Client {
	return &Client{}
}

func (c *Client) output(dir string, args ...string) (string, error) {
	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	// Enforce no prompting
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\nStderr: %s", args[0], err, strings.TrimSpace(errBuf.String()))
	}
	return strings.TrimSpace(outBuf.String()), nil
}

// RepoExists checks if the directory is a git repository.
func (c *Client) RepoExists(dir string) bool {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return false
	}
	_, err := c.output(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// CurrentCommitSHA returns the abbreviated hash of HEAD.
func (c *Client) CurrentCommitSHA(dir string) (string, error) {
	return c.output(dir, "rev-parse", "--short", "HEAD")
}

// IsDirty reports whether the working tree has uncommitted changes.
func (c *Client) IsDirty(dir string) (bool, error) {
	out, err := c.output(dir, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// Revision identifies the code a run was measured on: the short HEAD hash,
// suffixed with "-dirty" when tracked files have local changes.
func (c *Client) Revision(dir string) (string, error) {
	sha, err := c.CurrentCommitSHA(dir)
	if err != nil {
		return "", err
	}
	dirty, err := c.IsDirty(dir)
	if err != nil {
		return "", err
	}
	if dirty {
		return sha + "-dirty", nil
	}
	return sha, nil
}
