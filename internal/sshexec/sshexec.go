package sshexec

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client runs commands against a single remote host. Host is anything the
// ssh binary accepts: "user@web.example.com", a ~/.ssh/config alias, etc.
type Client struct {
	Host string
}

// New returns a Client for the given host.
func New(host string) *Client {
	return &Client{Host: host}
}

// Run executes command on the remote host and returns its stdout.
func (c *Client) Run(ctx context.Context, command ...string) (string, error) {
	args := append([]string{c.Host}, command...)
	return output(ctx, "ssh", args...)
}

// Copy uploads localPath to remotePath on the host via scp.
func (c *Client) Copy(ctx context.Context, localPath, remotePath string) error {
	_, err := output(ctx, "scp", localPath, c.Host+":"+remotePath)
	return err
}

// Available reports whether the ssh and scp binaries can be found on PATH.
func Available() error {
	for _, name := range []string{"ssh", "scp"} {
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("%s binary not found on PATH", name)
		}
	}
	return nil
}

func output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
