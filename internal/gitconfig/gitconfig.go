package gitconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultBinary is the git executable looked up on PATH
	DefaultBinary = "git"
	// DefaultTimeout bounds a single git invocation
	DefaultTimeout = 5 * time.Second
)

// Git applies identities with `git config --global`
type Git struct {
	binary  string
	timeout time.Duration
}

// New creates a Git applier. Empty binary and non-positive timeout use the defaults.
func New(binary string, timeout time.Duration) *Git {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Git{binary: binary, timeout: timeout}
}

// Apply sets user.name then user.email in the global git config
func (g *Git) Apply(ctx context.Context, userName, userEmail string) error {
	if _, err := g.run(ctx, "config", "--global", "user.name", userName); err != nil {
		return err
	}
	if _, err := g.run(ctx, "config", "--global", "user.email", userEmail); err != nil {
		return err
	}
	return nil
}

// Read returns the identity currently in the global git config.
// Unset keys come back empty.
func (g *Git) Read(ctx context.Context) (string, string, error) {
	userName, err := g.get(ctx, "user.name")
	if err != nil {
		return "", "", err
	}
	userEmail, err := g.get(ctx, "user.email")
	if err != nil {
		return "", "", err
	}
	return userName, userEmail, nil
}

func (g *Git) get(ctx context.Context, key string) (string, error) {
	out, err := g.run(ctx, "config", "--global", "--get", key)
	if err != nil {
		// git exits 1 when the key is not set
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, g.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", &CommandError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
		}
		return "", &CommandError{Args: args, Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CommandError describes a failed git invocation
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), e.Stderr)
	}
	return fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
