package feed

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

const defaultHookTimeout = 60 * time.Second

// ExecHook is a command run after each downloaded episode
type ExecHook struct {
	Command []string `yaml:"command"`
	// Timeout in seconds, 0 means one minute
	Timeout int `yaml:"timeout"`
}

// Invoke runs the hook with env appended to the process environment.
func (h *ExecHook) Invoke(ctx context.Context, env []string) error {
	if h == nil {
		return nil
	}
	if len(h.Command) == 0 {
		return errors.New("hook command is empty")
	}

	timeout := defaultHookTimeout
	if h.Timeout > 0 {
		timeout = time.Duration(h.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var cmd *exec.Cmd
	if len(h.Command) == 1 {
		// A single string is a shell snippet
		cmd = exec.CommandContext(ctx, "/bin/sh", "-c", h.Command[0])
	} else {
		cmd = exec.CommandContext(ctx, h.Command[0], h.Command[1:]...)
	}

	cmd.Env = append(os.Environ(), env...)

	if data, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "hook %q failed, output: %s", h.Command[0], string(data))
	}

	return nil
}

// EpisodeEnv is the environment passed to hooks after a download.
func EpisodeEnv(show *Show, trackID int64, title string, file string) []string {
	return []string{
		"SHOW_ID=" + show.ID,
		"SHOW_NAME=" + show.Name,
		fmt.Sprintf("TRACK_ID=%d", trackID),
		"EPISODE_TITLE=" + title,
		"EPISODE_FILE=" + file,
	}
}
