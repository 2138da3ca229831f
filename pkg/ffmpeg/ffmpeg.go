package ffmpeg

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const Binary = "ffmpeg"

// ErrStderr is returned when ffmpeg wrote anything to its error channel.
var ErrStderr = errors.New("ffmpeg reported an error")

type Config struct {
	// Path to ffmpeg binary, resolved through PATH when empty
	Path string
	// Timeout for a single remux, 0 disables it
	Timeout time.Duration
}

type FFmpeg struct {
	path    string
	timeout time.Duration
	logger  log.FieldLogger
}

// New makes sure ffmpeg exists and is runnable.
func New(ctx context.Context, cfg Config, logger log.FieldLogger) (*FFmpeg, error) {
	path := cfg.Path
	if path == "" {
		path = Binary
	}

	path, err := exec.LookPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "ffmpeg binary not found")
	}

	logger.Debugf("found ffmpeg binary at %q", path)

	output, err := exec.CommandContext(ctx, path, "-version").CombinedOutput()
	if err != nil {
		return nil, errors.Wrap(err, "could not run ffmpeg")
	}

	version := strings.SplitN(string(output), "\n", 2)[0]
	logger.Infof("using %s", version)

	return &FFmpeg{path: path, timeout: cfg.Timeout, logger: logger}, nil
}

// Remux copies the stream at streamURL into outputPath without re-encoding.
// The output is written to a hidden temp file next to outputPath and renamed
// on success; on any failure the partial file is removed.
func (f *FFmpeg) Remux(ctx context.Context, streamURL string, outputPath string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	tmp, err := newTempFile(outputPath, f.logger)
	if err != nil {
		return err
	}
	defer tmp.Close()

	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	cmd := exec.CommandContext(ctx, f.path, buildArgs(streamURL, tmp.path, format(outputPath))...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return errors.Wrap(ErrStderr, msg)
	}

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "ffmpeg interrupted")
		}
		return errors.Wrap(runErr, "failed to execute ffmpeg")
	}

	f.logger.Debugf("ffmpeg: %s", stdout.String())

	return tmp.Commit()
}

func buildArgs(streamURL string, outputPath string, format string) []string {
	args := []string{"-nostdin", "-y", "-loglevel", "error", "-i", streamURL, "-c", "copy"}
	if format != "" {
		// The temp file has no media extension, ffmpeg can't guess the muxer from it
		args = append(args, "-f", format)
	}
	return append(args, outputPath)
}

func format(outputPath string) string {
	return strings.TrimPrefix(filepath.Ext(outputPath), ".")
}

// tempFile is a scoped partial output: removed on Close unless committed.
type tempFile struct {
	path      string
	final     string
	committed bool
	logger    log.FieldLogger
}

func newTempFile(outputPath string, logger log.FieldLogger) (*tempFile, error) {
	dir, name := filepath.Split(outputPath)
	tmp := filepath.Join(dir, "."+name+".part")

	// Leftover from an interrupted run
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "could not remove stale temp file %s", tmp)
	}

	return &tempFile{path: tmp, final: outputPath, logger: logger}, nil
}

func (t *tempFile) Commit() error {
	if _, err := os.Stat(t.path); err != nil {
		return errors.Wrap(err, "ffmpeg produced no output")
	}

	if err := os.Rename(t.path, t.final); err != nil {
		return errors.Wrapf(err, "failed to move %s to %s", t.path, t.final)
	}

	t.committed = true
	return nil
}

func (t *tempFile) Close() error {
	if t.committed {
		return nil
	}

	err := os.Remove(t.path)
	if err != nil && !os.IsNotExist(err) {
		t.logger.WithError(err).Errorf("could not remove temp file %s", t.path)
		return err
	}
	return nil
}
