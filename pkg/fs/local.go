package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Local struct {
	hostname string
	rootDir  string
	logger   log.FieldLogger
}

var _ Storage = (*Local)(nil)

// NewLocal creates a storage for rootDir served publicly at hostname.
func NewLocal(rootDir string, hostname string, logger log.FieldLogger) (*Local, error) {
	if hostname == "" {
		return nil, errors.New("hostname can't be empty")
	}

	if !strings.HasPrefix(hostname, "http") {
		hostname = fmt.Sprintf("http://%s", hostname)
	}

	if !strings.HasSuffix(hostname, "/") {
		hostname += "/"
	}

	return &Local{rootDir: rootDir, hostname: hostname, logger: logger}, nil
}

func (l *Local) Path(name string) string {
	return filepath.Join(l.rootDir, name)
}

// Create writes to a temp file first so readers never see a partial file.
func (l *Local) Create(ctx context.Context, name string, reader io.Reader) (int64, error) {
	logger := l.logger.WithField("file", name)

	if err := os.MkdirAll(l.rootDir, 0755); err != nil {
		return 0, errors.Wrapf(err, "failed to create directory: %s", l.rootDir)
	}

	var (
		path = l.Path(name)
		tmp  = l.Path("." + name + ".tmp")
	)

	logger.Debugf("copying to: %s", path)
	written, err := l.copyFile(reader, tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return 0, errors.Wrap(err, "failed to copy file")
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, errors.Wrapf(err, "failed to move file to %s", path)
	}

	logger.Debugf("copied %d bytes", written)
	return written, nil
}

func (l *Local) Size(ctx context.Context, name string) (int64, error) {
	stat, err := os.Stat(l.Path(name))
	if err == nil {
		if stat.IsDir() {
			return 0, errors.Errorf("%s is a directory", name)
		}
		return stat.Size(), nil
	}

	return 0, err
}

func (l *Local) List(ctx context.Context, prefix string, suffix string) ([]string, error) {
	entries, err := os.ReadDir(l.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list %s", l.rootDir)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (l *Local) URL(ctx context.Context, name string) (string, error) {
	if _, err := l.Size(ctx, name); err != nil {
		return "", errors.Wrap(err, "failed to check whether file exists")
	}

	return l.hostname + name, nil
}

func (l *Local) copyFile(source io.Reader, destinationPath string) (int64, error) {
	dest, err := os.Create(destinationPath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create destination file")
	}

	written, err := io.Copy(dest, source)
	if err != nil {
		dest.Close()
		return 0, errors.Wrap(err, "failed to copy data")
	}

	return written, dest.Close()
}
