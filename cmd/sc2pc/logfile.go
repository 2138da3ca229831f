package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sc2pc/sc2pc/pkg/model"
)

// newLogFile opens a size rotated log file. log.Fatal exits skip deferred
// calls, so the file is also closed from a logrus exit handler.
func newLogFile(path string) io.WriteCloser {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    model.DefaultLogMaxSize,
		MaxBackups: model.DefaultLogMaxBackups,
		MaxAge:     model.DefaultLogMaxAge,
	}

	log.RegisterExitHandler(func() {
		_ = rotator.Close()
	})

	return rotator
}
