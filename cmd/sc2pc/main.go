package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sc2pc/sc2pc/pkg/builder"
	"github.com/sc2pc/sc2pc/pkg/config"
	"github.com/sc2pc/sc2pc/pkg/ffmpeg"
	"github.com/sc2pc/sc2pc/pkg/fs"
	"github.com/sc2pc/sc2pc/pkg/metadata"
	"github.com/sc2pc/sc2pc/pkg/model"
	"github.com/sc2pc/sc2pc/pkg/soundcloud"
	"github.com/sc2pc/sc2pc/services/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	// Parse args
	opts := Opts{}
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	} else if opts.Quiet {
		log.SetLevel(log.WarnLevel)
	}

	if opts.LogFile != "" {
		logFile := newLogFile(opts.LogFile)
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running sc2pc")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.StandardLogger()

	remuxer, err := ffmpeg.New(ctx, ffmpeg.Config{Timeout: opts.RemuxTimeout}, logger)
	if err != nil {
		log.WithError(err).Fatal("ffmpeg error")
	}

	metadataLog := metadata.NewLog(opts.Args.MetadataFile)
	watermarks, err := metadataLog.Watermarks()
	if err == metadata.ErrNoLog {
		if opts.Since.IsZero() {
			log.Fatalf("metadata log %q does not exist, --since is required on the first run", metadataLog.Path())
		}
		log.Infof("metadata log %q does not exist yet, it will be created", metadataLog.Path())
	} else if err != nil {
		log.WithError(err).Fatal("failed to read metadata log")
	}

	// Load YAML file
	log.Debugf("loading configuration %q", opts.Args.ConfigFile)
	shows, err := config.LoadShows(opts.Args.ConfigFile, opts.Show, logger)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	starts, err := startTimes(shows, watermarks, opts.Since.Time)
	if err != nil {
		log.WithError(err).Fatal("no start time")
	}

	if err := os.MkdirAll(opts.Args.PodcastDir, 0755); err != nil {
		log.WithError(err).Fatal("failed to create podcast directory")
	}

	storage, err := fs.NewLocal(opts.Args.PodcastDir, opts.Args.BaseURL, logger)
	if err != nil {
		log.WithError(err).Fatal("failed to open podcast directory")
	}

	clientID := opts.ClientID
	if clientID == "" {
		clientID = model.DefaultClientID
	}

	client, err := soundcloud.New(ctx, soundcloud.Config{ClientID: clientID, AuthToken: opts.AuthToken}, logger)
	if err != nil {
		log.WithError(err).Fatal("failed to obtain SoundCloud credentials")
	}

	log.Debugf("using client_id %s", client.ClientID())

	updater := update.NewUpdater(
		update.Config{BaseURL: opts.Args.BaseURL, DryRun: opts.DryRun, NoOPML: opts.NoOPML},
		shows,
		builder.NewSoundCloudBuilder(client, opts.PageSize, logger),
		client,
		remuxer,
		metadataLog,
		storage,
		logger,
	)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()
		return updater.Run(ctx, starts)
	})

	group.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-stop:
			log.Warnf("received %s, stopping", sig)
			cancel()
			return nil
		}
	})

	if err := group.Wait(); err != nil {
		if errors.Cause(err) == context.Canceled {
			log.Fatal("interrupted")
		}
		log.WithError(err).Fatal("sync failed")
	}

	log.Info("done")
}
