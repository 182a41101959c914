package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/environment"
)

var (
	serviceVersion = "0.0.1"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(cancelCtx)
	cancelFunc()
	if err != nil {
		log.Error().Err(err).Msg("main")
		os.Exit(1)
	}
}

// setupLogger applies LOG_LEVEL and, for the daemon, the rolling LOG_FILE.
func setupLogger(agent environment.Agent, daemon bool) (err error) {
	level, err := zerolog.ParseLevel(agent.LogLevel)
	if err != nil {
		return fmt.Errorf("setupLogger: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if daemon && lo.IsNotEmpty(agent.LogfilePath) {
		if writer, err = setupRollingLogFile(agent.LogfilePath); err != nil {
			return fmt.Errorf("setupLogger: %w", err)
		}
	}

	log.Logger = log.Output(writer)
	return nil
}

// setupRollingLogFile prepares the log directory, lumberjack opens the file on first write.
func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	if err = os.MkdirAll(filepath.Dir(filename), constants.LogDirPerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    constants.LogMaxSizeMB,
		MaxAge:     constants.LogMaxAgeDays,
		MaxBackups: constants.LogMaxBackups,
		Compress:   true,
	}, nil
}
