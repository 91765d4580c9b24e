package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/derekjohnsonva/minesweeper/internal/config"
)

// Setup configures log from c. With a log file configured, entries only go to
// the rotating file so that the board on stdout stays readable.
func Setup(log *logrus.Logger, c config.Config) error {
	level := logrus.InfoLevel
	if c.Development() {
		level = logrus.DebugLevel
	}
	if c.Log.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("unable to parse log level: %w", err)
		}
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development()})
	log.SetOutput(os.Stderr)

	if c.Log.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.Log.File,
		MaxSize:    c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	return nil
}
