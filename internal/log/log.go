/*
 * Copyright (c) YugabyteDB, Inc.
 */

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	easy "github.com/t-tomalak/logrus-easy-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

// File rotation defaults
const (
	MaxSizeMB  = 100
	MaxBackups = 5
	MaxAgeDays = 28
)

// SetFormatter sets log formatter for logrus
func SetFormatter() {
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&easy.Formatter{
		LogFormat: "%msg%",
	})
}

// SetDebugFormatter sets log formatter for logrus debug
func SetDebugFormatter() {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:          viper.GetBool("disable-color"),
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	})
}

// SetLogLevel sets log level for logrus
func SetLogLevel(logLevel string, debug bool) error {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		SetDebugFormatter()
		return nil
	}
	if logLevel == "" {
		logrus.SetLevel(logrus.InfoLevel)
		return nil
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %s", logLevel)
	}
	logrus.SetLevel(level)
	return nil
}

// SetLogFile copies log output into a rotated file, console output is kept
func SetLogFile(path string) io.Closer {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, file))
	return file
}
