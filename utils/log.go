package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", timestamp, level)
	if entry.Caller != nil {
		fmt.Fprintf(&b, " %s:%d %s", lastPart(entry.Caller.File, "/"), entry.Caller.Line, lastPart(entry.Caller.Function, "."))
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)
	for k, v := range entry.Data {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func lastPart(s, sep string) string {
	parts := strings.Split(s, sep)
	return parts[len(parts)-1]
}

// InitLogger 替换pitaya全局logger，dir为空时只输出到stderr
func InitLogger(level string, dir string) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	l, err := Logger(lv, dir)
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

func Logger(level logrus.Level, dir string) (interfaces.Logger, error) {
	l := logrus.New()
	var out io.Writer = os.Stderr
	if dir != "" {
		writer, err := getWriter(dir)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stderr, writer)
	}
	l.SetOutput(out)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

func getWriter(dir string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer, err := newRotateLogs(logFile)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

func newRotateLogs(pattern string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}

// SafeRotateLogs 日志文件被外部删除后自动重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	currentLogFile := s.RotateLogs.CurrentFileName()
	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		writer, err := newRotateLogs(s.logPattern)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %w", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}
