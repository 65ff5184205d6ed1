package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 웹 서버와 blogctl 이 함께 쓰는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그 필드다.
type Fields map[string]any

// Log 는 전역 로거 인스턴스다. Init 전에도 info 레벨로 동작한다.
var Log Logger = NewLogger("info")

// serviceName 은 모든 구조화 로그에 service_name 으로 붙는다.
var serviceName = "blog-front"

// Init 은 주어진 레벨과 서비스 이름으로 전역 로거를 다시 만든다.
// level 이 비어 있으면 LOG_LEVEL 환경변수, 그것도 없으면 info 를 쓴다.
func Init(level, service string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	if service != "" {
		serviceName = service
	}
	Log = NewLogger(strings.ToLower(level))
}

// NewLogger 는 gookit/slog 콘솔 핸들러에 JSON 포맷터를 붙인 로거를 만든다.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

func withServiceName(fields Fields) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		out["service_name"] = serviceName
	}
	return out
}

func logWithFields(level slog.Level, msg string, fields Fields) {
	fields = withServiceName(fields)
	lg, ok := Log.(*slog.Logger)
	if !ok {
		// 테스트 등에서 교체된 로거는 필드 없이 메시지만 남긴다.
		switch level {
		case slog.DebugLevel:
			Log.Debug(msg)
		case slog.WarnLevel:
			Log.Warn(msg)
		case slog.ErrorLevel:
			Log.Error(msg)
		default:
			Log.Info(msg)
		}
		return
	}
	lg.WithFields(slog.M(fields)).Log(level, msg)
}

func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }

// InfoWithFields 는 request_id, span_id 같은 구조화 필드를 포함한 JSON 로그를 남긴다.
func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }
