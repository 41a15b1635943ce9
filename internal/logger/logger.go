package logger

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// PIIFields are the structured field names whose values are never
// written to the log in clear text.
var PIIFields = []string{"name", "email", "phone", "ssn", "password"}

const Redaction = "***"

var std *slog.Logger

func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: redactAttr,
	})
	std = slog.New(handler)
	std.Info("logger initialized")
}

// redactAttr masks PII attribute values before they reach the handler.
func redactAttr(groups []string, a slog.Attr) slog.Attr {
	for _, field := range PIIFields {
		if a.Key == field {
			a.Value = slog.StringValue(Redaction)
			break
		}
	}
	return a
}

func logWith(level slog.Level, msg string, fields map[string]any) {
	if std == nil {
		Init()
	}
	attrs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	std.Log(context.Background(), level, msg, attrs...)
}

func Info(msg string, fields map[string]any) {
	logWith(slog.LevelInfo, msg, fields)
}

func Warn(msg string, fields map[string]any) {
	logWith(slog.LevelWarn, msg, fields)
}

func Error(msg string, fields map[string]any) {
	logWith(slog.LevelError, msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	logWith(slog.LevelError, msg, fields)
	os.Exit(1)
}

// Filter obfuscates the values of the given fields inside a separator-joined
// "key=value" message. Useful when logging raw request payloads that may
// carry PII.
func Filter(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 {
		return message
	}
	alternatives := make([]string, len(fields))
	for i, field := range fields {
		alternatives[i] = regexp.QuoteMeta(field) + "=[^" + regexp.QuoteMeta(separator) + "]*"
	}
	pattern := regexp.MustCompile(strings.Join(alternatives, "|"))
	return pattern.ReplaceAllStringFunc(message, func(m string) string {
		key, _, _ := strings.Cut(m, "=")
		return key + "=" + redaction
	})
}
