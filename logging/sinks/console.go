package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"routegrid/logging"
)

// ConsoleSink writes events as single log lines, for a terminal or a
// benchmark run's stdout.
type ConsoleSink struct {
	logger *log.Logger
}

// NewConsoleSink wraps w in a standard library logger configured from cfg.
func NewConsoleSink(w io.Writer, cfg logging.ConsoleConfig) *ConsoleSink {
	flags := log.LstdFlags
	if cfg.UTCTime {
		flags |= log.LUTC
	}
	return &ConsoleSink{logger: log.New(w, cfg.Prefix, flags)}
}

// Write satisfies logging.Sink.
func (s *ConsoleSink) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	payload := formatPayload(event.Payload)
	s.logger.Printf("[%s] tick=%d actor=%s severity=%s%s", event.Type, event.Tick, formatEntity(event.Actor), formatSeverity(event.Severity), payload)
	return nil
}

func (s *ConsoleSink) Close(context.Context) error {
	return nil
}

func formatSeverity(sev logging.Severity) string {
	switch sev {
	case logging.SeverityDebug:
		return "debug"
	case logging.SeverityInfo:
		return "info"
	case logging.SeverityWarn:
		return "warn"
	case logging.SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func formatEntity(ref logging.EntityRef) string {
	if ref.ID == "" {
		return string(ref.Kind)
	}
	if ref.Kind == "" {
		return ref.ID
	}
	return fmt.Sprintf("%s:%s", ref.Kind, ref.ID)
}

func formatPayload(payload any) string {
	if payload == nil {
		return ""
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(" payload=%v", payload)
	}
	return fmt.Sprintf(" payload=%s", data)
}
