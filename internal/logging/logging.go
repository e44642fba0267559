// Package logging writes agential's diagnostic log through the standard
// logger. Command output never goes through this package.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mwiater/agential/internal/util"
)

// maxValueRunes caps how much of an operation's input or output is logged.
const maxValueRunes = 200

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to logPath, and to stderr as well when echo
// is set. With neither, log output is discarded. Calling Init again closes the
// previous file.
func Init(logPath string, echo bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeFile()

	var sinks []io.Writer
	if echo {
		sinks = append(sinks, os.Stderr)
	}
	if logPath != "" {
		file, err := openAppend(logPath)
		if err != nil {
			return err
		}
		logFile = file
		sinks = append(sinks, file)
	}

	switch len(sinks) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(sinks[0])
	default:
		log.SetOutput(io.MultiWriter(sinks...))
	}
	return nil
}

func openAppend(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// closeFile must be called with mu held.
func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Close releases the log file and sends the standard logger back to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	return closeFile()
}

// LogEvent logs a free-form message.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// LogScore records the outcome of one scored case.
func LogScore(suite string, caseID int, correct bool) {
	log.Println(tagged("score",
		field{"suite", orUnknown(suite)},
		field{"case", fmt.Sprint(caseID)},
		field{"correct", fmt.Sprint(correct)},
	))
}

// LogOperation records a text operation together with its input and output.
func LogOperation(op, input string, output any) {
	log.Println(tagged(op,
		field{"input", fmt.Sprintf("%q", util.TruncateRunes(input, maxValueRunes))},
		field{"output", util.TruncateRunes(formatPayload(output), maxValueRunes)},
	))
}

type field struct {
	key, value string
}

// tagged renders "[TAG] k=v k=v". An empty tag becomes OP.
func tagged(tag string, fields ...field) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		tag = "OP"
	}
	var b strings.Builder
	b.WriteString("[" + tag + "]")
	for _, f := range fields {
		b.WriteString(" " + f.key + "=" + f.value)
	}
	return b.String()
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
