package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/customeros/namesherpa/internal/config"
)

const (
	red    = "\033[1;91m"
	green  = "\033[1;92m"
	yellow = "\033[1;93m"
	blue   = "\033[1;94m"
	reset  = "\033[0m"
)

// Logger writes tagged report lines. ERROR lines go to the error writer,
// everything else to the output writer.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	color  bool
}

func New(out, errOut io.Writer, mode config.ColorMode) *Logger {
	enable := false
	switch mode {
	case config.ColorAlways:
		enable = true
	case config.ColorAuto:
		enable = isTerminal(out) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
	return &Logger{out: out, errOut: errOut, color: enable}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: io.Discard, errOut: io.Discard}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (l *Logger) line(w io.Writer, tag, color, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tag == "" {
		_, _ = io.WriteString(w, text+"\n")
		return
	}
	if l.color {
		_, _ = io.WriteString(w, color+"["+tag+"]"+reset+" "+text+"\n")
		return
	}
	_, _ = io.WriteString(w, "["+tag+"] "+text+"\n")
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, "INFO", blue, fmt.Sprintf(format, args...))
}

func (l *Logger) OK(format string, args ...interface{}) {
	l.line(l.out, "OK", green, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, "WARN", yellow, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.errOut, "ERROR", red, fmt.Sprintf(format, args...))
}

// Issue writes an ERROR tagged line to the output writer. It is for findings
// that belong to the report, not for failures of the run itself.
func (l *Logger) Issue(format string, args ...interface{}) {
	l.line(l.out, "ERROR", red, fmt.Sprintf(format, args...))
}

// Print writes an untagged line.
func (l *Logger) Print(format string, args ...interface{}) {
	l.line(l.out, "", "", fmt.Sprintf(format, args...))
}

// Section writes a banner separating the phases of a run.
func (l *Logger) Section(title string) {
	bar := strings.Repeat("=", 60)
	l.line(l.out, "", "", "\n"+bar+"\n"+title+"\n"+bar)
}
