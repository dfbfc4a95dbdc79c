package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	isDebug bool
	out     io.Writer = os.Stderr
)

var (
	sectionColor = color.New(color.FgGreen)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	hintColor    = color.New(color.FgCyan)
)

// Init sets the logging mode.
// If debug is true, enables timestamped, verbose output.
// If debug is false, uses standard clean output.
func Init(debug bool) {
	isDebug = debug
}

// SetOutput redirects all log output to w and returns the previous writer.
// Progress goes to stderr by default so charts on stdout can be piped.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Section prints a major step: [+] Message
func Section(msg string) {
	if isDebug {
		log("INFO", "[+] "+msg)
		return
	}
	_, _ = sectionColor.Fprintf(out, "[+] %s\n", msg)
}

// Item prints a list item:     - Message
func Item(msg string) {
	if isDebug {
		log("INFO", "    - "+msg)
		return
	}
	_, _ = fmt.Fprintf(out, "    - %s\n", msg)
}

// Success prints a success message: ✨ Message
func Success(msg string) {
	if isDebug {
		log("INFO", "✨ "+msg)
		return
	}
	_, _ = successColor.Fprintf(out, "✨ %s\n", msg)
}

// Warn prints a warning message: [!] Message
func Warn(msg string) {
	if isDebug {
		log("WARN", "[!] "+msg)
		return
	}
	_, _ = warnColor.Fprintf(out, "[!] %s\n", msg)
}

// Error prints an error message: [✘] Message
func Error(msg string) {
	if isDebug {
		log("ERROR", "[✘] "+msg)
		return
	}
	_, _ = errorColor.Fprintf(out, "[✘] %s\n", msg)
}

// Hint prints a hint message: -> Message
func Hint(msg string) {
	if isDebug {
		log("INFO", "-> "+msg)
		return
	}
	_, _ = hintColor.Fprintf(out, "-> %s\n", msg)
}

// Debug prints a debug message only if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if !isDebug {
		return
	}
	log("DEBUG", fmt.Sprintf(format, v...))
}

func log(level, msg string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", timestamp, level, msg)
}
