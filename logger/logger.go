package L

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// log levels
type LogLevel byte

const (
	DEBUG LogLevel = iota
	INFO
	NORMAL
	WARN
	ERROR
	PANIC
	SILENT
)

// color modes
type ColorMode int

const (
	COLOR_MODE_AUTO ColorMode = iota
	COLOR_MODE_ALWAYS
	COLOR_MODE_NEVER
)

// styles
// debug - blue
var debugStyle = lipgloss.NewStyle().Padding(0).Margin(0).
	Foreground(lipgloss.Color("4"))

// info - green
var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("2"))

// no color - normal
var noColorStyle = lipgloss.NewStyle()

// warn - yellow
var warnStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("3"))

// error,panic - red
var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("1"))

// prefixes
const (
	debugPrefix  string = "DBG  "
	infoPrefix   string = "INF  "
	normalPrefix string = "     "
	warnPrefix   string = "WRN  "
	errorPrefix  string = "ERR  "
	panicPrefix  string = "PNC  "
)

var (
	level        = INFO
	colorMode    = COLOR_MODE_AUTO
	debugLogger  = log.New(os.Stdout, colorize(debugPrefix, &debugStyle), log.Lmsgprefix)
	infoLogger   = log.New(os.Stdout, colorize(infoPrefix, &infoStyle), log.Lmsgprefix)
	normalLogger = log.New(os.Stdout, colorize(normalPrefix, &noColorStyle), log.Lmsgprefix)
	warnLogger   = log.New(os.Stdout, colorize(warnPrefix, &warnStyle), log.Lmsgprefix)
	errorLogger  = log.New(os.Stderr, colorize(errorPrefix, &errorStyle), log.Lmsgprefix)
	panicLogger  = log.New(os.Stderr, colorize(panicPrefix, &errorStyle), log.Lmsgprefix)
)

func colorsEnabled() bool {
	switch colorMode {
	case COLOR_MODE_ALWAYS:
		return true
	case COLOR_MODE_NEVER:
		return false
	default:
		return termenv.DefaultOutput().Profile != termenv.Ascii
	}
}

func colorize(prefix string, style *lipgloss.Style) string {
	if !colorsEnabled() {
		return prefix
	}
	return style.Render(prefix)
}

func updateLoggerPrefixColors() {
	debugLogger.SetPrefix(colorize(debugPrefix, &debugStyle))
	infoLogger.SetPrefix(colorize(infoPrefix, &infoStyle))
	normalLogger.SetPrefix(colorize(normalPrefix, &noColorStyle))
	warnLogger.SetPrefix(colorize(warnPrefix, &warnStyle))
	errorLogger.SetPrefix(colorize(errorPrefix, &errorStyle))
	panicLogger.SetPrefix(colorize(panicPrefix, &errorStyle))
}

func SetLevelFromString(l string) error {
	switch strings.ToLower(l) {
	case "debug":
		level = DEBUG
	case "info":
		level = INFO
	case "warn":
		level = WARN
	case "error":
		level = ERROR
	case "panic":
		level = PANIC
	case "silent":
		level = SILENT
	default:
		return fmt.Errorf("unsupported log level: %s", l)
	}
	return nil
}

func SetLevel(l LogLevel) error {
	switch l {
	case DEBUG, INFO, WARN, ERROR, PANIC, SILENT:
		level = l
	default:
		return fmt.Errorf("unsupported log level: %d", l)
	}
	return nil
}

func SetColorModeFromString(colorModeStr string) error {
	switch strings.ToLower(colorModeStr) {
	case "always":
		colorMode = COLOR_MODE_ALWAYS
	case "never":
		colorMode = COLOR_MODE_NEVER
	case "auto":
		colorMode = COLOR_MODE_AUTO
	default:
		return fmt.Errorf("unsupported color mode: %s", colorModeStr)
	}
	updateLoggerPrefixColors()
	return nil
}

func SetColorMode(cm ColorMode) error {
	switch cm {
	case COLOR_MODE_ALWAYS, COLOR_MODE_NEVER, COLOR_MODE_AUTO:
		colorMode = cm
	default:
		return fmt.Errorf("unsupported color mode: %s", cm)
	}
	updateLoggerPrefixColors()
	return nil
}

func (cm ColorMode) String() string {
	switch cm {
	case COLOR_MODE_ALWAYS:
		return "always"
	case COLOR_MODE_NEVER:
		return "never"
	case COLOR_MODE_AUTO:
		return "auto"
	default:
		return "auto"
	}
}

func printMultiline(logger *log.Logger, s string) {
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			continue
		}
		logger.Print(strings.TrimRight(line, "\n"))
	}
}

func Debug(v ...any) {
	if level <= DEBUG {
		printMultiline(debugLogger, fmt.Sprintf("%s", v...))
	}
}

func Info(v ...any) {
	if level <= INFO {
		printMultiline(infoLogger, fmt.Sprintf("%s", v...))
	}
}

func Warn(v ...any) {
	if level <= WARN {
		printMultiline(warnLogger, fmt.Sprintf("%s", v...))
	}
}

func Error(v ...any) {
	if level <= ERROR {
		printMultiline(errorLogger, fmt.Sprintf("%s", v...))
	}
}

func Panic(v ...any) {
	printMultiline(panicLogger, fmt.Sprintf("%s", v...))
	os.Exit(1)
}

func GetLogLevel() LogLevel {
	return level
}

func IsVerbose() bool {
	return level < INFO
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	case SILENT:
		return "silent"
	default:
		return "Unknown log level, indicates a bug. Please report"
	}
}

func Printf(format string, v ...any) (int, error) {
	if level < SILENT {
		return fmt.Printf(format, v...)
	}
	return 0, nil
}

func Print(a ...any) (int, error) {
	if level < SILENT {
		return fmt.Print(a...)
	}
	return 0, nil
}

func Println(a ...any) (int, error) {
	if level < SILENT {
		return fmt.Println(a...)
	}
	return 0, nil
}
