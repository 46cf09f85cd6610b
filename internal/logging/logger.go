package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня без учёта регистра
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger представляет систему логирования
type Logger struct {
	mu      sync.Mutex
	console *log.Logger
	file    *log.Logger
	closer  io.Closer
	level   LogLevel
	prefix  string
}

// Глобальный экземпляр логгера; по умолчанию пишет INFO и выше в stderr
var globalLogger = &Logger{
	console: log.New(os.Stderr, "", log.LstdFlags),
	level:   INFO,
}

// SetLevel задаёт минимальный уровень для консоли
func SetLevel(level LogLevel) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.level = level
}

// SetOutput перенаправляет консольный вывод (в тестах — в буфер или io.Discard)
func SetOutput(w io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.console = log.New(w, "", log.LstdFlags)
}

// SetPrefix добавляет метку (например, id сессии) перед каждым сообщением
func SetPrefix(prefix string) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.prefix = prefix
}

// InitFileLogger дополнительно пишет все уровни в файл dir/<name>_<время>.log
func InitFileLogger(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ошибка создания директории логов: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.file = log.New(file, "", log.LstdFlags)
	globalLogger.closer = file
	return nil
}

// CloseLogger закрывает файл логов, если он открыт
func CloseLogger() {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	if globalLogger.closer != nil {
		globalLogger.closer.Close()
		globalLogger.closer = nil
		globalLogger.file = nil
	}
}

// LogTrace логирует сообщение уровня TRACE
func LogTrace(format string, args ...interface{}) {
	logMessage(TRACE, format, args...)
}

// LogDebug логирует сообщение уровня DEBUG
func LogDebug(format string, args ...interface{}) {
	logMessage(DEBUG, format, args...)
}

// LogInfo логирует сообщение уровня INFO
func LogInfo(format string, args ...interface{}) {
	logMessage(INFO, format, args...)
}

// LogWarn логирует сообщение уровня WARN
func LogWarn(format string, args ...interface{}) {
	logMessage(WARN, format, args...)
}

// LogError логирует сообщение уровня ERROR
func LogError(format string, args ...interface{}) {
	logMessage(ERROR, format, args...)
}

// logMessage внутренняя функция для логирования
func logMessage(level LogLevel, format string, args ...interface{}) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	if level < globalLogger.level && globalLogger.file == nil {
		return
	}

	message := fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
	if globalLogger.prefix != "" {
		message = "[" + globalLogger.prefix + "] " + message
	}

	// В файл пишутся все уровни
	if globalLogger.file != nil {
		globalLogger.file.Println(message)
	}
	if level >= globalLogger.level {
		globalLogger.console.Println(message)
	}
}
