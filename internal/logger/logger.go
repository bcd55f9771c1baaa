// Package logger provides logging functionality for the mana simulation engine.
package logger

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mtgsim/manasim/pkg/types"
)

var currentLogLevel = types.SIM

var logger = &Logger{
	logger: log.New(os.Stdout, "", log.Ltime),
}

// Logger wraps the standard logger with simulation-specific functionality.
type Logger struct {
	logger *log.Logger
}

// SetLogLevel sets the current logging level.
func SetLogLevel(level types.LogLevel) {
	currentLogLevel = level
}

// LogMeta logs meta-level messages (startup, config, run summaries).
func LogMeta(message string, args ...interface{}) {
	if currentLogLevel >= types.META {
		logger.logger.Printf("META: "+message, args...)
	}
}

// LogSim logs simulation-level messages (per-run progress).
func LogSim(message string, args ...interface{}) {
	if currentLogLevel >= types.SIM {
		logger.logger.Printf("SIM: "+message, args...)
	}
}

// LogDeck logs deck/decklist-parsing messages.
func LogDeck(message string, args ...interface{}) {
	if currentLogLevel >= types.DECK {
		logger.logger.Printf("DECK: "+message, args...)
	}
}

// LogCard logs card-level messages.
func LogCard(message string, args ...interface{}) {
	if currentLogLevel >= types.CARD {
		logger.logger.Printf("CARD: "+message, args...)
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(level string) types.LogLevel {
	switch level {
	case "META":
		return types.META
	case "SIM":
		return types.SIM
	case "DECK":
		return types.DECK
	case "CARD":
		return types.CARD
	default:
		return types.SIM
	}
}

// ManaParseFallbackLogger records mana-cost strings the parser could not
// interpret precisely and silently defaulted to colorless: parsing
// errors inside the mana-cost parser are recovered locally and never
// surfaced to the caller, but are worth a diagnostic trail.
type ManaParseFallbackLogger struct {
	logFile string
	cache   map[string]bool
}

var fallbackLogger *ManaParseFallbackLogger

// InitManaParseFallbackLogger initializes the fallback logger.
func InitManaParseFallbackLogger() error {
	if fallbackLogger != nil {
		return nil
	}

	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	logFile := filepath.Join(logsDir, "mana_parse_fallbacks.log")
	fallbackLogger = &ManaParseFallbackLogger{
		logFile: logFile,
		cache:   make(map[string]bool),
	}

	if err := fallbackLogger.loadExistingEntries(); err != nil {
		LogCard("Warning: Failed to load existing mana-parse fallback entries: %v", err)
	}

	return nil
}

func (l *ManaParseFallbackLogger) loadExistingEntries() error {
	file, err := os.Open(l.logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "[") && strings.Contains(line, "]") {
			start := strings.Index(line, "[") + 1
			end := strings.Index(line, "]")
			if start < end {
				l.cache[line[start:end]] = true
			}
		}
	}

	return scanner.Err()
}

// LogManaParseFallback logs a mana-cost string that fell back to colorless,
// deduping repeated occurrences of the same raw cost string.
func LogManaParseFallback(rawCost, detail string) {
	if fallbackLogger == nil {
		if err := InitManaParseFallbackLogger(); err != nil {
			LogCard("Failed to initialize mana-parse fallback logger: %v", err)
			return
		}
	}

	if fallbackLogger.cache[rawCost] {
		return
	}
	fallbackLogger.cache[rawCost] = true

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("%s [%s] %s\n", timestamp, rawCost, detail)

	file, err := os.OpenFile(fallbackLogger.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		LogCard("Failed to open mana-parse fallback log: %v", err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(entry); err != nil {
		LogCard("Failed to write mana-parse fallback log: %v", err)
	}
}
