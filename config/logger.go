package config

import (
	"fmt"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger initializes the Zap logger with Lumberjack log rotation and a 'logs' folder
func InitLogger() {
	// Ensure the 'logs' directory exists
	err := os.MkdirAll("logs", os.ModePerm)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logs directory: %v", err))
	}

	// Set up log rotation using Lumberjack
	logFile := &lumberjack.Logger{
		Filename:   fmt.Sprintf("logs/%s.log", time.Now().Format("2006-01-02")), // Logs will be named by date
		MaxSize:    10,                                                          // Megabytes before rotation
		MaxBackups: 7,                                                           // Keep the last 7 backups
		MaxAge:     28,                                                          // Days to keep old logs
		Compress:   true,                                                        // Compress rotated files
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	level := zapcore.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}

	// Always log to file; mirror to stdout outside production so submissions
	// can be followed while developing
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(logFile), level),
	}
	if os.Getenv("APP_ENV") != "production" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...))

	defer Logger.Sync()
}
