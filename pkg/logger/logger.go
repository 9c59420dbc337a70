// Package logger builds the zap loggers shared by the storefront binaries.
package logger

import (
	"go.uber.org/zap"
)

// New returns a console logger for local and development environments and a JSON
// production logger everywhere else.
func New(appEnv string) (*zap.Logger, error) {
	switch appEnv {
	case "local", "development":
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}

// Must is New for process entry points, where a logger failure is fatal.
func Must(appEnv string) *zap.Logger {
	l, err := New(appEnv)
	if err != nil {
		panic(err)
	}
	return l
}
