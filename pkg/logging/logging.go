package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance. It discards output until Setup runs.
var Logger = zap.NewNop()

// Setup builds Logger from the development config when debug is set and the
// production config otherwise. Both write to stderr. Production logs start at
// warn level so a successful run leaves stderr empty.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
