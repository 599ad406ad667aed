package main

import (
	"log"
	"os"
	"strings"

	"libconfgen/cmd"
	"libconfgen/pkg/logging"
	"libconfgen/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "libconfgen", version.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	err := cmd.Execute()
	logger := logging.Logger
	if err != nil {
		logger.Error("libconfgen execution failed", zap.Error(err))
	}

	// Syncing stderr fails with "invalid argument" on pipes and character devices.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
