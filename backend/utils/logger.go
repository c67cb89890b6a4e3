package utils

import (
	"log"
	"os"
)

// InitLogger initializes the application logger.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[marketplace] ", log.LstdFlags|log.LUTC)
}
