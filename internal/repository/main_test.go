package repository

import (
	"os"
	"testing"

	"budgetly/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}
