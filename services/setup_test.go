package services

import (
	"os"
	"testing"

	"grass-map/generator/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
