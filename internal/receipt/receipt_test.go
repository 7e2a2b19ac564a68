package receipt

import (
	"testing"

	"github.com/YashG504/expense-tracker/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestAcknowledge(t *testing.T) {
	logger := logging.NewMockLogger()
	s := NewScanner(logger)

	message := s.Acknowledge("receipt.jpg")

	assert.NotEmpty(t, message)
	assert.True(t, logger.HasEntry("INFO", "Receipt scan requested, feature not yet implemented"))
}
