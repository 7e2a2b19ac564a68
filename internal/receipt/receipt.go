// Package receipt is the placeholder for receipt scanning. Acknowledge
// records that a scan was requested and nothing more; no capture, no OCR, no
// ledger writes happen here until a real pipeline lands.
package receipt

import "github.com/YashG504/expense-tracker/internal/logging"

// Scanner is the receipt scanning entry point.
type Scanner struct {
	logger logging.Logger
}

// NewScanner creates a scanner stub.
func NewScanner(logger logging.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Acknowledge notes which file was selected and returns the message shown to
// the user. The expense log is never touched.
func (s *Scanner) Acknowledge(path string) string {
	s.logger.WithField("file", path).Info("Receipt scan requested, feature not yet implemented")
	return "Receipt scanning is coming soon."
}
