package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// BuildTableQRPayload returns the URL encoded into a table's QR code.
// The uuid token makes reprinted codes distinguishable from stale ones.
func BuildTableQRPayload(baseURL string, tableNumber int) string {
	return fmt.Sprintf("%s/menu/%d?t=%s", baseURL, tableNumber, uuid.NewString())
}
