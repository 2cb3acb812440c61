package testutils

import "strings"

// GenerateOverBytesUnderRunes генерирует строку из count рун по 4 байта.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count)
}
