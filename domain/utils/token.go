package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

// GenerateToken returns a purchase reference token of four space-separated
// four-digit groups, e.g. "4821 0937 5164 2280".
func GenerateToken() string {
	parts := make([]string, 4)
	for i := range parts {
		parts[i] = fmt.Sprintf("%d", 1000+rand.Intn(9000))
	}
	return strings.Join(parts, " ")
}
