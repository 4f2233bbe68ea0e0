package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/insurance.txt
var insuranceRaw string

// Insurance returns the trimmed system prompt for the insurance assistant.
func Insurance() string {
	return strings.TrimSpace(insuranceRaw)
}
