package storage

import (
	"strings"

	"github.com/diegoclair/weekly-signup/internal/domain/entity"
)

// FormatRecord renders a signup as one bucket line, newline included
func FormatRecord(signup entity.Signup) string {
	return signup.Name + "," + signup.Status + "\n"
}

// ParseRecords turns bucket content into name -> status.
// Blank lines are skipped and a later line for the same name overwrites an earlier one.
func ParseRecords(content string) map[string]string {
	signups := make(map[string]string)

	content = strings.TrimSpace(content)
	if content == "" {
		return signups
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		name, status, _ := strings.Cut(line, ",")
		signups[name] = status
	}

	return signups
}
