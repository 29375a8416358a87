package state

import "strings"

// FooterText returns the footer content. Errors win over status messages,
// and neither is shown while loading.
func FooterText(loading bool, err error, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if err != nil {
		status = "Error: " + err.Error()
	}
	if loading || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
