package wizard

import (
	"fmt"
	"strings"
)

// ValidateScriptName checks the script name the platform will accept:
// lowercase alphanumerics and hyphens, not starting or ending with a
// hyphen.
func ValidateScriptName(name string) error {
	if name == "" {
		return fmt.Errorf("script name cannot be empty")
	}
	if len(name) > 63 {
		return fmt.Errorf("script name must be 63 characters or fewer")
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return fmt.Errorf("script name cannot start or end with a hyphen")
	}
	for _, ch := range name {
		isValid := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-'
		if !isValid {
			return fmt.Errorf("script name must contain only lowercase letters, numbers, and hyphens")
		}
	}
	return nil
}

// ValidateAccountID checks the 32-character hex account ID. An empty value
// is allowed; deploys will then require account_id to be filled in later.
func ValidateAccountID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) != 32 {
		return fmt.Errorf("account ID must be 32 hex characters")
	}
	for _, ch := range id {
		isHex := (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')
		if !isHex {
			return fmt.Errorf("account ID must contain only lowercase hex characters")
		}
	}
	return nil
}
