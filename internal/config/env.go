package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var optionalMarker = regexp.MustCompile(`#\s*optional`)

// RequiredKeysFromTemplate parses an env template file and returns the keys of
// every KEY=VALUE line not annotated with an "# optional" comment. A missing
// template yields no required keys.
func RequiredKeysFromTemplate(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var keys []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if optionalMarker.MatchString(strings.ToLower(trimmed)) {
			continue
		}

		assignment := strings.TrimSpace(strings.SplitN(trimmed, "#", 2)[0])
		eq := strings.Index(assignment, "=")
		if eq <= 0 {
			continue
		}
		if key := strings.TrimSpace(assignment[:eq]); key != "" {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// ValidateRequiredEnv checks that every required variable from the template is
// present and non-blank in the environment.
func ValidateRequiredEnv(templatePath string) error {
	required, err := RequiredKeysFromTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("read env template: %w", err)
	}

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
