package domain

import "strings"

// ParseOSRelease parses os-release key=value pairs. Lines without a
// separator are skipped and surrounding double quotes are stripped.
func ParseOSRelease(data []byte) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "=") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		fields[parts[0]] = strings.Trim(parts[1], `"`)
	}
	return fields
}

// PlatformName picks the distribution name from parsed os-release fields,
// preferring PRETTY_NAME over NAME.
func PlatformName(fields map[string]string) string {
	if name, ok := fields["PRETTY_NAME"]; ok {
		return name
	}
	if name, ok := fields["NAME"]; ok {
		return name
	}
	return Unknown
}
