package domain

import "strings"

// TunnelNameFromList extracts the tunnel name from `cloudflared tunnel list`
// output. The table is positional: two header lines, then one row per tunnel
// with the name in the second column. Anything shorter yields Unknown.
func TunnelNameFromList(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= 2 {
		return Unknown
	}
	fields := strings.Fields(lines[2])
	if len(fields) < 2 {
		return Unknown
	}
	return fields[1]
}
