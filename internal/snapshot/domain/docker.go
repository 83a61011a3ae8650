package domain

import "strings"

// ContainerState carries the raw per-container fields the Docker API
// reports before they are shaped into the status payload
type ContainerState struct {
	Name  string
	State string
	Image string
}

// ImageName normalizes a container image reference. Untagged images
// surface from the daemon as bare digests, which are reported as unknown.
func ImageName(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "sha256:") {
		return UnknownField
	}
	return ref
}
