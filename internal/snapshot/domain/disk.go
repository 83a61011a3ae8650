package domain

import (
	"encoding/json"
	"fmt"
)

// LsblkDevice mirrors one node of lsblk's JSON block device tree
type LsblkDevice struct {
	Name       string        `json:"name"`
	Size       string        `json:"size"`
	Type       string        `json:"type"`
	Mountpoint *string       `json:"mountpoint"`
	Children   []LsblkDevice `json:"children"`
}

// ParseLsblk decodes the output of lsblk -J into the device tree
func ParseLsblk(data []byte) ([]LsblkDevice, error) {
	var report struct {
		BlockDevices []LsblkDevice `json:"blockdevices"`
	}
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse lsblk output: %w", err)
	}
	return report.BlockDevices, nil
}
