package utils

import "errors"

var EmptyNameError = errors.New("'name' is required")

func CheckName(name string) error {
	if len(name) == 0 {
		return EmptyNameError
	}

	return nil
}
