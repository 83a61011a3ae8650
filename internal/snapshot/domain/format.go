package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wall-clock format used in the system payload
const DateLayout = "2006-01-02 15:04:05"

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BytesToGiB converts a byte count to binary gigabytes
func BytesToGiB(b uint64) float64 {
	return float64(b) / (1 << 30)
}

// FormatUptime renders elapsed seconds as "D days, HH hrs, MM mins, SS secs".
// Days are unpadded, the remaining fields are zero-padded to two digits.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	mins := seconds % 3600 / 60
	secs := seconds % 60
	return fmt.Sprintf("%d days, %02d hrs, %02d mins, %02d secs", days, hours, mins, secs)
}

// FormatProcessUptime renders a process age as "D days, HH hrs, MM mins",
// dropping the seconds field uptime strings carry.
func FormatProcessUptime(age time.Duration) string {
	if age < 0 {
		age = 0
	}
	seconds := uint64(age.Seconds())
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	mins := seconds % 3600 / 60
	return fmt.Sprintf("%d days, %02d hrs, %02d mins", days, hours, mins)
}
