package util

import (
	"fmt"
	"strconv"
)

// FromUint64 convert uint64 to string
func FromUint64(number uint64) string {
	return fmt.Sprintf("%d", number)
}

// ToUint64 convert input string to uint64 number
func ToUint64(uint64Str string) (uint64, error) {
	val, err := strconv.ParseUint(uint64Str, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, fmt.Errorf("value overflows uint64 range")
		}
		return 0, fmt.Errorf("value must be an unsigned 64 bit integer")
	}
	return val, nil
}

// FromInt64 convert int64 to string
func FromInt64(number int64) string {
	return strconv.FormatInt(number, 10)
}

// ToInt64 convert input string to int64 number
func ToInt64(int64Str string) (int64, error) {
	val, err := strconv.ParseInt(int64Str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value must be a signed 64 bit integer")
	}
	return val, nil
}
