//go:build windows

package fileinfo

import (
	"syscall"
)

const fileAttributeHidden = 0x02

// IsWindowsHidden checks if a file has the Windows hidden attribute
func IsWindowsHidden(path string) bool {
	pathPtr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	attrs, err := syscall.GetFileAttributes(pathPtr)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}
