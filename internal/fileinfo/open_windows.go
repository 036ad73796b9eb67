//go:build windows

package fileinfo

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	shell32        = syscall.NewLazyDLL("shell32.dll")
	procShellExecW = shell32.NewProc("ShellExecuteW")
)

// OpenWithDefaultApp opens the given path with the OS-associated application
// using ShellExecuteW and the "open" verb.
func OpenWithDefaultApp(p string) error {
	lpOperation, _ := syscall.UTF16PtrFromString("open")
	lpFile, err := syscall.UTF16PtrFromString(p)
	if err != nil {
		return err
	}

	// SW_SHOWNORMAL = 1
	ret, _, callErr := procShellExecW.Call(
		0,
		uintptr(unsafe.Pointer(lpOperation)),
		uintptr(unsafe.Pointer(lpFile)),
		0,
		0,
		1,
	)
	if ret <= 32 {
		return fmt.Errorf("ShellExecuteW failed for %s, code=%d err=%v", p, ret, callErr)
	}
	return nil
}
