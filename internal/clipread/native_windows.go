//go:build windows

package clipread

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const cfDIB = 8

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procGetClipboardData           = user32.NewProc("GetClipboardData")

	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

// nativeImageStep reads the raw device-independent bitmap off the Windows
// clipboard and re-encodes it as PNG. It is the fallback when the clipboard
// library is unavailable.
func nativeImageStep() imageStep {
	return imageStep{name: "win32 CF_DIB", fetch: readClipboardDIB}
}

// readClipboardDIB copies the CF_DIB payload out of the clipboard. The
// clipboard is held open only for the duration of the copy and released on
// every exit path.
func readClipboardDIB() ([]byte, outcome) {
	if r, _, _ := procOpenClipboard.Call(0); r == 0 {
		return nil, stepUnavailable
	}
	defer procCloseClipboard.Call() //nolint:errcheck

	if r, _, _ := procIsClipboardFormatAvailable.Call(cfDIB); r == 0 {
		return nil, stepEmpty
	}
	handle, _, _ := procGetClipboardData.Call(cfDIB)
	if handle == 0 {
		return nil, stepEmpty
	}
	ptr, _, _ := procGlobalLock.Call(handle)
	if ptr == 0 {
		return nil, stepUnavailable
	}
	defer procGlobalUnlock.Call(handle) //nolint:errcheck

	size, _, _ := procGlobalSize.Call(handle)
	if size == 0 {
		return nil, stepEmpty
	}
	dib := make([]byte, size)
	copy(dib, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))

	data, err := dibToPNG(dib)
	if err != nil {
		// A payload CF_DIB claims is a bitmap but won't decode: nothing the
		// caller can do with it, so report absent.
		return nil, stepEmpty
	}
	return data, stepHit
}
