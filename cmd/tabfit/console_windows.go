//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleMode     = modkernel32.NewProc("GetConsoleMode")
	procSetConsoleMode     = modkernel32.NewProc("SetConsoleMode")
	procGetStdHandle       = modkernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = uintptr(-11 & 0xFFFFFFFF)
	enableVirtualTerminalProcessing = 0x0004
	cpUTF8                          = 65001
)

// initConsole switches the console to UTF-8 so box-drawing borders and
// escape sequences in cells display correctly
func initConsole() {
	procSetConsoleOutputCP.Call(cpUTF8)

	stdout, _, _ := procGetStdHandle.Call(stdOutputHandle)
	if stdout != 0 {
		var mode uint32
		procGetConsoleMode.Call(stdout, uintptr(unsafe.Pointer(&mode)))
		procSetConsoleMode.Call(stdout, uintptr(mode|enableVirtualTerminalProcessing))
	}
}
