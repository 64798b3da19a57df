//go:build windows

package main

import "syscall"

const swHide = 0

// hideAndDetachConsoleForGUI drops the console window a double-clicked
// console-subsystem binary gets, so only the viewer window remains.
func hideAndDetachConsoleForGUI() {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	user32 := syscall.NewLazyDLL("user32.dll")

	hwnd, _, _ := kernel32.NewProc("GetConsoleWindow").Call()
	if hwnd != 0 {
		_, _, _ = user32.NewProc("ShowWindow").Call(hwnd, swHide)
	}
	_, _, _ = kernel32.NewProc("FreeConsole").Call()
}
