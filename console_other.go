//go:build !windows

package main

// Only Windows attaches a console window to GUI launches.
func hideAndDetachConsoleForGUI() {}
