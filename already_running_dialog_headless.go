//go:build headless

package main

// Headless builds have no window system; main reports on stderr instead.
func showAlreadyRunningDialog(string) {}
