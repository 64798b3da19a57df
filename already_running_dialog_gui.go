//go:build !headless

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func showAlreadyRunningDialog(title string) {
	uiApp := app.New()
	win := uiApp.NewWindow(title)
	win.SetFixedSize(true)
	win.Resize(fyne.NewSize(380, 120))

	message := widget.NewLabel("The portfolio viewer is already open.")
	message.Alignment = fyne.TextAlignCenter
	ok := widget.NewButton("OK", uiApp.Quit)
	ok.Importance = widget.HighImportance
	buttons := container.NewHBox(layout.NewSpacer(), ok, layout.NewSpacer())

	win.SetContent(container.NewPadded(container.NewBorder(message, buttons, nil, nil, nil)))
	win.SetCloseIntercept(uiApp.Quit)
	win.Show()
	uiApp.Run()
}
