package main

import "github.com/sukseskontraktor/rental-assistant/internal/app"

func main() {
	err := app.NewAssistantApp().Run()
	if err != nil {
		panic(err)
	}
}
