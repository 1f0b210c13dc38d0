package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ha2san/void-survivor/client"
	"github.com/ha2san/void-survivor/game"
)

func main() {
	config := game.DefaultConfig()
	config.Logger = log.New(os.Stderr, "", log.LstdFlags)

	app, err := client.NewApp(client.Options{
		Config:      config,
		ProfileDir:  os.Getenv("VOID_PROFILE_DIR"),
		AttractDemo: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Void Survivor")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TickRate)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
