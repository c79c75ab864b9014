package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/fonts"
	"github.com/automoto/shawarma/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	quitting bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update
func (g *Game) Quit() {
	g.quitting = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.StartInTester {
		g.scene = scenes.NewTesterScene(g, nil)
	} else {
		g.scene = scenes.NewArenaScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quitting {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	tester := flag.Bool("tester", false, "start in the animation tester")
	debug := flag.Bool("debug", false, "show collision outlines and verbose logs")
	sheets := flag.String("sheets", "", "directory of <Name>_<kind>_16x16.png character sheets")
	seed := flag.Int64("seed", 0, "seed for the shawarma's wandering (0 picks one)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadTuning(*configPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("Loaded tuning from %s", *configPath)
	}

	// Flags win over the tuning file
	if *debug {
		config.Debug.Enabled = true
	}
	if *tester {
		config.Debug.StartInTester = true
	}
	if *sheets != "" {
		config.Assets.SheetDir = *sheets
	}
	if *seed != 0 {
		config.Adversary.Seed = *seed
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
