package scenes

import (
	"log"
	"sync"

	"github.com/automoto/shawarma/assets"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/systems"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the playable arena: the player, the shawarma and the
// cooking station.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	hud          *systems.HUD
	timer        frameTimer
	once         sync.Once
}

func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	systems.AdvanceClock(as.ecs, as.timer.Delta())
	as.ecs.Update()

	if systems.ActionJustPressed(as.ecs, cfg.ActionQuit) {
		log.Printf("Quit requested")
		as.sceneChanger.Quit()
		return
	}
	if systems.ActionJustPressed(as.ecs, cfg.ActionSwitchScene) {
		log.Printf("Switching to animation tester")
		as.sceneChanger.ChangeScene(NewTesterScene(as.sceneChanger, as))
	}
}

// resume restarts frame timing after the scene was switched away from.
func (as *ArenaScene) resume() {
	as.timer.Reset()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	assets.SetSheetDir(cfg.Assets.SheetDir)
	assets.PreloadCharacters(cfg.Player.Characters)

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: tint shader unavailable, using color scale: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayerControl)
	ecs.AddSystem(systems.NewFixedStep(
		systems.StepPlayerMovement,
		systems.StepProjectiles,
		systems.StepAdversary,
	))
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAdversary)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateStation)
	ecs.AddSystem(systems.UpdateCamera)

	as.hud = systems.NewHUD(cfg.Adversary.HitPoints)

	ecs.AddRenderer(cfg.Default, systems.DrawFloor)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, as.hud.Draw)

	as.ecs = ecs

	factory.CreateSpace(as.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateCamera(as.ecs)
	factory.CreateClock(as.ecs)
	factory.CreateDisplay(as.ecs, as.hud)

	factory.CreatePlayer(as.ecs, cfg.Player.SpawnX, cfg.Player.SpawnY)
	factory.CreateAdversary(as.ecs, cfg.Adversary.SpawnX, cfg.Adversary.SpawnY, cfg.Adversary.Seed)
	factory.CreateStation(as.ecs, cfg.Station.X, cfg.Station.Y, cfg.Station.Size)

	// Keys held while entering the scene are not fresh presses
	systems.UpdateInput(as.ecs)
}
