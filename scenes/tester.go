package scenes

import (
	"log"
	"sync"

	"github.com/automoto/shawarma/assets"
	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/systems"
	"github.com/automoto/shawarma/systems/factory"
	"github.com/automoto/shawarma/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TesterScene previews every character, animation and direction with an
// ebitenui control panel.
type TesterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	testerUI     *ui.TesterUI
	arena        *ArenaScene
	timer        frameTimer
	once         sync.Once
	shouldGoBack bool
}

// NewTesterScene creates the tester. arena is resumed on the way back; nil
// starts a fresh arena.
func NewTesterScene(sc SceneChanger, arena *ArenaScene) *TesterScene {
	return &TesterScene{sceneChanger: sc, arena: arena}
}

func (ts *TesterScene) Update() {
	ts.once.Do(ts.configure)

	systems.AdvanceClock(ts.ecs, ts.timer.Delta())
	ts.ecs.Update()
	ts.testerUI.Update()

	if systems.ActionJustPressed(ts.ecs, cfg.ActionSwitchScene) || systems.ActionJustPressed(ts.ecs, cfg.ActionQuit) {
		ts.shouldGoBack = true
	}
	if ts.shouldGoBack {
		ts.goBack()
	}
}

func (ts *TesterScene) goBack() {
	log.Printf("Switching to arena")
	if ts.arena == nil {
		ts.sceneChanger.ChangeScene(NewArenaScene(ts.sceneChanger))
		return
	}
	ts.arena.resume()
	ts.sceneChanger.ChangeScene(ts.arena)
}

func (ts *TesterScene) Draw(screen *ebiten.Image) {
	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.testerUI.Draw(screen)
}

func (ts *TesterScene) configure() {
	assets.SetSheetDir(cfg.Assets.SheetDir)

	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateTester)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawTester)

	factory.CreateClock(ts.ecs)
	tester := factory.CreateTester(ts.ecs)

	ts.testerUI = ui.NewTesterUI(
		components.Tester.Get(tester),
		func() { ts.shouldGoBack = true },
	)

	systems.UpdateInput(ts.ecs)
}
