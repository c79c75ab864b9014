package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/shawarma/components"
	cfg "github.com/automoto/shawarma/config"
	"github.com/automoto/shawarma/shared/spritesheet"
	"github.com/automoto/shawarma/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TesterUI is the control panel of the animation tester
type TesterUI struct {
	UI     *ebitenui.UI
	Tester *components.TesterData

	OnBack func()

	characterLabel *widget.Label
	statusLabel    *widget.Label
	rateLabel      *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTesterUI creates the tester panel bound to tester
func NewTesterUI(tester *components.TesterData, onBack func()) *TesterUI {
	tui := &TesterUI{
		Tester: tester,
		OnBack: onBack,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TesterUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	tui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	tui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (tui *TesterUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Panel on the right half; the preview is drawn on the left
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(tui.label("ANIMATION TESTER", &tui.titleFace, cfg.White))

	tui.characterLabel = tui.label("", &tui.normalFace, cfg.Yellow)
	panel.AddChild(tui.row(
		tui.button("<", 24, func() { tui.Tester.CycleCharacter(-1) }),
		tui.characterLabel,
		tui.button(">", 24, func() { tui.Tester.CycleCharacter(1) }),
	))

	kinds := tui.grid(len(spritesheet.Kinds))
	for _, kind := range spritesheet.Kinds {
		k := kind
		kinds.AddChild(tui.button(k.String(), 64, func() { tui.Tester.SetKind(k) }))
	}
	panel.AddChild(kinds)

	dirs := tui.grid(len(spritesheet.Directions))
	for _, dir := range spritesheet.Directions {
		d := dir
		dirs.AddChild(tui.button(d.String(), 64, func() { tui.Tester.SetDirection(d) }))
	}
	panel.AddChild(dirs)

	tui.rateLabel = tui.label("", &tui.normalFace, cfg.White)
	panel.AddChild(tui.row(
		tui.button("-", 24, tui.Tester.Slower),
		tui.rateLabel,
		tui.button("+", 24, tui.Tester.Faster),
	))

	tui.statusLabel = tui.label("", &tui.smallFace, cfg.White)
	panel.AddChild(tui.statusLabel)

	panel.AddChild(tui.button("Back to arena (Tab)", 140, func() {
		if tui.OnBack != nil {
			tui.OnBack()
		}
	}))

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TesterUI) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func (tui *TesterUI) row(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(children...)
	return row
}

func (tui *TesterUI) grid(columns int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(columns),
			widget.GridLayoutOpts.Spacing(4, 4),
		)),
	)
}

// button refreshes the labels after every click
func (tui *TesterUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 20),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			tui.UpdateUI()
		}),
	)
}

func (tui *TesterUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.ButtonPress),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI refreshes all labels from the tester state
func (tui *TesterUI) UpdateUI() {
	tui.characterLabel.Label = tui.Tester.Character()
	tui.rateLabel.Label = fmt.Sprintf("%.0f fps", tui.Tester.FrameRate)
	tui.statusLabel.Label = systems.TesterStatus(tui.Tester)
}

// Update updates the UI state
func (tui *TesterUI) Update() {
	tui.UI.Update()
	// Keyboard shortcuts and the frame counter change state outside the widgets
	tui.UpdateUI()
}

// Draw renders the UI
func (tui *TesterUI) Draw(screen *ebiten.Image) {
	tui.UI.Draw(screen)
}
