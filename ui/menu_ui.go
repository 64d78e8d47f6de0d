package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/settings"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI       *ebitenui.UI
	Settings *settings.SavedSettings

	// Callbacks
	OnDungeon        func()
	OnKnight         func()
	OnSettingsChange func()
	OnQuit           func()

	// Widget references for updates
	soundButton   *widget.Button
	volumeButton  *widget.Button
	minimapButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu. saved is edited in place by the settings
// buttons; OnSettingsChange is called after every edit.
func NewMenuUI(saved *settings.SavedSettings) (*MenuUI, error) {
	mui := &MenuUI{Settings: saved}
	if err := mui.loadFonts(); err != nil {
		return nil, err
	}
	mui.buildUI()
	mui.UpdateUI()
	return mui, nil
}

func (mui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load menu font: %w", err)
	}
	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 18, 26, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Window.Title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 90, 255},
		}),
	))

	contentContainer.AddChild(mui.button("Enter the Dungeon", func() { call(mui.OnDungeon) }))
	contentContainer.AddChild(mui.button("Knight Demo", func() { call(mui.OnKnight) }))

	mui.soundButton = mui.button("", func() {
		mui.Settings.Muted = !mui.Settings.Muted
		mui.changed()
	})
	contentContainer.AddChild(mui.soundButton)

	mui.volumeButton = mui.button("", func() {
		mui.Settings.VolumeIndex = (mui.Settings.VolumeIndex + 1) % len(cfg.Settings.VolumeSteps)
		mui.changed()
	})
	contentContainer.AddChild(mui.volumeButton)

	mui.minimapButton = mui.button("", func() {
		mui.Settings.ShowMinimap = !mui.Settings.ShowMinimap
		mui.changed()
	})
	contentContainer.AddChild(mui.minimapButton)

	contentContainer.AddChild(mui.button("Quit", func() { call(mui.OnQuit) }))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("WASD move   F attack   H hint   M map   P pause", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)
	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 32),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) changed() {
	mui.UpdateUI()
	call(mui.OnSettingsChange)
}

// UpdateUI refreshes the settings button labels.
func (mui *MenuUI) UpdateUI() {
	setLabel(mui.soundButton, "Sound: "+onOff(!mui.Settings.Muted))
	setLabel(mui.volumeButton, fmt.Sprintf("Volume: %d%%", int(mui.Settings.Volume()*100+0.5)))
	setLabel(mui.minimapButton, "Minimap: "+onOff(mui.Settings.ShowMinimap))
	if mui.volumeButton != nil {
		mui.volumeButton.GetWidget().Disabled = mui.Settings.Muted
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func setLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func call(f func()) {
	if f != nil {
		f()
	}
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 50, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{85, 70, 110, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 32, 55, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
