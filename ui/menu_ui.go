package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/skyward/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuActions are the callbacks behind the menu buttons. Each one only
// queues a request; nothing changes until the dispatcher applies it.
type MenuActions struct {
	OnPlay     func()
	OnQuit     func()
	OnResume   func()
	OnRetry    func()
	OnMainMenu func() // the back button of the pause and game-over menus
}

// MenuUI holds one ebitenui interface per menu.
type MenuUI struct {
	Main     *ebitenui.UI
	Pause    *ebitenui.UI
	GameOver *ebitenui.UI

	actions MenuActions

	// Widget references for updates
	resultLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	buttonFace text.Face
}

// NewMenuUI builds the main, pause and game-over menus.
func NewMenuUI(actions MenuActions) (*MenuUI, error) {
	m := &MenuUI{actions: actions}
	if err := m.loadFonts(); err != nil {
		return nil, err
	}

	m.Main = m.buildMenu(cfg.C.Title, nil,
		m.button("Play", actions.OnPlay),
		m.button("Quit", actions.OnQuit),
	)
	m.Pause = m.buildMenu("Paused", nil,
		m.button("Resume", actions.OnResume),
		m.button("Main Menu", actions.OnMainMenu),
	)

	m.resultLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &m.buttonFace, &widget.LabelColor{
			Idle: cfg.UI.TitleColor,
		}),
	)
	m.GameOver = m.buildMenu("Game Over", m.resultLabel,
		m.button("Retry", actions.OnRetry),
		m.button("Main Menu", actions.OnMainMenu),
	)
	return m, nil
}

// SetResult updates the heights shown on the game-over menu.
func (m *MenuUI) SetResult(height, best float64) {
	m.resultLabel.Label = fmt.Sprintf("Height %d   Best %d", int(height), int(best))
}

func (m *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ui: load font: %w", err)
	}

	m.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.TitleSize,
	}
	m.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.ButtonSize,
	}
	return nil
}

// buildMenu lays out a title, an optional label and a column of buttons,
// centered over a translucent overlay.
func (m *MenuUI) buildMenu(title string, label *widget.Label, buttons ...*widget.Button) *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.MenuOverlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &m.titleFace, &widget.LabelColor{
			Idle: cfg.UI.TitleColor,
		}),
	))
	if label != nil {
		contentContainer.AddChild(label)
	}
	for _, b := range buttons {
		contentContainer.AddChild(b)
	}

	rootContainer.AddChild(contentContainer)
	return &ebitenui.UI{
		Container: rootContainer,
	}
}

func (m *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonWidth, cfg.UI.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &m.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.UI.ButtonText,
			Hover:   cfg.UI.ButtonText,
			Pressed: cfg.UI.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// buttonImage maps the idle/hover/pressed button colours onto nine-slices.
func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.UI.ButtonDefault)
	hover := image.NewNineSliceColor(cfg.UI.ButtonHover)
	pressed := image.NewNineSliceColor(cfg.UI.ButtonPressed)

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
