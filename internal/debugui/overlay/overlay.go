// Package overlay draws the debug windows with Dear ImGui on top of the
// ebiten front end.
package overlay

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/debugui"
)

const historyFrames = 120

// Overlay renders a performance window and a state inspector for one game.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	game    *engine.Game
	timer   *debugui.FrameTimer
	history *debugui.FrameHistory
}

// New creates the ImGui backend and its window. Call it before
// ebiten.RunGame.
func New(title string, width, height int, game *engine.Game) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: backend,
		game:    game,
		timer:   debugui.NewFrameTimer(),
		history: debugui.NewFrameHistory(historyFrames),
	}
}

// WantsKeyboard reports whether ImGui consumed keyboard input last frame.
func (o *Overlay) WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// Update builds this frame's windows. Call it once per ebiten Update.
func (o *Overlay) Update() {
	o.history.Add(o.timer.Delta())

	o.backend.BeginFrame()
	o.renderPerformance()
	o.renderInspector()
	o.backend.EndFrame()
}

// Draw paints the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the logical screen size to the backend.
func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

func (o *Overlay) renderPerformance() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 150), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", o.history.Average(), o.history.FPS()))
	imgui.Text(fmt.Sprintf("Drop Interval: %d ticks", o.game.DropInterval()))
	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := o.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	imgui.End()
}

func (o *Overlay) renderInspector() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 170), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	for _, section := range debugui.Inspect(o.game) {
		if !imgui.TreeNodeStr(section.Title) {
			continue
		}
		if imgui.BeginTableV(section.Title, 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			for _, e := range section.Entries {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(e.Label)
				imgui.TableNextColumn()
				imgui.Text(e.Value)
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
