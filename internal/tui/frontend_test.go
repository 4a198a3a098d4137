package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"terrarium/internal/audio"
	"terrarium/internal/core"
	"terrarium/internal/paint"
	"terrarium/internal/particle"
	"terrarium/internal/sandbox"

	. "github.com/smartystreets/goconvey/convey"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func isShadeOf(c tcell.Color, kind core.Kind) bool {
	r, g, b := c.RGB()
	for _, p := range particle.Palette(kind) {
		if int32(p.R) == r && int32(p.G) == g && int32(p.B) == b {
			return true
		}
	}
	return false
}

func TestFrontend(t *testing.T) {
	Convey("Given a 12x6 terminal", t, func() {
		screen := newScreen(t, 12, 6)
		defer screen.Fini()
		cue, _ := audio.NewCue(false)
		base := sandbox.Config{Seed: 5, Brush: paint.Brush{Kind: core.Sand, Size: 1}}
		f := New(screen, base, 60, cue)

		Convey("The grid fills every row but the status line", func() {
			w, h := f.Session().Grid().Dimensions()
			So(w, ShouldEqual, 12)
			So(h, ShouldEqual, 5)
			So(f.Session().Config().CellSize, ShouldEqual, 1)
		})

		Convey("A primary click paints sand that then falls", func() {
			f.Handle(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))
			f.Frame()
			f.Handle(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
			So(f.Pending().Primary, ShouldBeTrue)
			f.Frame()

			g := f.Session().Grid()
			So(g.At(3, 2).Kind, ShouldEqual, core.Sand)
			So(g.CountNonEmpty(), ShouldEqual, 1)

			_, _, style, _ := screen.GetContent(3, 2)
			_, bg, _ := style.Decompose()
			So(isShadeOf(bg, core.Sand), ShouldBeTrue)
		})

		Convey("The status line shows the brush", func() {
			f.Frame()
			So(rowText(screen, 5, 12), ShouldStartWith, "Kind: sand")
		})

		Convey("Wheel events scroll without releasing buttons", func() {
			f.Handle(tcell.NewEventMouse(2, 2, tcell.Button2, tcell.ModNone))
			f.Handle(tcell.NewEventMouse(2, 2, tcell.WheelUp, tcell.ModNone))
			f.Handle(tcell.NewEventMouse(2, 2, tcell.WheelUp, tcell.ModNone))
			So(f.Pending().Secondary, ShouldBeTrue)
			So(f.Pending().Scroll, ShouldEqual, 2)

			f.Frame()
			So(f.Session().Brush().Size, ShouldEqual, 3)
			So(f.Session().Brush().Kind, ShouldEqual, core.Stone)
			So(f.Pending().Scroll, ShouldEqual, 0)
		})

		Convey("The middle button freezes the world", func() {
			f.Handle(tcell.NewEventMouse(4, 0, tcell.Button3, tcell.ModNone))
			f.Frame()
			So(f.Session().Frozen(), ShouldBeTrue)
			So(f.Session().Grid().At(4, 0).Kind, ShouldEqual, core.Water)
		})

		Convey("Space pauses, N steps once and Enter resumes", func() {
			f.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
			So(f.Pending().Pause, ShouldBeTrue)
			f.Frame()
			So(f.Session().Paused(), ShouldBeTrue)
			So(f.Pending().Pause, ShouldBeFalse)
			So(f.Session().Tick(), ShouldEqual, 0)

			f.Frame()
			So(f.Session().Tick(), ShouldEqual, 0)

			f.Handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
			f.Frame()
			So(f.Session().Tick(), ShouldEqual, 1)
			f.Frame()
			So(f.Session().Tick(), ShouldEqual, 1)

			f.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
			f.Frame()
			So(f.Session().Paused(), ShouldBeFalse)
			So(f.Session().Tick(), ShouldEqual, 2)
		})

		Convey("Two space presses before a frame cancel out", func() {
			f.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
			f.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
			f.Frame()
			So(f.Session().Paused(), ShouldBeFalse)
		})

		Convey("Plus and minus step the brush size", func() {
			f.Handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
			f.Handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
			So(f.Session().Brush().Size, ShouldEqual, 3)
			f.Handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
			So(f.Session().Brush().Size, ShouldEqual, 2)
			for i := 0; i < 5; i++ {
				f.Handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
			}
			So(f.Session().Brush().Size, ShouldEqual, paint.MinBrushSize)
		})

		Convey("After a resize the status line stays under the grid", func() {
			blank := strings.Repeat(" ", 12)

			screen.SetSize(12, 9)
			f.Handle(tcell.NewEventResize(12, 9))
			So(rowText(screen, 5, 12), ShouldStartWith, "Kind: sand")
			So(rowText(screen, 8, 12), ShouldEqual, blank)

			screen.SetSize(12, 4)
			f.Handle(tcell.NewEventResize(12, 4))
			So(rowText(screen, 3, 12), ShouldEqual, blank)
			_, _, style, _ := screen.GetContent(3, 3)
			_, bg, _ := style.Decompose()
			So(bg, ShouldEqual, tcell.NewRGBColor(0, 0, 0))
		})

		Convey("Run stops when the context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			So(f.Run(ctx), ShouldEqual, context.Canceled)
		})
	})
}

func TestDecodeKey(t *testing.T) {
	Convey("Keys map to frontend actions", t, func() {
		So(decodeKey(tcell.KeyEscape, 0), ShouldEqual, actionClear)
		So(decodeKey(tcell.KeyCtrlC, 0), ShouldEqual, actionQuit)
		So(decodeKey(tcell.KeyRune, 'q'), ShouldEqual, actionQuit)
		So(decodeKey(tcell.KeyRune, 'x'), ShouldEqual, actionNone)
		So(decodeKey(tcell.KeyEnter, 0), ShouldEqual, actionResume)
		So(decodeKey(tcell.KeyRune, ' '), ShouldEqual, actionPause)
		So(decodeKey(tcell.KeyRune, 'N'), ShouldEqual, actionStep)
		So(decodeKey(tcell.KeyRune, '='), ShouldEqual, actionGrow)
		So(decodeKey(tcell.KeyRune, '-'), ShouldEqual, actionShrink)
		So(decodeKey(tcell.KeyTab, 0), ShouldEqual, actionNone)
	})
}

func TestApplyMouse(t *testing.T) {
	Convey("Mouse masks map to held buttons", t, func() {
		var in sandbox.Input
		applyMouse(&in, 7, 8, tcell.Button1|tcell.Button3)
		So(in.X, ShouldEqual, 7)
		So(in.Y, ShouldEqual, 8)
		So(in.Primary, ShouldBeTrue)
		So(in.Secondary, ShouldBeFalse)
		So(in.Tertiary, ShouldBeTrue)

		applyMouse(&in, 1, 1, tcell.WheelDown)
		So(in.Scroll, ShouldEqual, -1)
		So(in.Primary, ShouldBeTrue)

		applyMouse(&in, 1, 1, tcell.ButtonNone)
		So(in.Primary, ShouldBeFalse)
		So(in.Tertiary, ShouldBeFalse)
	})
}
