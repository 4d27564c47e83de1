package host

import (
	"fmt"
	"image/color"
	"time"

	"github.com/chewxy/math32"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oomph-ac/voxelsim"
	"github.com/oomph-ac/voxelsim/camera"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/oomph-ac/voxelsim/input"
	"github.com/oomph-ac/voxelsim/oerror"
	"github.com/oomph-ac/voxelsim/world"
	"github.com/sirupsen/logrus"
)

const (
	// pixelsPerBlock is the zoom of the top-down map.
	pixelsPerBlock = 24
	// editReach is how far away, in blocks, cells can be broken or placed.
	editReach = 5
	// voidDepth is the height below which the player is sent back to its spawn.
	voidDepth = -64
)

var (
	colorBackground = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	colorPlayer     = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	colorLook       = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	colorTarget     = color.RGBA{R: 255, G: 80, B: 80, A: 160}
)

// Game is the ebiten game that renders a session and feeds it keyboard and mouse input.
type Game struct {
	session *voxelsim.Session
	world   *world.World
	cam     *camera.Pose
	keys    input.KeyMap
	spawn   mgl32.Vec3
	log     *logrus.Entry

	// OnWorldEdit is called with the new amount of cells after the world has been edited.
	OnWorldEdit func(cells int)

	tasks chan func()

	width, height int
	captured      bool
	cursorX       int
	cursorY       int
	keyBuf        []ebiten.Key
	last          Status
}

// Status is a summary of the latest tick, shown on screen.
type Status struct {
	Pos     mgl32.Vec3
	Vy      float32
	Speed   float32
	CanJump bool
	Flying  bool
}

// New returns a Game for the session. The camera must be the one the session was created with.
func New(s *voxelsim.Session, w *world.World, cam *camera.Pose, keys input.KeyMap) *Game {
	return &Game{
		session: s,
		world:   w,
		cam:     cam,
		keys:    keys,
		spawn:   cam.Position(),
		log:     s.Log(),
		tasks:   make(chan func(), 8),
	}
}

// Do queues f to run at the start of the next tick, on the goroutine that owns the session. Do may be called
// from any goroutine.
func (g *Game) Do(f func()) {
	g.tasks <- f
}

// SetKeyMap replaces the key bindings. It must be called from within the tick, for example through Do.
func (g *Game) SetKeyMap(keys input.KeyMap) {
	g.session.ReleaseAll()
	g.keys = keys
}

// Update runs a single tick: input first, then movement, then world edits. A panic during the tick is reported
// to sentry and stops the game.
func (g *Game) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Errorf("Update() panic: %v", r)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("session", g.session.ID().String())
			})
			hub.Recover(oerror.New("%v", r))
			hub.Flush(time.Second * 5)
			err = oerror.New("tick panicked: %v", r)
		}
	}()
	g.update(time.Now())
	return nil
}

func (g *Game) update(now time.Time) {
	for len(g.tasks) > 0 {
		(<-g.tasks)()
	}
	if !ebiten.IsFocused() {
		g.session.ReleaseAll()
		g.release()
		return
	}

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if k == ebiten.KeyEscape {
			g.release()
			continue
		}
		if e, ok := g.keys.Event(k.String(), true, now); ok {
			g.session.ApplyInputEvent(e)
		}
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if e, ok := g.keys.Event(k.String(), false, now); ok {
			g.session.ApplyInputEvent(e)
		}
	}
	justCaptured := g.look()

	res := g.session.Tick(now)
	g.last = Status{
		Pos:     res.Position,
		Vy:      res.Vy,
		Speed:   math32.Sqrt(game.Vec3HzDistSqr(res.Moved)),
		CanJump: res.CanJump,
		Flying:  res.Flying,
	}
	if res.Position.Y() < voidDepth {
		g.session.Teleport(g.spawn)
	}

	if !justCaptured {
		g.edit()
	}
}

// look turns pointer movement into camera rotation while the cursor is captured. A click captures the cursor,
// in which case look returns true.
func (g *Game) look() bool {
	x, y := ebiten.CursorPosition()
	if !g.captured {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.captured = true
			g.cursorX, g.cursorY = x, y
			return true
		}
		return false
	}
	dx, dy := x-g.cursorX, y-g.cursorY
	g.cursorX, g.cursorY = x, y
	if dx != 0 || dy != 0 {
		g.session.ApplyLook(input.Look{DX: float32(dx), DY: float32(dy)})
	}
	return false
}

func (g *Game) release() {
	if g.captured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.captured = false
	}
}

// edit breaks the targeted cell on a left click and places a cell in front of it on a right click.
func (g *Game) edit() {
	if !g.captured {
		return
	}
	breaking := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	placing := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !breaking && !placing {
		return
	}
	target, ok := FindTarget(g.world, g.cam.Position(), game.LookDirection(g.cam.Yaw(), g.cam.Pitch()), editReach)
	if !ok {
		return
	}

	opts := g.session.Options()
	var edited bool
	switch {
	case breaking:
		edited = Break(g.world, target)
		g.log.WithField("cell", target.Hit).Debug("cell broken")
	case placing:
		edited = Place(g.world, target, g.cam.Position(), opts.Radius, opts.Height)
		g.log.WithField("cell", target.Place).Debug("cell placed")
	}
	if edited && g.OnWorldEdit != nil {
		g.OnWorldEdit(g.world.Len())
	}
}

// Draw renders a top-down map of the world around the player with a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	pos := g.cam.Position()
	cx, cy := float32(g.width)/2, float32(g.height)/2
	toScreen := func(x, z float32) (float32, float32) {
		return cx + (x-pos.X())*pixelsPerBlock, cy + (z-pos.Z())*pixelsPerBlock
	}

	feet := pos.Y() - g.session.Options().Height
	for _, cell := range g.world.Cells() {
		sx, sy := toScreen(cell.X()-game.BlockHalfWidth, cell.Z()-game.BlockHalfWidth)
		if sx < -pixelsPerBlock || sy < -pixelsPerBlock || sx > float32(g.width) || sy > float32(g.height) {
			continue
		}
		vector.FillRect(screen, sx+1, sy+1, pixelsPerBlock-2, pixelsPerBlock-2, cellColor(cell.Y()-feet), false)
	}

	if target, ok := FindTarget(g.world, pos, game.LookDirection(g.cam.Yaw(), g.cam.Pitch()), editReach); ok && g.captured {
		tx, ty := toScreen(float32(target.Hit[0])-game.BlockHalfWidth, float32(target.Hit[2])-game.BlockHalfWidth)
		vector.StrokeRect(screen, tx, ty, pixelsPerBlock, pixelsPerBlock, 2, colorTarget, false)
	}

	radius := g.session.Options().Radius * pixelsPerBlock
	vector.FillRect(screen, cx-radius, cy-radius, radius*2, radius*2, colorPlayer, false)
	forward, _ := game.YawBasis(g.cam.Yaw())
	vector.StrokeLine(screen, cx, cy, cx+forward.X()*pixelsPerBlock*2, cy+forward.Z()*pixelsPerBlock*2, 2, colorLook, true)

	st := g.last
	hint := "click to capture the mouse"
	if g.captured {
		hint = "esc releases the mouse"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pos: %.2f %.2f %.2f  vy: %.3f  speed: %.3f\ncanJump: %v  flying: %v\nyaw: %.2f  pitch: %.2f  FPS: %.1f\n%s",
		st.Pos.X(), st.Pos.Y(), st.Pos.Z(), st.Vy, st.Speed, st.CanJump, st.Flying,
		g.cam.Yaw(), g.cam.Pitch(), ebiten.ActualFPS(), hint,
	))
}

// cellColor shades a cell by its height relative to the player's feet.
func cellColor(rel float32) color.RGBA {
	shade := uint8(game.ClampFloat(130+rel*30, 40, 220))
	return color.RGBA{R: shade / 2, G: shade, B: shade / 2, A: 255}
}

// Layout keeps the logical screen the size of the window and tells the camera about the new aspect ratio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cam.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the game until it is closed.
func Run(g *Game, width, height int, title string) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
