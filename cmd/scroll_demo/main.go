// Package main provides an interactive viewer for tuning the scroll engine.
//
// Usage:
//
//	go run cmd/scroll_demo/main.go [flags]
//
// Flags:
//
//	--config <path>     Load scroll config from a YAML file (e.g., --config=data/scroll.yaml)
//	--profile <name>    Load a saved profile instead of a file (default "default")
//	--save-profile      Save the active config under --profile on exit
//	--rows <n>          Number of rows in the content (default 120)
//	--verbose <level>   Log verbosity 0-3 (default 0)
//
// Controls:
//
//	Mouse/Touch drag  - Scroll with overscroll, release for momentum
//	Mouse wheel       - Animated scroll by 3 rows per notch
//	Home/End          - Animated scroll to top/bottom
//	Page Up/Down      - Instant scroll by one page
//	0-9               - Jump to 0%, 10%, ... 90%
//	D                 - Toggle gesture input (disable scrolling)
//	R                 - Finish pull-to-refresh
//	Up/Down Arrow     - Add/remove 10 rows (triggers resize)
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/frame"
	"github.com/decker502/scrollkit/pkg/game"
	"github.com/decker502/scrollkit/pkg/logging"
	"github.com/decker502/scrollkit/pkg/systems"
	"github.com/decker502/scrollkit/pkg/types"
	"github.com/decker502/scrollkit/pkg/utils"
)

const (
	screenWidth  = 480
	screenHeight = 720
	rowHeight    = 48
	wheelRows    = 3

	stableFlashFrames = 30
)

var (
	configFlag      = flag.String("config", "", "Path to a scroll config YAML file")
	profileFlag     = flag.String("profile", game.DefaultProfile, "Saved profile name")
	saveProfileFlag = flag.Bool("save-profile", false, "Save the active config under --profile on exit")
	rowsFlag        = flag.Int("rows", 120, "Number of rows in the content")
	verboseFlag     = flag.Int("verbose", logging.DEFAULT, "Log verbosity 0-3")
)

var errQuit = errors.New("quit")

var (
	rowColorA   = color.RGBA{0x2b, 0x30, 0x3a, 0xff}
	rowColorB   = color.RGBA{0x33, 0x39, 0x45, 0xff}
	barColor    = color.RGBA{0xc0, 0xc8, 0xd8, 0xc0}
	pullColor   = color.RGBA{0x5f, 0xb3, 0x5f, 0xff}
	stableColor = color.RGBA{0xe0, 0xa0, 0x40, 0xff}
)

// ScrollDemoGame implements ebiten.Game for the scroll viewer
type ScrollDemoGame struct {
	loop    *frame.Loop
	scroll  *systems.ScrollSystem
	layout  *systems.StaticLayout
	tracker *utils.DragTracker
	cfg     *config.ScrollConfig
	logger  logr.Logger

	rows     int
	disabled bool

	// 监听到的最近一次通知
	last         systems.ScrollEvent
	stableFrames int
	refreshing   bool
}

// NewScrollDemoGame creates the viewer with the given config
func NewScrollDemoGame(cfg *config.ScrollConfig, rows int, logger logr.Logger) (*ScrollDemoGame, error) {
	g := &ScrollDemoGame{
		loop:    frame.NewLoop(),
		tracker: utils.NewDragTracker(),
		cfg:     cfg,
		logger:  logger,
		rows:    rows,
		layout: &systems.StaticLayout{
			Container: types.V2(screenWidth, screenHeight),
		},
	}
	g.layout.Content = g.contentSize()

	s, err := systems.NewScrollSystem(cfg, g.layout, systems.ScrollSystemOptions{
		Scheduler: g.loop,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scroll system: %w", err)
	}
	s.AddListener(g)
	g.scroll = s
	g.last = s.GetPosition()
	return g, nil
}

func (g *ScrollDemoGame) contentSize() types.Vec2 {
	return types.V2(screenWidth*2, float64(g.rows*rowHeight))
}

// OnPositionChange records the latest position
func (g *ScrollDemoGame) OnPositionChange(e systems.ScrollEvent) {
	g.last = e
}

// OnPositionStable flashes the stable indicator
func (g *ScrollDemoGame) OnPositionStable(e systems.ScrollEvent) {
	g.last = e
	g.stableFrames = stableFlashFrames
}

// OnPullToRefresh marks the viewer as refreshing until R is pressed
func (g *ScrollDemoGame) OnPullToRefresh(e systems.ScrollEvent) {
	g.refreshing = true
}

// Update handles input and advances the frame loop
func (g *ScrollDemoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	g.handleDrag()
	g.handleWheel()
	g.handleKeys()

	g.loop.Step()

	if g.stableFrames > 0 {
		g.stableFrames--
	}
	return nil
}

func (g *ScrollDemoGame) handleDrag() {
	g.tracker.Update(utils.ReadPointer())

	switch {
	case g.tracker.JustStarted():
		g.scroll.TouchStart()
	case g.tracker.IsDragging():
		if d := g.tracker.Delta(); d != (types.Vec2{}) {
			g.scroll.Push(systems.PushFromDrag(d))
		}
	case g.tracker.JustEnded():
		release := g.tracker.ReleaseVelocity()
		g.logger.V(logging.DEBUG).Info("[ScrollDemo] drag ended", "distance", g.tracker.Distance(), "velocity", release)
		v := systems.VelocityFromDrag(release)
		g.scroll.TouchEnd(&v)
	}
}

func (g *ScrollDemoGame) handleWheel() {
	w := utils.ReadWheel()
	if w == (types.Vec2{}) || g.tracker.IsDragging() {
		return
	}
	// 滚轮向下（负值）使内容向下滚动
	target := g.scroll.AnimatedScroll().Target()
	if !g.scroll.AnimatedScroll().IsActive() {
		target = g.last.Position
	}
	g.scroll.ScrollTo(
		target.X()-w.X()*wheelRows*rowHeight,
		target.Y()-w.Y()*wheelRows*rowHeight,
		true, 0,
	)
}

func (g *ScrollDemoGame) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroll.ScrollToTop(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroll.ScrollToBottom(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.scroll.ScrollBy(0, screenHeight, false, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scroll.ScrollBy(0, -screenHeight, false, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.disabled = !g.disabled
		g.scroll.DisableScrolling(g.disabled)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.refreshing = false
		g.scroll.StopPullToRefresh()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.resize(g.rows + 10)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.resize(g.rows - 10)
	}

	for i, key := range []ebiten.Key{
		ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
		ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	} {
		if inpututil.IsKeyJustPressed(key) {
			p := float64(i) / 10
			g.scroll.ScrollToPercentage(p, p)
		}
	}
}

func (g *ScrollDemoGame) resize(rows int) {
	if rows < 0 {
		rows = 0
	}
	g.rows = rows
	g.layout.Content = g.contentSize()
	g.logger.V(logging.VERBOSE).Info("[ScrollDemo] content resized", "rows", rows)
	g.scroll.HandleResize()
}

// Draw renders the visible rows, scrollbar and status text
func (g *ScrollDemoGame) Draw(screen *ebiten.Image) {
	pos := g.last.Position

	first := int(pos.Y()) / rowHeight
	if first < 0 {
		first = 0
	}
	for i := first; i < g.rows; i++ {
		y := float64(i*rowHeight) - pos.Y()
		if y > screenHeight {
			break
		}
		c := rowColorA
		if i%2 == 1 {
			c = rowColorB
		}
		vector.DrawFilledRect(screen, float32(-pos.X()), float32(y), screenWidth*2, rowHeight, c, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("row %d", i), int(12-pos.X()), int(y)+16)
	}

	// 下拉刷新指示条
	if pull := g.last.OverscrollPull.Y(); pull > 0 && g.last.OverscrollDirection[types.AxisY] == types.DirectionBackward {
		vector.DrawFilledRect(screen, 0, 0, float32(screenWidth*pull), 4, pullColor, false)
	}

	// 滚动条
	barHeight := float32(screenHeight * screenHeight / max(g.layout.Content.Y(), screenHeight))
	barY := float32(g.last.Progress.Y()) * (screenHeight - barHeight)
	vector.DrawFilledRect(screen, screenWidth-6, barY, 4, barHeight, barColor, true)

	// 稳定指示灯随剩余帧数淡出
	if g.stableFrames > 0 {
		f := float64(g.stableFrames) / stableFlashFrames
		fade := func(v uint8) uint8 { return uint8(utils.Lerp(0, float64(v), f)) }
		// color.RGBA 为预乘 alpha，四个通道同比缩放
		c := color.RGBA{fade(stableColor.R), fade(stableColor.G), fade(stableColor.B), fade(stableColor.A)}
		vector.DrawFilledRect(screen, screenWidth-20, screenHeight-20, 12, 12, c, true)
	}

	status := fmt.Sprintf(
		"pos %.1f,%.1f  progress %.2f\noverscroll %.1f  pull %.2f\nmomentum %v bounce %v animated %v\ndisabled %v refreshing %v  rows %d",
		pos.X(), pos.Y(), g.last.Progress.Y(),
		g.last.Overscroll.Y(), g.last.OverscrollPull.Y(),
		g.scroll.Momentum().IsActive(), g.scroll.Bounce().IsActive(), g.scroll.AnimatedScroll().IsActive(),
		g.disabled, g.refreshing, g.rows,
	)
	ebitenutil.DebugPrintAt(screen, status, 8, screenHeight-72)
}

// Layout returns the fixed logical screen size
func (g *ScrollDemoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadConfig(profiles *game.ProfileManager) (*config.ScrollConfig, error) {
	if *configFlag != "" {
		return config.LoadScrollConfig(*configFlag)
	}
	return profiles.Load(*profileFlag)
}

func main() {
	flag.Parse()

	logger, err := logging.NewLogger(true, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	profiles := game.NewProfileManager(game.OpenStorage(game.DefaultAppName, logger), logger)
	cfg, err := loadConfig(profiles)
	if err != nil {
		logger.Error(err, "[ScrollDemo] failed to load config")
		os.Exit(1)
	}

	g, err := NewScrollDemoGame(cfg, *rowsFlag, logger)
	if err != nil {
		logger.Error(err, "[ScrollDemo] failed to start")
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Scroll Engine Viewer")
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		logger.Error(err, "[ScrollDemo] game exited with error")
		os.Exit(1)
	}

	g.scroll.Destroy()

	if *saveProfileFlag {
		if err := profiles.Save(*profileFlag, cfg); err != nil {
			logger.Error(err, "[ScrollDemo] failed to save profile", "profile", *profileFlag)
			os.Exit(1)
		}
		logger.Info("[ScrollDemo] profile saved", "profile", *profileFlag)
	}
}
