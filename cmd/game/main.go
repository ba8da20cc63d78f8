package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/1siamBot/pang/engine/audio"
	"github.com/1siamBot/pang/engine/config"
	"github.com/1siamBot/pang/engine/core"
	"github.com/1siamBot/pang/engine/entities"
	"github.com/1siamBot/pang/engine/input"
	"github.com/1siamBot/pang/engine/maplib"
	"github.com/1siamBot/pang/engine/render"
	"github.com/1siamBot/pang/engine/systems"
	"github.com/1siamBot/pang/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Game implements ebiten.Game interface
type Game struct {
	loop   *core.GameLoop
	input  *input.InputState
	canvas *render.Canvas
	width  int
	height int
}

func (g *Game) Update() error {
	g.input.Update()
	if err := g.loop.Update(g.input.Controls()); err != nil {
		if errors.Is(err, core.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen, core.Palette["raywhite"])
	g.loop.Draw(g.canvas)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgPath, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if cfgPath == "" {
		log.Info("using built-in config")
	} else {
		log.Info("config loaded", zap.String("path", cfgPath))
	}

	stage, err := loadStage(cfg.Game.Stage)
	if err != nil {
		return fmt.Errorf("stage: %w", err)
	}

	bindings, err := input.ParseBindings(cfg.Input.Actions())
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	w := core.NewWorld(float64(cfg.Window.TargetTPS))
	w.AddSystem(systems.NewMotionSystem(log))
	w.AddSystem(systems.NewCollisionSystem())

	if _, err := entities.Spawn(w, stage, cfg.Game.WallThickness); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	log.Info("stage ready",
		zap.String("name", stage.Name),
		zap.Int("entities", w.EntityCount()),
	)

	gl := core.NewGameLoop(w, log)
	gl.Menu = ui.NewMenu(stage.Width, stage.Height, core.MenuLabels, gl.OnMenu)
	gl.HUD = ui.NewHUD(w, stage.Width, stage.Height, cfg.Game.WallThickness, ebiten.ActualFPS)

	sfx := audio.NewAudioManager(cfg.Audio.Enabled, cfg.Audio.Volume, log)
	if err := sfx.Initialize(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	defer sfx.Close()
	sfx.Subscribe(w.Events)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TargetTPS)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	game := &Game{
		loop:   gl,
		input:  input.NewInputState(bindings),
		canvas: render.NewCanvas(),
		width:  stage.Width,
		height: stage.Height,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited with error", zap.Error(err))
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("game closed",
		zap.Int("score", w.Score.Score),
		zap.Int("hits", w.Score.Hits),
		zap.Uint64("frames", gl.FrameCount),
	)
	return nil
}

func loadStage(path string) (*maplib.Stage, error) {
	if path == "" {
		return maplib.DefaultStage()
	}
	return maplib.LoadStage(path)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
