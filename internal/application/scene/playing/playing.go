// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/guytribute/internal/application/replay"
	"github.com/younwookim/guytribute/internal/application/scene"
	"github.com/younwookim/guytribute/internal/application/session"
	"github.com/younwookim/guytribute/internal/application/state"
	"github.com/younwookim/guytribute/internal/application/system"
	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/assets"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorHealthBG = colornames.Red
	colorHealthFG = colornames.Green
	colorManaBG   = color.RGBA{0, 0, 100, 255}
	colorManaFG   = color.RGBA{0, 0, 255, 255}
	colorBossBG   = color.RGBA{60, 60, 60, 255}
	colorBossFG   = colornames.Purple
	colorOverlay  = color.RGBA{0, 0, 0, 160}
)

const (
	barX, barW, barH = 20, 200, 20
	healthBarY       = 20
	manaBarY         = 50
	bossBarW         = 300
	bannerTicks      = 90
	debugCharW       = 6
)

// Options configures the optional parts of the scene.
type Options struct {
	// RecordPath enables input recording when not empty.
	RecordPath string
	// Watcher and Loader enable hot reload of level files.
	Watcher *config.Watcher
	Loader  *config.Loader
}

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	input    *system.InputSystem
	assets   *assets.Provider
	entities *config.EntitiesConfig
	screenW  int
	screenH  int

	health  *easedValue
	mana    *easedValue
	boss    *easedValue
	caption fade
	level   int

	captionText string
	captionImg  *ebiten.Image

	banner      string
	bannerTimer int

	recorder       *replay.Recorder
	recordFilename string

	watcher *config.Watcher
	loader  *config.Loader
}

// New creates a new Playing scene driving sess.
func New(sess *session.Session, provider *assets.Provider, opts Options) *Playing {
	cfg := sess.Config()
	p := &Playing{
		session:  sess,
		input:    system.NewInputSystem(cfg.Physics, cfg.Entities),
		assets:   provider,
		entities: cfg.Entities,
		screenW:  cfg.Physics.Display.ScreenWidth,
		screenH:  cfg.Physics.Display.ScreenHeight,
		health:   newEasedValue(1),
		mana:     newEasedValue(1),
		boss:     newEasedValue(0),
		level:    -1,
		watcher:  opts.Watcher,
		loader:   opts.Loader,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(sess.Seed(), sess.Difficulty())
		p.recordFilename = opts.RecordPath
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, sess.Seed())
	}

	p.syncHUD(true)
	return p
}

// Update reads the keyboard and advances the session (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.pollWatcher()

	return p.Step(p.input.ReadIntents(), dt)
}

// Step advances the session by one tick with in and updates the HUD.
// It ends the game with ebiten.Termination once every level is complete.
func (p *Playing) Step(in system.Intents, dt float64) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	st, err := p.session.Step(in)
	if err != nil {
		return nil, err
	}

	switch st {
	case state.StateGameOver:
		p.showBanner("Game Over! Restarting from the beginning...")
	case state.StateLevelTransition:
		p.showBanner(fmt.Sprintf("Level %d", p.session.LevelIndex()+1))
	case state.StateComplete:
		log.Printf("You've completed all levels! Congratulations!")
		return nil, ebiten.Termination
	}

	if p.bannerTimer > 0 {
		p.bannerTimer--
	}
	p.syncHUD(false)
	p.updateHUD(float32(dt))
	return nil, nil
}

func (p *Playing) showBanner(text string) {
	p.banner = text
	p.bannerTimer = bannerTicks
}

// syncHUD points the eased bars at the session's values. A level change
// snaps the bars and restarts the caption fade.
func (p *Playing) syncHUD(snap bool) {
	hud := p.session.HUD()
	if hud.Level != p.level {
		p.level = hud.Level
		p.caption.Restart()
		snap = true
	}
	if snap {
		p.health.Snap(float32(hud.Health))
		p.mana.Snap(float32(hud.Mana))
		p.boss.Snap(float32(hud.BossHealth))
		return
	}
	p.health.Set(float32(hud.Health))
	p.mana.Set(float32(hud.Mana))
	p.boss.Set(float32(hud.BossHealth))
}

func (p *Playing) updateHUD(dt float32) {
	p.health.Update(dt)
	p.mana.Update(dt)
	p.boss.Update(dt)
	p.caption.Update(dt)
}

// pollWatcher applies pending level file changes without blocking.
func (p *Playing) pollWatcher() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case file, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			p.reload(file)
		case err, ok := <-p.watcher.Errors:
			if ok {
				log.Printf("[watch] %v", err)
			}
		default:
			return
		}
	}
}

// reload re-reads a changed level file and hands it to the session.
func (p *Playing) reload(file string) {
	if p.loader == nil {
		return
	}
	i, ok := p.session.IndexOf(file)
	if !ok {
		return
	}

	lc, err := p.loader.LoadLevel(path.Join(config.LevelsDir, filepath.Base(file)))
	if err != nil {
		log.Printf("[watch] Keeping previous level %d: %v", i+1, err)
		return
	}
	if err := p.session.Reload(i, lc); err != nil {
		log.Printf("[watch] Keeping previous level %d: %v", i+1, err)
		return
	}
	p.syncHUD(true)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the level, the player, projectiles and the HUD (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	w := p.session.World()
	lvl := w.Level
	camX, camY := p.session.Camera()

	screen.Fill(assets.ColorByName(lvl.BackgroundColor, colornames.Black))
	if lvl.Background != "" {
		bg := p.assets.Image(lvl.Background, int(w.Bounds.W), int(w.Bounds.H), assets.CategoryBackground)
		p.drawAt(screen, bg, -camX, -camY, false)
	}

	p.drawPlatforms(screen, lvl, camX, camY)
	p.drawObstacles(screen, lvl, camX, camY)
	p.drawPickups(screen, lvl, camX, camY)
	p.drawRect(screen, lvl.GoalImage, lvl.Goal, assets.CategoryGoal, camX, camY, false)
	p.drawPlayer(screen, w.Player, camX, camY)
	p.drawProjectiles(screen, w, camX, camY)
	p.drawUI(screen)
}

func (p *Playing) drawAt(screen, img *ebiten.Image, x, y float64, flip bool) {
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (p *Playing) drawRect(screen *ebiten.Image, image string, r entity.Rect, cat assets.Category, camX, camY float64, flip bool) {
	img := p.assets.Image(image, int(r.W), int(r.H), cat)
	p.drawAt(screen, img, r.X-camX, r.Y-camY, flip)
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, lvl *entity.Level, camX, camY float64) {
	for _, pl := range lvl.Platforms {
		switch pl := pl.(type) {
		case *entity.StaticPlatform:
			p.drawRect(screen, pl.Image, pl.Rect, assets.CategoryPlatform, camX, camY, false)
		case *entity.MovingPlatform:
			p.drawRect(screen, pl.Image, pl.Rect, assets.CategoryPlatform, camX, camY, false)
		case *entity.TiledPlatform:
			p.drawTiles(screen, pl, camX, camY)
		}
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, pl *entity.TiledPlatform, camX, camY float64) {
	for row, tiles := range pl.Tiles {
		for col, v := range tiles {
			cat := assets.CategoryPlatform
			if v == entity.TileTrap {
				cat = assets.CategoryObstacle
			}
			r := entity.Rect{
				X: pl.X + float64(col)*pl.TileW,
				Y: pl.Y + float64(row)*pl.TileH,
				W: pl.TileW,
				H: pl.TileH,
			}
			p.drawRect(screen, pl.TileImages[v], r, cat, camX, camY, false)
		}
	}
}

func (p *Playing) drawObstacles(screen *ebiten.Image, lvl *entity.Level, camX, camY float64) {
	for _, o := range lvl.Obstacles {
		switch o := o.(type) {
		case *entity.Boss:
			p.drawRect(screen, o.Image, o.Rect, assets.CategoryBoss, camX, camY, o.Vel.X < 0)
		case *entity.SmallBoss:
			p.drawRect(screen, o.Image, o.Rect, assets.CategoryBoss, camX, camY, o.Mirrored())
		case *entity.Patroller:
			p.drawRect(screen, o.Image, o.Rect, assets.CategoryObstacle, camX, camY, false)
		}
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, lvl *entity.Level, camX, camY float64) {
	for _, pk := range lvl.Pickups {
		cat := assets.CategoryHealth
		if pk.Kind == entity.PickupMana {
			cat = assets.CategoryMana
		}
		p.drawRect(screen, pk.Image, pk.Rect, cat, camX, camY, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl *entity.Player, camX, camY float64) {
	s := p.entities.Player.Sprite
	frames := p.assets.Frames(s.Sheet, s.Columns, s.Rows, s.Row, int(pl.W), int(pl.H), assets.CategoryPlayer)
	frame := frames[pl.Frame%len(frames)]
	p.drawAt(screen, frame, pl.X-camX, pl.Y-camY, pl.Facing < 0)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, w *system.World, camX, camY float64) {
	for _, s := range w.PlayerShots {
		p.drawRect(screen, p.entities.Spell.Image, s.Rect, assets.CategorySpell, camX, camY, s.VX < 0)
	}
	for _, b := range w.BossShots {
		p.drawRect(screen, p.entities.Bolt.Image, b.Rect, assets.CategoryBolt, camX, camY, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	hud := p.session.HUD()

	ebitenutil.DrawRect(screen, barX, healthBarY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, healthBarY, barW*float64(p.health.Value()), barH, colorHealthFG)

	ebitenutil.DrawRect(screen, barX, manaBarY, barW, barH, colorManaBG)
	ebitenutil.DrawRect(screen, barX, manaBarY, barW*float64(p.mana.Value()), barH, colorManaFG)

	manaText := fmt.Sprintf("Mana: %d", hud.ManaPoints)
	ebitenutil.DebugPrintAt(screen, manaText, p.screenW-len(manaText)*debugCharW-20, manaBarY)

	levelText := fmt.Sprintf("Level %d/%d", hud.Level, hud.Levels)
	ebitenutil.DebugPrintAt(screen, levelText, p.screenW-len(levelText)*debugCharW-20, healthBarY)

	if hud.HasBoss {
		x := float64(p.screenW-bossBarW) / 2
		y := float64(p.screenH - 30)
		ebitenutil.DrawRect(screen, x, y, bossBarW, 12, colorBossBG)
		ebitenutil.DrawRect(screen, x, y, bossBarW*float64(p.boss.Value()), 12, colorBossFG)
	}

	if hud.Caption != "" {
		p.drawCaption(screen, hud.Caption)
	}

	if p.bannerTimer > 0 {
		ebitenutil.DrawRect(screen, 0, float64(p.screenH/2-20), float64(p.screenW), 40, colorOverlay)
		ebitenutil.DebugPrintAt(screen, p.banner, p.screenW/2-len(p.banner)*debugCharW/2, p.screenH/2-8)
	}
}

// drawCaption draws the level caption centred at the top, faded in by the caption tween.
func (p *Playing) drawCaption(screen *ebiten.Image, caption string) {
	if p.captionImg == nil || caption != p.captionText {
		if p.captionImg != nil {
			p.captionImg.Deallocate()
		}
		p.captionImg = ebiten.NewImage(len(caption)*debugCharW+2, 16)
		ebitenutil.DebugPrint(p.captionImg, caption)
		p.captionText = caption
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.screenW-p.captionImg.Bounds().Dx())/2, 10)
	op.ColorScale.ScaleAlpha(p.caption.alpha)
	screen.DrawImage(p.captionImg, op)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.showBanner(fmt.Sprintf("Level %d", p.session.LevelIndex()+1))
}

// OnExit saves the recording and stops watching level files.
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			log.Printf("[watch] close: %v", err)
		}
		p.watcher = nil
	}
}

// Session returns the session driven by the scene.
func (p *Playing) Session() *session.Session {
	return p.session
}
