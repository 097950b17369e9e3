package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/guytribute/internal/application/game"
	"github.com/younwookim/guytribute/internal/application/scene"
	"github.com/younwookim/guytribute/internal/application/scene/menu"
	"github.com/younwookim/guytribute/internal/application/scene/playing"
	"github.com/younwookim/guytribute/internal/application/session"
	"github.com/younwookim/guytribute/internal/infrastructure/assets"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir  string
	assetsDir  string
	difficulty string
	seed       int64
	watch      bool
	record     string
	replay     string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fsFlags := flag.NewFlagSet("game", flag.ContinueOnError)
	fsFlags.StringVar(&opts.configDir, "config", "", "Load configs from this directory instead of the built-in ones")
	fsFlags.StringVar(&opts.assetsDir, "assets", ".", "Directory holding the images/ tree")
	fsFlags.StringVar(&opts.difficulty, "difficulty", "", "Skip the menu: easy, medium or hard")
	fsFlags.Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fsFlags.BoolVar(&opts.watch, "watch", false, "Reload level files from -config when they change")
	fsFlags.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fsFlags.StringVar(&opts.replay, "replay", "", "Run a recorded replay headless and print the result")
	if err := fsFlags.Parse(args); err != nil {
		return opts, err
	}

	if opts.watch && opts.configDir == "" {
		return opts, errors.New("-watch needs -config")
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts, nil
}

// newLoader returns a loader over -config, or over the embedded configs.
func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newStarter returns the function that turns a difficulty name into the gameplay scene.
func newStarter(cfg *config.GameConfig, loader *config.Loader, opts options) menu.StartFunc {
	provider := assets.NewProvider(os.DirFS(opts.assetsDir))

	return func(difficulty string) (scene.Scene, error) {
		mult, ok := cfg.Physics.Difficulty.Multiplier(difficulty)
		if !ok {
			return nil, fmt.Errorf("%w: unknown difficulty %q", config.ErrInvalidConfig, difficulty)
		}

		sess, err := session.New(cfg, mult, opts.seed)
		if err != nil {
			return nil, err
		}

		sceneOpts := playing.Options{RecordPath: opts.record}
		if opts.watch {
			w, err := config.NewWatcher(filepath.Join(opts.configDir, config.LevelsDir))
			if err != nil {
				return nil, fmt.Errorf("failed to watch levels: %w", err)
			}
			sceneOpts.Watcher = w
			sceneOpts.Loader = loader
			log.Printf("[watch] Watching %s", filepath.Join(opts.configDir, config.LevelsDir))
		}

		return playing.New(sess, provider, sceneOpts), nil
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid flags: %v", err)
	}

	loader, err := newLoader(opts.configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if opts.replay != "" {
		result, err := runReplay(cfg, opts.replay)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay finished: %s", result)
		return
	}

	start := newStarter(cfg, loader, opts)

	var first scene.Scene
	if opts.difficulty != "" {
		first, err = start(opts.difficulty)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
	} else {
		first = menu.New(start, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	}

	display := cfg.Physics.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
