// Package menu provides the about screen and the difficulty selection.
package menu

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/guytribute/internal/application/scene"
)

// StartFunc builds the gameplay scene for the chosen difficulty.
type StartFunc func(difficulty string) (scene.Scene, error)

type page int

const (
	pageAbout page = iota
	pageDifficulty
)

var aboutLines = []string{
	"Welcome to I Wanna Be The Guy Tribute!",
	"",
	"How to Play:",
	"  - Use LEFT/RIGHT arrow keys to move.",
	"  - Press SPACE to jump.",
	"  - Press F to cast a spell (costs mana).",
	"  - Collect health and mana pickups.",
	"  - Avoid obstacles and reach the goal to progress.",
	"",
	"Press any key to continue...",
}

var difficultyKeys = map[ebiten.Key]string{
	ebiten.Key1:       "Easy",
	ebiten.KeyNumpad1: "Easy",
	ebiten.Key2:       "Medium",
	ebiten.KeyNumpad2: "Medium",
	ebiten.Key3:       "Hard",
	ebiten.KeyNumpad3: "Hard",
}

// DifficultyForKey maps the menu keys 1, 2 and 3 to a difficulty name.
func DifficultyForKey(k ebiten.Key) (string, bool) {
	name, ok := difficultyKeys[k]
	return name, ok
}

// Menu shows the instructions, then waits for a difficulty.
type Menu struct {
	start   StartFunc
	page    page
	screenW int
	screenH int
	keys    []ebiten.Key
}

// New creates the menu. start is called once a difficulty is picked.
func New(start StartFunc, screenW, screenH int) *Menu {
	return &Menu{start: start, screenW: screenW, screenH: screenH}
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	return m.handleKeys(m.keys)
}

func (m *Menu) handleKeys(keys []ebiten.Key) (scene.Scene, error) {
	for _, k := range keys {
		if k == ebiten.KeyEscape {
			return nil, ebiten.Termination
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}

	switch m.page {
	case pageAbout:
		m.page = pageDifficulty
	case pageDifficulty:
		for _, k := range keys {
			name, ok := DifficultyForKey(k)
			if !ok {
				continue
			}
			log.Printf("Difficulty selected: %s", name)
			next, err := m.start(name)
			if err != nil {
				return nil, fmt.Errorf("failed to start game: %w", err)
			}
			return next, nil
		}
	}
	return nil, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	switch m.page {
	case pageAbout:
		ebitenutil.DebugPrintAt(screen, "How to Play", m.screenW/2-33, 50)
		for i, line := range aboutLines {
			ebitenutil.DebugPrintAt(screen, line, 50, 150+i*20)
		}
	case pageDifficulty:
		lines := []string{"Select Difficulty", "1. Easy", "2. Medium", "3. Hard"}
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, m.screenW/2-len(line)*3, 100+i*100)
		}
	}
}

func (m *Menu) OnEnter() {
	m.page = pageAbout
}

func (m *Menu) OnExit() {}
