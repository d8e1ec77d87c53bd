// Package patterns registers the built-in life patterns with the registry.
// Import it for side effects.
package patterns

import (
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

const blinker = `!Name: Blinker
OOO`

const toad = `!Name: Toad
.OOO
OOO.`

const beacon = `!Name: Beacon
OO..
OO..
..OO
..OO`

const lwss = `!Name: Lightweight spaceship
.O..O
O....
O...O
OOOO.`

const rPentomino = `!Name: R-pentomino
.OO
OO.
.O.`

const diehard = `!Name: Diehard
......O.
OO......
.O...OOO`

const acorn = `!Name: Acorn
.O.....
...O...
OO..OOO`

func init() {
	registry.Register("glider", life.GliderText)
	registry.Register("pulsar", life.PulsarText)
	registry.Register("blinker", blinker)
	registry.Register("toad", toad)
	registry.Register("beacon", beacon)
	registry.Register("lwss", lwss)
	registry.Register("r-pentomino", rPentomino)
	registry.Register("diehard", diehard)
	registry.Register("acorn", acorn)
}
