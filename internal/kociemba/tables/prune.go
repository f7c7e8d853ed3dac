package tables

import "github.com/ehrlich-b/twisty/internal/cube"

const unvisited = 0xFF

var dominoMoveCount = len(cube.DominoMoves())
