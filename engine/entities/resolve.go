package entities

import "github.com/1siamBot/pang/engine/core"

type side uint8

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
)

// entrySide decides which face of block a mover crossed between prev and
// cur. Without a clear crossing it falls back to the axis of least
// penetration.
func entrySide(prev, cur, block core.Rect) side {
	switch {
	case prev.Bottom() <= block.Y:
		return sideTop
	case prev.Y >= block.Bottom():
		return sideBottom
	case prev.Right() <= block.X:
		return sideLeft
	case prev.X >= block.Right():
		return sideRight
	}
	dx, dy := cur.Penetration(block)
	cx, cy := cur.Center()
	bx, by := block.Center()
	if dy <= dx {
		if cy < by {
			return sideTop
		}
		return sideBottom
	}
	if cx < bx {
		return sideLeft
	}
	return sideRight
}
