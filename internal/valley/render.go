package valley

import (
	"bufio"
	"io"
)

// Render writes the field at state: walls, blizzards (a digit if several share
// a cell) and the expedition as 'E'.
func Render(w io.Writer, f *Field, state State) error {
	counts := make([]int, f.Width*f.Height)
	dirs := make([]Direction, f.Width*f.Height)
	for _, b := range state.Blizzards {
		idx := b.Y*f.Width + b.X
		counts[idx]++
		dirs[idx] = b.Direction
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := Position{X: x, Y: y}
			idx := y*f.Width + x
			switch {
			case counts[idx] == 1:
				bw.WriteByte(dirs[idx].Rune())
			case counts[idx] > 9:
				bw.WriteByte('*')
			case counts[idx] > 1:
				bw.WriteByte(byte('0' + counts[idx]))
			case p == state.Expedition:
				bw.WriteByte('E')
			case f.Passable(p):
				bw.WriteByte(open)
			default:
				bw.WriteByte(wall)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
