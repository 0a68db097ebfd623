package renderer

import "strings"

const (
	borderH = '-'
	borderV = '|'
)

// A rendered frame of characters stored in row-major order.
type Frame struct {
	Width  int
	Height int
	Cells  []rune
}

// Allocate a blank frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Cells:  make([]rune, width*height),
	}
}

// Get the character at the given row and column.
func (f *Frame) At(row, col int) rune {
	return f.Cells[row*f.Width+col]
}

// Get a row of the frame.
func (f *Frame) Row(row int) []rune {
	return f.Cells[row*f.Width : (row+1)*f.Width]
}

// Overwrite the outer rows with '-' and the outer columns with '|'.
func (f *Frame) DrawBorder() {
	if f.Width == 0 || f.Height == 0 {
		return
	}
	top, bottom := f.Row(0), f.Row(f.Height-1)
	for col := range top {
		top[col] = borderH
		bottom[col] = borderH
	}
	for row := 0; row < f.Height; row++ {
		line := f.Row(row)
		line[0] = borderV
		line[f.Width-1] = borderV
	}
}

// Render the frame as newline-separated rows.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height * 2)
	for row := 0; row < f.Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(f.Row(row)))
	}
	return sb.String()
}
