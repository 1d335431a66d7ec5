package layout

import "image"

// RowSlots spreads n square icon slots left to right across box, vertically centred.
// n must be positive.
func RowSlots(box BBox, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	w, h := box.Width(), box.Height()

	size := min(w, h) / max(n, 2)
	y := box.Y1 + h/2 - size/2
	step := (w - size) / n

	slots := make([]image.Rectangle, 0, n)
	x := box.X1 + w/(n+1) - size/2
	for i := 0; i < n; i++ {
		slots = append(slots, image.Rect(x, y, x+size, y+size))
		x += step
	}
	return slots
}

// ColumnSlots spreads n square icon slots top to bottom down box, horizontally centred.
// n must be positive.
func ColumnSlots(box BBox, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	w, h := box.Width(), box.Height()

	size := min(w, h) / (n + 1)
	x := box.X1 + w/2 - size/2
	step := (h - size) / n

	slots := make([]image.Rectangle, 0, n)
	y := box.Y1 + h/(n+1) - size/2
	for i := 0; i < n; i++ {
		slots = append(slots, image.Rect(x, y, x+size, y+size))
		y += step
	}
	return slots
}
