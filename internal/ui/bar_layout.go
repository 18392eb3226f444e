package ui

import "fyne.io/fyne/v2"

// barLayout stretches its first object to the full width at a fixed height,
// vertically centred in the available space.
type barLayout struct {
	height float32
}

func (b *barLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	height := fyne.Max(b.height, objects[0].MinSize().Height)
	objects[0].Resize(fyne.NewSize(size.Width, height))
	objects[0].Move(fyne.NewPos(0, (size.Height-height)/2))
}

func (b *barLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, b.height)
	}
	min := objects[0].MinSize()
	return fyne.NewSize(min.Width, fyne.Max(min.Height, b.height))
}
