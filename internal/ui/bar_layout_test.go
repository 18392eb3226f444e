package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestBarLayout_CentresFixedHeight(t *testing.T) {
	test.NewApp()
	rect := canvas.NewRectangle(nil)
	l := &barLayout{height: 20}

	l.Layout([]fyne.CanvasObject{rect}, fyne.NewSize(300, 60))

	assert.Equal(t, fyne.NewSize(300, 20), rect.Size())
	assert.Equal(t, fyne.NewPos(0, 20), rect.Position())
	assert.Equal(t, fyne.NewSize(rect.MinSize().Width, 20), l.MinSize([]fyne.CanvasObject{rect}))
}

func TestBarLayout_NoObjects(t *testing.T) {
	l := &barLayout{height: 12}

	assert.NotPanics(t, func() { l.Layout(nil, fyne.NewSize(10, 10)) })
	assert.Equal(t, fyne.NewSize(0, 12), l.MinSize(nil))
}
