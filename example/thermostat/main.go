// SPDX-License-Identifier: Unlicense OR MIT

// Command thermostat renders a small thermostat screen — a clock in
// a dashed border, a status block in a rounded border and a
// minus/scale/plus control row — into a 64×128 off-screen surface
// and writes it to thermostat.png.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
	"github.com/koa/simple-layout/widget"
)

func main() {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    9,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}

	fg := color.NRGBA{A: 0xff}
	var minusPos, plusPos layout.Placement
	button := func(txt string, pos *layout.Placement) layout.Placeable {
		lbl := widget.Label{Text: txt, Face: face, Color: fg}
		return layout.RecordPlacement(pos,
			widget.Bordered(
				layout.Padding(lbl, -1, 0, -1, 0),
				widget.NewRoundedLine(fg),
			),
		)
	}

	scene := layout.VerticalLayout(
		layout.Expand(widget.Bordered(
			layout.Center.Place(widget.Label{Text: "12:30", Face: face, Color: fg}),
			widget.NewDashedLine(2, 2, fg),
		)), 1).
		Append(layout.Expand(widget.Bordered(
			layout.Center.Place(widget.Label{Text: "21.5°\ntarget", Face: face, Color: fg}),
			widget.NewRoundedLine(fg),
		)), 2).
		Append(layout.HorizontalLayout(button("-", &minusPos), 0).
			Append(layout.S.Place(widget.Scale{Value: 0.7, Color: fg}), 1).
			Append(button("+", &plusPos), 0),
			0)

	dst := pix.NewImage(image.Rect(0, 0, 64, 128))
	dst.Clear(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if _, err := scene.Draw(dst, dst.BoundingBox()); err != nil {
		log.Fatal(err)
	}
	log.Printf("minus button at %v, plus button at %v", minusPos.Rect, plusPos.Rect)

	f, err := os.Create("thermostat.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, dst.Image()); err != nil {
		log.Fatal(err)
	}
}
