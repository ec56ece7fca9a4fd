package render

import (
	"github.com/boombuler/barcode"
)

const (
	// DefaultModulePx is the module width used when no width is requested.
	DefaultModulePx = 2
	// DefaultHeight is the bar height used when no height is requested.
	DefaultHeight = 100
	// DefaultFontSize of the human readable text.
	DefaultFontSize = 15
	// TextMargin is the gap between symbol and text.
	TextMargin = 2
)

// Options are the user adjustable visual parameters.
type Options struct {
	Width    int  `json:"width"    validate:"gte=0,lte=4000"`
	Height   int  `json:"height"   validate:"gte=0,lte=4000"`
	Margin   int  `json:"margin"   validate:"gte=0,lte=500"`
	ShowText bool `json:"showText"`
	FontSize int  `json:"fontSize" validate:"gte=0,lte=200"`
}

// DefaultOptions match the single barcode retrieval endpoint.
func DefaultOptions() Options {
	return Options{
		Height:   DefaultHeight,
		Margin:   10, //nolint:mnd
		ShowText: true,
		FontSize: DefaultFontSize,
	}
}

// Layout is the pixel geometry of a rendered symbol.
type Layout struct {
	Cols, Rows       int // modules of the symbol
	ModulePx         int
	TwoD             bool
	SymbolX, SymbolY int
	SymbolW, SymbolH int
	CanvasW, CanvasH int
	TextX, TextY     int // centre and baseline of the text
	FontSize         int
	ShowText         bool
}

// NewLayout computes the geometry for bc. Square symbols (lockHeight) always
// get a square content box whose side follows the width.
func NewLayout(bc barcode.Barcode, opts Options, lockHeight bool) Layout {
	b := bc.Bounds()

	l := Layout{
		Cols:     b.Dx(),
		Rows:     b.Dy(),
		TwoD:     bc.Metadata().Dimensions == 2, //nolint:mnd
		FontSize: opts.FontSize,
		ShowText: opts.ShowText,
	}

	if l.FontSize <= 0 {
		l.FontSize = DefaultFontSize
	}

	l.ModulePx = DefaultModulePx
	if opts.Width > 0 {
		l.ModulePx = max(1, opts.Width/max(1, l.Cols))
	}

	l.SymbolW = l.Cols * l.ModulePx
	contentW := max(opts.Width, l.SymbolW)

	var contentH int

	switch {
	case l.TwoD:
		l.SymbolH = l.Rows * l.ModulePx
		contentH = max(opts.Height, l.SymbolH)

		if lockHeight {
			contentH = max(contentW, l.SymbolH)
		}
	default:
		l.SymbolH = opts.Height
		if l.SymbolH <= 0 {
			l.SymbolH = DefaultHeight
		}

		contentH = l.SymbolH
	}

	margin := max(opts.Margin, 0)

	l.SymbolX = margin + (contentW-l.SymbolW)/2
	l.SymbolY = margin + (contentH-l.SymbolH)/2
	l.CanvasW = contentW + 2*margin
	l.CanvasH = contentH + 2*margin

	if l.ShowText {
		l.CanvasH += l.FontSize + TextMargin
		l.TextX = l.CanvasW / 2
		l.TextY = margin + contentH + TextMargin + l.FontSize
	}

	return l
}
