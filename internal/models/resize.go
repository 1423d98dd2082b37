package models

import "image"

// ResizeRequest holds the command line flags as the user passed them.
// Width and Height are nil when the flag was not supplied.
type ResizeRequest struct {
	Input     string
	Output    string
	Width     *int
	Height    *int
	OverWrite int
	Show      int
}

// ResolvedRequest is a ResizeRequest with every default filled in and the
// source image decoded. Width and Height are always positive.
type ResolvedRequest struct {
	InputPath  string
	OutputPath string
	Width      int
	Height     int
	Overwrite  bool
	Show       bool
	Source     image.Image
}

const (
	FlagInput     = "input"
	FlagOutput    = "output"
	FlagWidth     = "width"
	FlagHeight    = "height"
	FlagOverWrite = "over_write"
	FlagShow      = "show"
)
