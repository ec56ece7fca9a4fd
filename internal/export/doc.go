// Package export renders the values typed by a user into previews and
// downloadable files: a single image or a zip archive holding one image per
// input line.
package export
