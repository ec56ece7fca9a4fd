// Package main provides the entry point of Barcode Maker.
// It renders barcodes and QR codes from text, either as a web service built on
// Fiber (generator page, previews, downloads and a cacheable image endpoint)
// or as a command line batch renderer. Per-browser settings are kept with gorm
// in sqlite, MySQL or PostgreSQL.
package main
