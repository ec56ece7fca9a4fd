package symbology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs2D(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"Qrcode", true},
		{"qrcode", true},
		{"QRCODE", true},
		{"Datamatrix", true},
		{"Azteccode", true},
		{"Pdf417", true},
		{"Databarstacked", true},
		{"Code128", false},
		{"Ean13", false},
		{"Databaromni", false},
		{"Itf14", false},
		{"", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, Is2D(tt.format))
		})
	}
}

func TestLockHeight(t *testing.T) {
	assert.True(t, LockHeight("qrcode"))
	assert.True(t, LockHeight("Datamatrix"))
	assert.True(t, LockHeight("AZTECCODE"))
	assert.False(t, LockHeight("Pdf417"), "pdf417 is 2D but not square")
	assert.False(t, LockHeight("Databarstacked"))
	assert.False(t, LockHeight("Code39"))
}

func TestFindCategory(t *testing.T) {
	tests := []struct {
		value string
		want  string
		found bool
	}{
		{"Code128C", "Code 128", true},
		{"GS1-128", "Code 128", true},
		{"upc", "EAN / UPC", true},
		{"Qrcode", "2D Barcodes", true},
		{"msi1110", "MSI Plessey", true},
		{"Isbn", "Publishing", true},
		{"Code93", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := FindCategory(tt.value)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupAndInitData(t *testing.T) {
	typ, ok := Lookup("ean13")
	require.True(t, ok)
	assert.Equal(t, "Ean13", typ.Value)
	assert.Equal(t, "5901234123457", typ.InitData)

	assert.Equal(t, "https://barcode-maker.com", InitData("Qrcode"))
	assert.Empty(t, InitData("nope"))

	canonical, ok := Canonical("qrcode")
	assert.True(t, ok)
	assert.Equal(t, "Qrcode", canonical)
}

func TestCatalogValuesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, typ := range All() {
		assert.False(t, seen[typ.Value], "duplicate value %s", typ.Value)
		seen[typ.Value] = true
		assert.NotEmpty(t, typ.InitData, typ.Value)
	}
}

func TestBackendFor(t *testing.T) {
	assert.Equal(t, BackendMatrix, BackendFor("Qrcode"))
	assert.Equal(t, BackendLinear, BackendFor("code128"))
	assert.Equal(t, BackendLinear, BackendFor("Datamatrix"))
	assert.Equal(t, BackendNone, BackendFor("Msi10"))
	assert.Equal(t, BackendNone, BackendFor("Ean5"))
	assert.True(t, Supported("Itf14"))
	assert.False(t, Supported("Pharmacode"))
	assert.Equal(t, "boombuler", BackendLinear.String())
}
