package symbology

// Type is a single selectable barcode format.
type Type struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	InitData string `json:"initData"`
}

// Category groups related formats.
type Category struct {
	Name  string `json:"name"`
	Types []Type `json:"types"`
}

// Categories is the ordered format catalog.
var Categories = []Category{ //nolint:gochecknoglobals
	{
		Name: "Code 128",
		Types: []Type{
			{Name: "Code 128", Value: "Code128", InitData: "ABC-abc-1234"},
			{Name: "Code 128A", Value: "Code128A", InitData: "ABC123"},
			{Name: "Code 128B", Value: "Code128B", InitData: "Hello World!"},
			{Name: "Code 128C", Value: "Code128C", InitData: "123456"},
			{Name: "GS1-128", Value: "gs1-128", InitData: "(01)09521234543213(3103)000123"},
		},
	},
	{
		Name: "EAN / UPC",
		Types: []Type{
			{Name: "EAN-13", Value: "Ean13", InitData: "5901234123457"},
			{Name: "EAN-8", Value: "Ean8", InitData: "96385074"},
			{Name: "EAN-5", Value: "Ean5", InitData: "54495"},
			{Name: "EAN-2", Value: "Ean2", InitData: "53"},
			{Name: "UPC-A", Value: "Upc", InitData: "123456789012"},
			{Name: "UPC-E", Value: "UpcE", InitData: "01234565"},
		},
	},
	{
		Name: "2D Barcodes",
		Types: []Type{
			{Name: "QR Code", Value: "Qrcode", InitData: "https://barcode-maker.com"},
			{Name: "Data Matrix", Value: "Datamatrix", InitData: "This is Data Matrix!"},
			{Name: "PDF417", Value: "Pdf417", InitData: "This is PDF417"},
			{Name: "Aztec Code", Value: "Azteccode", InitData: "This is Aztec Code"},
		},
	},
	{
		Name: "Code 39",
		Types: []Type{
			{Name: "Code 39", Value: "Code39", InitData: "CODE 39"},
			{Name: "Code 39 Extended", Value: "Code39ext", InitData: "Code39 Ext!"},
		},
	},
	{
		Name: "ITF",
		Types: []Type{
			{Name: "ITF", Value: "Itf", InitData: "1234567890"},
			{Name: "ITF-14", Value: "Itf14", InitData: "15400141288763"},
		},
	},
	{
		Name: "MSI Plessey",
		Types: []Type{
			{Name: "MSI Plessey (Mod 10)", Value: "Msi10", InitData: "1234567"},
			{Name: "MSI Plessey (Mod 11)", Value: "Msi11", InitData: "1234567"},
			{Name: "MSI Plessey (Mod 1010)", Value: "Msi1010", InitData: "1234567"},
			{Name: "MSI Plessey (Mod 1110)", Value: "Msi1110", InitData: "1234567"},
		},
	},
	{
		Name: "Pharmacode",
		Types: []Type{
			{Name: "Pharmacode", Value: "Pharmacode", InitData: "1234"},
		},
	},
	{
		Name: "Codabar",
		Types: []Type{
			{Name: "Codabar", Value: "Codabar", InitData: "A1234B"},
		},
	},
	{
		Name: "GS1 DataBar",
		Types: []Type{
			{Name: "GS1 DataBar Omnidirectional", Value: "Databaromni", InitData: "(01)09521234543213"},
			{Name: "GS1 DataBar Limited", Value: "Databarlimited", InitData: "(01)09521234543213"},
			{Name: "GS1 DataBar Expanded", Value: "Databarexpanded", InitData: "(01)09521234543213(3103)000123"},
			{Name: "GS1 DataBar Stacked", Value: "Databarstacked", InitData: "(01)09521234543213"},
		},
	},
	{
		Name: "Publishing",
		Types: []Type{
			{Name: "ISBN", Value: "Isbn", InitData: "978-1-56581-231-4 90000"},
			{Name: "ISMN", Value: "Ismn", InitData: "979-0-2605-3211-3"},
			{Name: "ISSN", Value: "Issn", InitData: "0311-175X 00 17"},
		},
	},
}

// DefaultFormat is the format preselected when nothing else is known.
const DefaultFormat = "Code128"

// All returns every format of the catalog in display order.
func All() []Type {
	out := make([]Type, 0, 32) //nolint:mnd
	for _, c := range Categories {
		out = append(out, c.Types...)
	}

	return out
}
