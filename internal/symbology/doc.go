// Package symbology holds the barcode format catalog shown to users: which
// symbologies exist, how they are grouped, their sample data and how they
// are classified (linear vs. two-dimensional, locked aspect ratio, which
// encoder library renders them).
package symbology
