package constants

// Glyph Rendering
const (
	// FontName is the FIGlet font compiled into the binary
	FontName = "colossal"
)
