package matrix

// Legend describes the glyph printed for each brightness band.
const Legend = "Legend: ' '=OFF, '.'=dim, 'o'=med, 'O'=bright, '@'=brightest"

// Glyph quantizes a brightness sample to one of five printable characters.
// Zero is kept apart from the dim band so that an unlit LED always prints
// blank.
func Glyph(brightness uint8) byte {
	switch {
	case brightness == 0:
		return ' '
	case brightness <= 63:
		return '.'
	case brightness <= 127:
		return 'o'
	case brightness <= 191:
		return 'O'
	default:
		return '@'
	}
}
