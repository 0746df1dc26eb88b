package cmdlist

import (
	"strconv"

	"github.com/dged-editor/dged/internal/textstore"
)

// FgFragment encodes c as the ANSI SGR fragment for a foreground color:
// 30+n for palette indices 0-7, 90+n for 8-15, 38;5;n otherwise, and
// 38;2;r;g;b for 24-bit RGB. An unset spec yields "" (push nothing).
func FgFragment(c textstore.ColorSpec) string {
	return colorFragment(c, 30, 90, 38)
}

// BgFragment is FgFragment for background colors: 40+n, 100+n, 48;5;n, or
// 48;2;r;g;b.
func BgFragment(c textstore.ColorSpec) string {
	return colorFragment(c, 40, 100, 48)
}

func colorFragment(c textstore.ColorSpec, lowBase, highBase, extBase int) string {
	if !c.Set {
		return ""
	}
	if c.Mode == textstore.ColorModeRGB {
		return strconv.Itoa(extBase) + ";2;" +
			strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	}
	n := int(c.Index)
	switch {
	case n < 8:
		return strconv.Itoa(lowBase + n)
	case n < 16:
		return strconv.Itoa(highBase + (n - 8))
	default:
		return strconv.Itoa(extBase) + ";5;" + strconv.Itoa(n)
	}
}
