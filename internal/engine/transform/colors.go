package transform

import (
	"regexp"
	"strings"
)

const (
	hexColor  = `#(?:[0-9a-fA-F]{3}){1,2}`
	funcColor = `(?:rgba?|hsla?)\(\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*(?:,\s*(?:\d*\.)?\d+\s*)?\)`
)

var (
	colorLiteral = regexp.MustCompile(`^(?:` + hexColor + `|` + funcColor + `)$`)

	// The legacy text rewrite only recognizes lower-case hex and three
	// integer arguments separated by ", ".
	quotedHexColor  = regexp.MustCompile(`"(#(?:[0-9a-f]{3}){1,2})"`)
	quotedFuncColor = regexp.MustCompile(`"((?:rgba?|hsla?)\(\d{1,3}, \d{1,3}, \d{1,3}\))"`)
)

// isColor reports whether s is, in its entirety, a hex or functional color.
func isColor(s string) bool {
	return colorLiteral.MatchString(s)
}

// unquoteColors strips the double quotes around every legacy color literal
// in s.
func unquoteColors(s string) string {
	s = quotedHexColor.ReplaceAllString(s, "$1")
	return quotedFuncColor.ReplaceAllString(s, "$1")
}

// namedColors are unquoted identifiers that Sass reads as colors.
var namedColors = func() map[string]struct{} {
	names := strings.Fields(`
		aliceblue antiquewhite aqua aquamarine azure beige bisque black
		blanchedalmond blue blueviolet brown burlywood cadetblue chartreuse
		chocolate coral cornflowerblue cornsilk crimson cyan darkblue darkcyan
		darkgoldenrod darkgray darkgreen darkgrey darkkhaki darkmagenta
		darkolivegreen darkorange darkorchid darkred darksalmon darkseagreen
		darkslateblue darkslategray darkslategrey darkturquoise darkviolet
		deeppink deepskyblue dimgray dimgrey dodgerblue firebrick floralwhite
		forestgreen fuchsia gainsboro ghostwhite gold goldenrod gray green
		greenyellow grey honeydew hotpink indianred indigo ivory khaki lavender
		lavenderblush lawngreen lemonchiffon lightblue lightcoral lightcyan
		lightgoldenrodyellow lightgray lightgreen lightgrey lightpink
		lightsalmon lightseagreen lightskyblue lightslategray lightslategrey
		lightsteelblue lightyellow lime limegreen linen magenta maroon
		mediumaquamarine mediumblue mediumorchid mediumpurple mediumseagreen
		mediumslateblue mediumspringgreen mediumturquoise mediumvioletred
		midnightblue mintcream mistyrose moccasin navajowhite navy oldlace olive
		olivedrab orange orangered orchid palegoldenrod palegreen paleturquoise
		palevioletred papayawhip peachpuff peru pink plum powderblue purple
		rebeccapurple red rosybrown royalblue saddlebrown salmon sandybrown
		seagreen seashell sienna silver skyblue slateblue slategray slategrey snow
		springgreen steelblue tan teal thistle tomato transparent turquoise
		violet wheat white whitesmoke yellow yellowgreen`)
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()
