package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/gogpu/plinth"
)

// ParseColor parses a raw style value into a color.
//
// Accepted forms, after trimming surrounding whitespace:
//
//	#rrggbb             six hex digits, any case
//	rgb(r, g, b)        integer channels 0..255
//	rgba(r, g, b, a)    integer channels, alpha a float in [0, 1]
//
// Alpha is scaled by 255 and rounded to the nearest integer, so
// "rgba(10,20,30,0.5)" has alpha 128. Anything else returns a *ParseError.
func ParseColor(s string) (plinth.Color, error) {
	return parseColor(s, false)
}

// ParseColorNamed is like ParseColor but also accepts CSS color keywords
// such as "darkorange".
func ParseColorNamed(s string) (plinth.Color, error) {
	return parseColor(s, true)
}

func parseColor(raw string, named bool) (plinth.Color, error) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(raw, s)
	case strings.HasPrefix(lower, "rgba("):
		return parseFunc(raw, s[len("rgba("):], 4)
	case strings.HasPrefix(lower, "rgb("):
		return parseFunc(raw, s[len("rgb("):], 3)
	}

	if named {
		if c, ok := colornames.Map[lower]; ok {
			return plinth.RGBA(c.R, c.G, c.B, c.A), nil
		}
	}
	return plinth.Color{}, &ParseError{Input: raw, Reason: "unsupported syntax"}
}

func parseHex(raw, s string) (plinth.Color, error) {
	if len(s) != 7 {
		return plinth.Color{}, &ParseError{Input: raw, Reason: "want #rrggbb"}
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return plinth.Color{}, &ParseError{Input: raw, Reason: "non-hex digit"}
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return plinth.Color{}, &ParseError{Input: raw, Reason: err.Error()}
	}
	r, g, b := c.RGB255()
	return plinth.RGB(r, g, b), nil
}

// parseFunc parses the argument list of rgb( or rgba(; body still carries
// the closing parenthesis.
func parseFunc(raw, body string, want int) (plinth.Color, error) {
	body, ok := strings.CutSuffix(strings.TrimSpace(body), ")")
	if !ok {
		return plinth.Color{}, &ParseError{Input: raw, Reason: "missing closing parenthesis"}
	}
	args := strings.Split(body, ",")
	if len(args) != want {
		return plinth.Color{}, &ParseError{Input: raw, Reason: "wrong argument count"}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(strings.TrimSpace(args[i]), 10, 8)
		if err != nil {
			return plinth.Color{}, &ParseError{Input: raw, Reason: "channel must be an integer in 0..255"}
		}
		ch[i] = uint8(v)
	}

	alpha := uint8(255)
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || math.IsNaN(a) || a < 0 || a > 1 {
			return plinth.Color{}, &ParseError{Input: raw, Reason: "alpha must be a number in [0, 1]"}
		}
		alpha = uint8(math.Round(a * 255))
	}
	return plinth.RGBA(ch[0], ch[1], ch[2], alpha), nil
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
