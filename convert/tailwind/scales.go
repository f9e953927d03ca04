package tailwind

import (
	"strconv"
)

// remPx is the root font size used to derive pixel equivalents of rem steps.
const remPx = 16

// spacingSteps lists spacing scale as rem value -> scale step.
var spacingSteps = []struct {
	rem  string
	step string
}{
	{"0.125rem", "0.5"}, {"0.25rem", "1"}, {"0.375rem", "1.5"}, {"0.5rem", "2"},
	{"0.625rem", "2.5"}, {"0.75rem", "3"}, {"0.875rem", "3.5"}, {"1rem", "4"},
	{"1.25rem", "5"}, {"1.5rem", "6"}, {"1.75rem", "7"}, {"2rem", "8"},
	{"2.25rem", "9"}, {"2.5rem", "10"}, {"2.75rem", "11"}, {"3rem", "12"},
	{"3.5rem", "14"}, {"4rem", "16"}, {"5rem", "20"}, {"6rem", "24"},
	{"7rem", "28"}, {"8rem", "32"}, {"9rem", "36"}, {"10rem", "40"},
	{"11rem", "44"}, {"12rem", "48"}, {"13rem", "52"}, {"14rem", "56"},
	{"15rem", "60"}, {"16rem", "64"}, {"18rem", "72"}, {"20rem", "80"},
	{"24rem", "96"},
}

// spacingScale maps literal lengths (rem and px) to spacing scale steps.
var spacingScale = buildSpacingScale()

func buildSpacingScale() map[string]string {
	scale := map[string]string{
		"0":    "0",
		"0px":  "0",
		"0rem": "0",
		"1px":  "px",
		"auto": "auto",
	}
	for _, s := range spacingSteps {
		scale[s.rem] = s.step
		scale[remToPx(s.rem)] = s.step
	}
	return scale
}

// remToPx converts "1.5rem" to "24px".
func remToPx(rem string) string {
	v, err := strconv.ParseFloat(rem[:len(rem)-len("rem")], 64)
	if err != nil {
		// static table, should never happen
		panic("bad rem value in scale: " + rem)
	}
	return strconv.FormatFloat(v*remPx, 'f', -1, 64) + "px"
}

// withPx returns copy of the rem keyed table with added pixel equivalents.
func withPx(table map[string]string) map[string]string {
	out := make(map[string]string, len(table)*2)
	for k, v := range table {
		out[k] = v
		if len(k) > 3 && k[len(k)-3:] == "rem" {
			out[remToPx(k)] = v
		}
	}
	return out
}

// radiusScale maps border radius to "rounded" suffix, empty suffix is plain
// "rounded".
var radiusScale = withPx(map[string]string{
	"0":        "none",
	"0px":      "none",
	"0.125rem": "sm",
	"0.25rem":  "",
	"0.375rem": "md",
	"0.5rem":   "lg",
	"0.75rem":  "xl",
	"1rem":     "2xl",
	"1.5rem":   "3xl",
	"9999px":   "full",
})

// fontSizeScale maps font sizes to "text" suffixes.
var fontSizeScale = withPx(map[string]string{
	"0.75rem":  "xs",
	"0.875rem": "sm",
	"1rem":     "base",
	"1.125rem": "lg",
	"1.25rem":  "xl",
	"1.5rem":   "2xl",
	"1.875rem": "3xl",
	"2.25rem":  "4xl",
	"3rem":     "5xl",
	"3.75rem":  "6xl",
	"4.5rem":   "7xl",
	"6rem":     "8xl",
	"8rem":     "9xl",
})

// sizeKeywords are shared by width/height like properties before falling
// back to spacing scale.
var sizeKeywords = map[string]string{
	"auto":        "auto",
	"100%":        "full",
	"50%":         "1/2",
	"33.333333%":  "1/3",
	"66.666667%":  "2/3",
	"25%":         "1/4",
	"75%":         "3/4",
	"20%":         "1/5",
	"40%":         "2/5",
	"60%":         "3/5",
	"80%":         "4/5",
	"16.666667%":  "1/6",
	"83.333333%":  "5/6",
	"min-content": "min",
	"max-content": "max",
	"fit-content": "fit",
}

var fontWeights = map[string]string{
	"100":    "thin",
	"200":    "extralight",
	"300":    "light",
	"400":    "normal",
	"500":    "medium",
	"600":    "semibold",
	"700":    "bold",
	"800":    "extrabold",
	"900":    "black",
	"normal": "normal",
	"bold":   "bold",
}

// borderWidths maps border width to class suffix (including dash).
var borderWidths = map[string]string{
	"0":    "-0",
	"0px":  "-0",
	"1px":  "",
	"thin": "",
	"2px":  "-2",
	"4px":  "-4",
	"8px":  "-8",
}

// percentage steps of various scales
var (
	opacitySteps    = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100}
	brightnessSteps = []int{0, 50, 75, 90, 95, 100, 105, 110, 125, 150, 200}
	contrastSteps   = []int{0, 50, 75, 100, 125, 150, 200}
	saturateSteps   = []int{0, 50, 100, 150, 200}
	scaleSteps      = []int{0, 50, 75, 90, 95, 100, 105, 110, 125, 150}
)

// angle steps in degrees
var (
	rotateSteps    = []int{0, 1, 2, 3, 6, 12, 45, 90, 180}
	skewSteps      = []int{0, 1, 2, 3, 6, 12}
	hueRotateSteps = []int{0, 15, 30, 60, 90, 180}
)

// time steps in milliseconds
var durationSteps = []int{0, 75, 100, 150, 200, 300, 500, 700, 1000}

var blurScale = map[string]string{
	"0":    "none",
	"0px":  "none",
	"4px":  "sm",
	"8px":  "",
	"12px": "md",
	"16px": "lg",
	"24px": "xl",
	"40px": "2xl",
	"64px": "3xl",
}

// offsets used by outline-offset, text-underline-offset and decoration thickness
var offsetScale = map[string]string{
	"0":   "0",
	"0px": "0",
	"1px": "1",
	"2px": "2",
	"4px": "4",
	"8px": "8",
}

// normalized box-shadow values of the default theme
var shadowPresets = map[string]string{
	"0 1px 2px 0 rgb(0 0 0 / 0.05)":                                          "shadow-sm",
	"0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)":          "shadow",
	"0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)":       "shadow-md",
	"0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)":     "shadow-lg",
	"0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)":    "shadow-xl",
	"0 25px 50px -12px rgb(0 0 0 / 0.25)":                                    "shadow-2xl",
	"inset 0 2px 4px 0 rgb(0 0 0 / 0.05)":                                    "shadow-inner",
	"none":                                                                   "shadow-none",
	"0 0 #0000":                                                              "shadow-none",
}
