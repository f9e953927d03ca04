package tailwind

import (
	"strconv"
	"strings"

	"css2tw/css"
)

var displays = map[string]string{
	"block":              "block",
	"inline-block":       "inline-block",
	"inline":             "inline",
	"flex":               "flex",
	"inline-flex":        "inline-flex",
	"grid":               "grid",
	"inline-grid":        "inline-grid",
	"table":              "table",
	"inline-table":       "inline-table",
	"table-caption":      "table-caption",
	"table-cell":         "table-cell",
	"table-column":       "table-column",
	"table-column-group": "table-column-group",
	"table-footer-group": "table-footer-group",
	"table-header-group": "table-header-group",
	"table-row-group":    "table-row-group",
	"table-row":          "table-row",
	"flow-root":          "flow-root",
	"contents":           "contents",
	"list-item":          "list-item",
	"hidden":             "hidden",
	"none":               "hidden",
}

var cursors = prefixed("cursor", []string{
	"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed",
	"none", "context-menu", "progress", "cell", "crosshair", "vertical-text",
	"alias", "copy", "no-drop", "grab", "grabbing", "all-scroll", "col-resize",
	"row-resize", "n-resize", "e-resize", "s-resize", "w-resize", "ne-resize",
	"nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
	"nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
}, nil)

var overflows = []string{"auto", "hidden", "clip", "visible", "scroll"}

var positions = []string{
	"bottom", "center", "left", "left-bottom", "left-top",
	"right", "right-bottom", "right-top", "top",
}

// positionKeywords builds table for object-position and background-position,
// accepting both "left top" and "left-top" forms.
func positionKeywords(prefix string) map[string]string {
	table := prefixed(prefix, positions, nil)
	for _, p := range positions {
		if h, v, ok := strings.Cut(p, "-"); ok {
			table[h+" "+v] = prefix + "-" + p
			table[v+" "+h] = prefix + "-" + p
		}
	}
	table["center center"] = prefix + "-center"
	table["50% 50%"] = prefix + "-center"
	return table
}

var layoutRules = ruleTable{
	"display": keywords(displays, orProperty("display")),

	"position": keywords(map[string]string{
		"static":   "static",
		"fixed":    "fixed",
		"absolute": "absolute",
		"relative": "relative",
		"sticky":   "sticky",
	}, orProperty("position")),

	"inset":  sides(boxNames{"inset", "inset-y", "inset-x", "top", "right", "bottom", "left"}, insetClass),
	"top":    scaled("top", sizeStep),
	"right":  scaled("right", sizeStep),
	"bottom": scaled("bottom", sizeStep),
	"left":   scaled("left", sizeStep),

	"z-index": zIndex,

	"visibility": keywords(map[string]string{
		"visible":  "visible",
		"hidden":   "invisible",
		"collapse": "collapse",
	}, orProperty("visibility")),

	"box-sizing": keywords(map[string]string{
		"border-box":  "box-border",
		"content-box": "box-content",
	}, orProperty("box-sizing")),

	"float": keywords(prefixed("float", []string{"left", "right", "none", "start", "end"}, map[string]string{
		"inline-start": "float-start",
		"inline-end":   "float-end",
	}), orProperty("float")),

	"clear": keywords(prefixed("clear", []string{"left", "right", "both", "none", "start", "end"}, map[string]string{
		"inline-start": "clear-start",
		"inline-end":   "clear-end",
	}), orProperty("clear")),

	"isolation": keywords(map[string]string{
		"isolate": "isolate",
		"auto":    "isolation-auto",
	}, orProperty("isolation")),

	"object-fit": keywords(prefixed("object", []string{"contain", "cover", "fill", "none", "scale-down"}, nil),
		orProperty("object-fit")),
	"object-position": keywords(positionKeywords("object"), orValue("object")),

	"overflow": keywords(prefixed("overflow", overflows, nil), orProperty("overflow")),
	"overflow-x": keywords(prefixed("overflow-x", overflows, nil), orProperty("overflow-x")),
	"overflow-y": keywords(prefixed("overflow-y", overflows, nil), orProperty("overflow-y")),

	"aspect-ratio": aspectRatio,

	"cursor": keywords(cursors, orValue("cursor")),

	"pointer-events": keywords(prefixed("pointer-events", []string{"none", "auto"}, nil), orProperty("pointer-events")),

	"user-select": keywords(prefixed("select", []string{"none", "text", "all", "auto"}, nil), orProperty("user-select")),

	"resize": keywords(map[string]string{
		"none":       "resize-none",
		"both":       "resize",
		"vertical":   "resize-y",
		"horizontal": "resize-x",
	}, orProperty("resize")),

	"width":      scaled("w", chain(fromTable(map[string]string{"100vw": "screen", "100dvw": "dvw", "100svw": "svw", "100lvw": "lvw"}), sizeStep)),
	"height":     scaled("h", chain(fromTable(map[string]string{"100vh": "screen", "100dvh": "dvh", "100svh": "svh", "100lvh": "lvh"}), sizeStep)),
	"min-width":  scaled("min-w", chain(fromTable(map[string]string{"100vw": "screen"}), sizeStep)),
	"min-height": scaled("min-h", chain(fromTable(map[string]string{"100vh": "screen", "100dvh": "dvh"}), sizeStep)),
	"max-height": scaled("max-h", chain(fromTable(map[string]string{"none": "none", "100vh": "screen", "100dvh": "dvh"}), sizeStep)),
	"max-width":  scaled("max-w", fromTable(maxWidths)),
}

var maxWidths = map[string]string{
	"none":        "none",
	"0":           "0",
	"20rem":       "xs",
	"24rem":       "sm",
	"28rem":       "md",
	"32rem":       "lg",
	"36rem":       "xl",
	"42rem":       "2xl",
	"48rem":       "3xl",
	"56rem":       "4xl",
	"64rem":       "5xl",
	"72rem":       "6xl",
	"80rem":       "7xl",
	"100%":        "full",
	"min-content": "min",
	"max-content": "max",
	"fit-content": "fit",
	"65ch":        "prose",
	"100vw":       "screen",
}

func insetClass(prefix, value string) string {
	return scaleClass(prefix, sizeStep, value)
}

func zIndex(value string) []string {
	v := css.VarFallback(value)
	if strings.ToLower(v) == "auto" {
		return one("z-auto")
	}
	if n, err := strconv.Atoi(v); err == nil {
		if class, ok := stepClass("z", n, []int{0, 10, 20, 30, 40, 50}); ok {
			return one(class)
		}
	}
	return one(arbitraryValue("z", v))
}

func aspectRatio(value string) []string {
	v := strings.ReplaceAll(strings.ToLower(css.VarFallback(value)), " ", "")
	switch v {
	case "auto":
		return one("aspect-auto")
	case "1", "1/1":
		return one("aspect-square")
	case "16/9":
		return one("aspect-video")
	}
	return one(arbitraryValue("aspect", value))
}
