// Package cli renders dataset listings and route results on the terminal.
package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mudmap/pkg/mapdata"
)

var (
	ColorArea   color.Style
	ColorRoom   color.Style
	ColorID     color.Style
	ColorSubtle color.Style
	ColorDenied color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles
func InitColors() {
	ColorArea = color.Style{color.FgCyan, color.OpBold}
	ColorRoom = color.Style{color.FgBlue}
	ColorID = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([^}]+)}`)
}

// FormatString formats a string with special markup
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := ""

		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "AREA":
			val = ColorArea.Sprintf(operand)
		case "ROOM":
			val = ColorRoom.Sprintf(operand)
		case "ID":
			val = ColorID.Sprintf(operand)
		case "SUBTLE":
			val = ColorSubtle.Sprintf(operand)
		case "DENIED":
			val = ColorDenied.Sprintf(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}

// PrintBullet prints a bulleted item
func PrintBullet(txt string) {
	fmt.Printf("- " + FormatString(txt) + "\n")
}

// PrintRule prints a horizontal rule with a centered label, spanning the
// terminal width.
func PrintRule(label string) {
	width := TerminalWidth()

	label = " " + label + " "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	right := width - sideLen - len(label)
	if right < 1 {
		right = 1
	}

	fmt.Println(ColorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", right)))
}

// PrintAreas lists every area with its room count.
func PrintAreas(idx *mapdata.AreaIndex) {
	PrintRule(gotext.Get("Areas"))
	for _, area := range idx.Areas() {
		PrintBullet(fmt.Sprintf("ID{%d} AREA{%s} SUBTLE{(%d rooms)}", area.ID, area.Name, area.RoomCount))
	}
}

// PrintRoute prints a room-by-room route, one hop per line.
func PrintRoute(idx *mapdata.AreaIndex, path []int) {
	PrintRule(fmt.Sprintf("%s (%d %s)", gotext.Get("Route"), len(path)-1, gotext.Get("hops")))

	for i, id := range path {
		room, ok := idx.RoomByID(id)
		if !ok {
			PrintBullet(fmt.Sprintf("ID{%d} DENIED{%s}", id, gotext.Get("unknown room")))
			continue
		}

		step := fmt.Sprintf("ID{%d} ROOM{%s}", id, room.Name)
		if i > 0 {
			if prev, ok := idx.RoomByID(path[i-1]); ok {
				if dir, found := prev.ExitTo(id); found {
					step += fmt.Sprintf(" SUBTLE{(%s)}", string(dir))
				}
			}
		}
		PrintBullet(step)
	}
}

// PrintNoRoute reports a disconnected room pair.
func PrintNoRoute(from, to int) {
	PrintString("DENIED{%s} ID{%d} -> ID{%d}\n", gotext.Get("No route between"), from, to)
}
