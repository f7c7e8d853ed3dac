// Package cfen parses and renders CFEN, a compact text notation for a
// 3x3x3 cube's sticker layout: an orientation pair followed by six
// run-length-encoded faces.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ehrlich-b/twisty/internal/cube"
)

// Orientation names which color sits on the up face and which sits on
// the front face, fixing how the six faces of a CFEN string map onto
// cube.Face values.
type Orientation struct {
	Up    cube.Face
	Front cube.Face
}

// State is a complete cube state in CFEN form: an orientation plus six
// faces of nine stickers each, in U/R/F/D/L/B order.
type State struct {
	Orientation Orientation
	Faces       [6][9]cube.Face
}

// String renders the CFEN string representation.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString(faceLetter(s.Orientation.Up))
	sb.WriteString(faceLetter(s.Orientation.Front))
	sb.WriteString("|")
	for i, face := range s.Faces {
		if i > 0 {
			sb.WriteString("/")
		}
		sb.WriteString(compactString(face[:]))
	}
	return sb.String()
}

func compactString(stickers []cube.Face) string {
	if len(stickers) == 0 {
		return ""
	}
	var sb strings.Builder
	current := stickers[0]
	count := 1
	flush := func() {
		sb.WriteString(faceLetter(current))
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	for _, s := range stickers[1:] {
		if s == current {
			count++
			continue
		}
		flush()
		current = s
		count = 1
	}
	flush()
	return sb.String()
}

var tokenPattern = regexp.MustCompile(`([WYROGB])(\d*)`)

// Parse parses a CFEN string into a State.
func Parse(cfenStr string) (*State, error) {
	parts := strings.Split(cfenStr, "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("cfen: expected 'orientation|faces', got %q", cfenStr)
	}

	orientation, err := parseOrientation(parts[0])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid orientation %q: %w", parts[0], err)
	}

	faces, err := parseFaces(parts[1])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid faces %q: %w", parts[1], err)
	}

	return &State{Orientation: *orientation, Faces: faces}, nil
}

func parseOrientation(orientStr string) (*Orientation, error) {
	if len(orientStr) != 2 {
		return nil, fmt.Errorf("orientation must be exactly 2 characters, got %d", len(orientStr))
	}
	up, err := parseColor(rune(orientStr[0]))
	if err != nil {
		return nil, fmt.Errorf("up color %q: %w", orientStr[0:1], err)
	}
	front, err := parseColor(rune(orientStr[1]))
	if err != nil {
		return nil, fmt.Errorf("front color %q: %w", orientStr[1:2], err)
	}
	return &Orientation{Up: up, Front: front}, nil
}

func parseFaces(facesStr string) ([6][9]cube.Face, error) {
	var faces [6][9]cube.Face
	faceStrs := strings.Split(facesStr, "/")
	if len(faceStrs) != 6 {
		return faces, fmt.Errorf("expected 6 faces separated by '/', got %d", len(faceStrs))
	}
	for i, faceStr := range faceStrs {
		stickers, err := parseFace(faceStr)
		if err != nil {
			return faces, fmt.Errorf("face %d: %w", i, err)
		}
		if len(stickers) != 9 {
			return faces, fmt.Errorf("face %d has %d stickers, want 9", i, len(stickers))
		}
		copy(faces[i][:], stickers)
	}
	return faces, nil
}

func parseFace(faceStr string) ([]cube.Face, error) {
	matches := tokenPattern.FindAllStringSubmatch(faceStr, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no valid color tokens found in %q", faceStr)
	}

	var consumed strings.Builder
	var stickers []cube.Face
	for _, match := range matches {
		consumed.WriteString(match[0])
		color, err := parseColor(rune(match[1][0]))
		if err != nil {
			return nil, err
		}
		count := 1
		if match[2] != "" {
			n, err := strconv.Atoi(match[2])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid count %q", match[2])
			}
			count = n
		}
		for i := 0; i < count; i++ {
			stickers = append(stickers, color)
		}
	}
	if consumed.String() != faceStr {
		return nil, fmt.Errorf("failed to parse entire face string %q", faceStr)
	}
	return stickers, nil
}

func parseColor(ch rune) (cube.Face, error) {
	switch ch {
	case 'W':
		return cube.U, nil
	case 'Y':
		return cube.D, nil
	case 'G':
		return cube.F, nil
	case 'B':
		return cube.B, nil
	case 'R':
		return cube.R, nil
	case 'O':
		return cube.L, nil
	default:
		return 0, fmt.Errorf("unknown color character %q", ch)
	}
}

func faceLetter(f cube.Face) string {
	switch f {
	case cube.U:
		return "W"
	case cube.D:
		return "Y"
	case cube.F:
		return "G"
	case cube.B:
		return "B"
	case cube.R:
		return "R"
	case cube.L:
		return "O"
	default:
		return "?"
	}
}
