package terrain

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// FromPGM reads an ASCII ("P2") PGM height map. Every gray value is
// multiplied by scaling to obtain the tile height. The max-value header is
// validated but not used. Values are read x-major.
func FromPGM(r io.Reader, scaling float32) (*Terrain, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanTokens)
	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	magic, ok := next()
	if !ok {
		return nil, scanErr(sc, &ParseError{Context: ContextMagic, Kind: ErrEmptyFile})
	}
	if magic != "P2" {
		return nil, &ParseError{Context: ContextMagic, Kind: ErrInvalidMagic, Token: magic}
	}

	width, err := readNumber(next, ContextWidth, ErrMissingWidth)
	if err != nil {
		return nil, scanErr(sc, err)
	}
	height, err := readNumber(next, ContextHeight, ErrMissingHeight)
	if err != nil {
		return nil, scanErr(sc, err)
	}
	if _, err = readNumber(next, ContextMaxHeight, ErrMissingMaxHeight); err != nil {
		return nil, scanErr(sc, err)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyTerrain, width, height)
	}

	tiles := make([]Tile, 0, min(width*height, 1<<16))
	for i := 0; i < width*height; i++ {
		v, err := readNumber(next, ContextDatapoint, ErrMissingDatapoint)
		if err != nil {
			return nil, scanErr(sc, err)
		}
		tiles = append(tiles, Tile{Height: float32(v) * scaling, Type: Snow})
	}

	return &Terrain{tiles: tiles, width: width, height: height}, nil
}

func readNumber(next func() (string, bool), ctx Context, missing error) (int, error) {
	tok, ok := next()
	if !ok {
		return 0, &ParseError{Context: ctx, Kind: missing}
	}
	v, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, &ParseError{Context: ctx, Kind: ErrInvalidNumber, Token: tok}
	}

	return int(v), nil
}

// scanErr prefers an I/O error from the scanner over the parse error it caused.
func scanErr(sc *bufio.Scanner, err error) error {
	if ioErr := sc.Err(); ioErr != nil {
		return fmt.Errorf("pgm: read: %w", ioErr)
	}

	return err
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanTokens is a bufio.SplitFunc yielding whitespace separated tokens and
// dropping '#' comments up to the end of the line.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	i := 0
	for i < len(data) {
		switch {
		case isSpace(data[i]):
			i++
		case data[i] == '#':
			nl := bytes.IndexByte(data[i:], '\n')
			if nl < 0 {
				if atEOF {
					return len(data), nil, nil
				}
				return i, nil, nil
			}
			i += nl + 1
		default:
			for j := i; j < len(data); j++ {
				if isSpace(data[j]) || data[j] == '#' {
					return j, data[i:j], nil
				}
			}
			if atEOF {
				return len(data), data[i:], nil
			}
			return i, nil, nil
		}
	}

	return len(data), nil, nil
}
