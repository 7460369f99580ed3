package tim

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenizeAnsi parses an already-rendered string containing SGR CSI
// sequences, cursor-position CSI sequences, and OSC 8 hyperlinks back into a
// Token stream (spec §4.2). The state-machine shape (ESC/CSI/OSC byte walk,
// explicit OSC 8 URI extraction) follows the same escape-sequence walk used
// by terminal-wrapping tools in the wild; unlike a byte-bucketing tokenizer
// it classifies each CSI/OSC match into a semantic Token immediately.
func TokenizeAnsi(text string) ([]Token, error) {
	var tokens []Token

	n := len(text)
	lastFlush := 0
	i := 0

	for i < n {
		if text[i] != 0x1b {
			i++
			continue
		}

		if i > lastFlush {
			tokens = append(tokens, PlainToken(text[lastFlush:i]))
		}

		if i+1 < n && text[i+1] == ']' {
			end, body, ok := scanOSC(text, i)
			if !ok {
				tokens = append(tokens, PlainToken(text[i:]))
				lastFlush = n
				i = n
				continue
			}

			if strings.HasPrefix(body, "8;") {
				parts := strings.SplitN(body, ";", 3)
				// "ESC]8;;ESC\" with both id and URI empty is the link
				// terminator, not a second link opener: it closes the
				// hyperlink state without introducing a Token of its own.
				if len(parts) == 3 && parts[2] != "" {
					tokens = append(tokens, HyperlinkToken(parts[2]))
				}
			}

			lastFlush = end
			i = end
			continue
		}

		if i+1 < n && text[i+1] == '[' {
			j := i + 2
			for j < n && !(text[j] >= 0x40 && text[j] <= 0x7e) {
				j++
			}
			if j >= n {
				tokens = append(tokens, PlainToken(text[i:]))
				lastFlush = n
				i = n
				continue
			}

			final := text[j]
			content := text[i+2 : j]
			end := j + 1

			switch final {
			case 'H', 'f':
				y, x, err := parseCursorPosition(content)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, CursorToken(y, x))
			case 'm':
				toks, err := parseSGRParts(content)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, toks...)
			}

			lastFlush = end
			i = end
			continue
		}

		i++
	}

	if lastFlush < n {
		tokens = append(tokens, PlainToken(text[lastFlush:]))
	}

	return tokens, nil
}

// scanOSC finds the end of an OSC sequence starting at i (which must point
// at the ESC byte) and returns the index just past its terminator along with
// the sequence body (everything between "ESC ]" and the terminator).
func scanOSC(text string, i int) (end int, body string, ok bool) {
	n := len(text)
	j := i + 2

	for j < n {
		if text[j] == 0x07 {
			return j + 1, text[i+2 : j], true
		}
		if text[j] == 0x1b && j+1 < n && text[j+1] == '\\' {
			return j + 2, text[i+2 : j], true
		}
		j++
	}

	return 0, "", false
}

func parseCursorPosition(content string) (*int, *int, error) {
	parts := strings.SplitN(content, ";", 2)

	yStr := parts[0]
	xStr := ""
	if len(parts) > 1 {
		xStr = parts[1]
	}

	var y, x *int

	if yStr != "" {
		v, err := strconv.Atoi(yStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad cursor position %q", ErrAnsiParse, content)
		}
		y = &v
	}

	if xStr != "" {
		v, err := strconv.Atoi(xStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad cursor position %q", ErrAnsiParse, content)
		}
		x = &v
	}

	if y == nil && x == nil {
		return nil, nil, fmt.Errorf("%w: cursor position missing both coordinates", ErrAnsiParse)
	}

	return y, x, nil
}

// parseSGRParts walks the ";"-separated parts of a CSI SGR sequence (spec
// §4.2). Known style/clearer codes emit directly; "38"/"48" enters an
// accumulating COLOR state that keeps trying to resolve a color spec as
// parts arrive, deferring only while a truecolor triplet is still
// incomplete (otherwise a partial "R" could be misread as a palette index).
func parseSGRParts(content string) ([]Token, error) {
	if content == "" {
		content = "0"
	}

	parts := strings.Split(content, ";")
	var tokens []Token

	inColor := false
	var colorParts []string

	for _, part := range parts {
		if !inColor {
			if name, ok := reverseStyles[part]; ok {
				tokens = append(tokens, StyleToken(name))
				continue
			}
			if tag, ok := reverseClearers[part]; ok {
				tokens = append(tokens, ClearToken(tag))
				continue
			}
			if part == "38" || part == "48" {
				inColor = true
				colorParts = []string{part}
				continue
			}

			cv, err := ParseColor(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrAnsiParse, part)
			}
			tokens = append(tokens, ColorToken(part, cv))
			continue
		}

		colorParts = append(colorParts, part)
		joined := strings.Join(colorParts, ";")

		isTruecolorForm := strings.HasPrefix(joined, "38;2;") || strings.HasPrefix(joined, "48;2;")
		if isTruecolorForm && len(colorParts) != 5 {
			continue
		}

		spec := joined
		background := false
		if isTruecolorForm ||
			strings.HasPrefix(joined, "38;5;") || strings.HasPrefix(joined, "48;5;") {
			background = strings.HasPrefix(joined, "4")
			spec = joined[5:]
		}

		if background {
			spec = "@" + spec
		}

		cv, err := ParseColor(spec)
		if err != nil {
			continue
		}

		tokens = append(tokens, ColorToken(spec, cv))
		inColor = false
		colorParts = nil
	}

	return tokens, nil
}
