package tim

// Style/clearer SGR code tables, mirroring original_source/pytermgui's
// style_maps module (not itself retrieved, but named by parsing.py) and the
// concrete SGR codes already documented in internal/ansi/codes.go.

// styles maps a TIM style tag name to its SGR set-code.
var styles = map[string]string{
	"bold":          "1",
	"dim":           "2",
	"italic":        "3",
	"underline":     "4",
	"blink":         "5",
	"inverse":       "7",
	"strikethrough": "9",
}

// clearers maps a TIM clearer tag to its SGR clear-code. "/~" has no SGR
// representation of its own — closing a hyperlink is purely a parser-state
// transition (spec §4.4) — so it renders as the empty string.
var clearers = map[string]string{
	"/":             "0",
	"/fg":           "39",
	"/bg":           "49",
	"/bold":         "22",
	"/dim":          "22",
	"/italic":       "23",
	"/underline":    "24",
	"/blink":        "25",
	"/inverse":      "27",
	"/strikethrough": "29",
	"/~":            "",
}

// reverseStyles maps an SGR set-code back to its style tag name, used by the
// ANSI tokenizer (spec §4.2).
var reverseStyles = invert(styles)

// reverseClearers maps an SGR clear-code back to its clearer tag.
var reverseClearers = invertClearers(clearers)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// clearerCodeOverrides resolves SGR codes shared by more than one clearer tag
// ("/bold" and "/dim" both clear via "22") to a fixed choice, since map
// iteration order is unspecified and would otherwise make the reverse lookup
// nondeterministic across runs.
var clearerCodeOverrides = map[string]string{
	"22": "/bold",
}

func invertClearers(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v == "" {
			continue
		}
		if _, exists := out[v]; exists {
			continue
		}
		out[v] = k
	}
	for code, tag := range clearerCodeOverrides {
		out[code] = tag
	}
	return out
}

func isStyleName(tag string) bool {
	_, ok := styles[tag]
	return ok
}
