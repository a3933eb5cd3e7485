package emoji

import (
	"strconv"
	"strings"
)

// Kind classifies a Cluster.
type Kind uint8

// Cluster kinds.
const (
	// Text is a run of plain characters.
	Text Kind = iota
	// Single is one default-emoji pictograph.
	Single
	// Presentation is a text-default symbol followed by U+FE0F.
	Presentation
	// Modified is a base with a skin tone modifier.
	Modified
	// ZWJ joins several emoji with U+200D.
	ZWJ
	// Flag is a pair of regional indicators.
	Flag
	// Keycap is a digit, '#' or '*' with U+20E3.
	Keycap
	// Tag is a black flag with tag characters and a cancel tag.
	Tag
)

var kindNames = [...]string{"text", "single", "presentation", "modified", "zwj", "flag", "keycap", "tag"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Cluster is a plain text run or one emoji sequence.
type Cluster struct {
	Text string
	Kind Kind
}

// Emoji reports whether the cluster draws as a single emoji glyph.
func (c Cluster) Emoji() bool { return c.Kind != Text }

// Key identifies the cluster by its visible code points, lowercase hex
// joined by '-', as emoji image sets name their files. Variation selectors
// are dropped.
func (c Cluster) Key() string {
	var b strings.Builder
	for _, r := range c.Text {
		if IsVariationSelector(r) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}

// Split cuts s into clusters in order. Adjacent plain characters share one
// Text cluster; every emoji sequence gets its own.
func Split(s string) []Cluster {
	rs := []rune(s)
	var out []Cluster
	textStart := -1
	flush := func(end int) {
		if textStart >= 0 && end > textStart {
			out = append(out, Cluster{Text: string(rs[textStart:end]), Kind: Text})
		}
		textStart = -1
	}
	for i := 0; i < len(rs); {
		n, kind := sequenceAt(rs, i)
		if n == 0 {
			if textStart < 0 {
				textStart = i
			}
			i++
			continue
		}
		flush(i)
		out = append(out, Cluster{Text: string(rs[i : i+n]), Kind: kind})
		i += n
	}
	flush(len(rs))
	return out
}

// Contains reports whether s holds any emoji sequence.
func Contains(s string) bool {
	rs := []rune(s)
	for i := range rs {
		if n, _ := sequenceAt(rs, i); n > 0 {
			return true
		}
	}
	return false
}

// sequenceAt returns the length in runes of the emoji sequence starting at
// rs[i], or 0 when rs[i] starts plain text.
func sequenceAt(rs []rune, i int) (int, Kind) {
	r := rs[i]
	at := func(j int) rune {
		if j < len(rs) {
			return rs[j]
		}
		return 0
	}

	if IsRegionalIndicator(r) {
		if IsRegionalIndicator(at(i + 1)) {
			return 2, Flag
		}
		return 1, Single
	}

	if IsKeycapBase(r) {
		j := i + 1
		if at(j) == emojiSelector {
			j++
		}
		if at(j) == keycapMark {
			return j + 1 - i, Keycap
		}
		return 0, Text
	}

	if r == blackFlag && IsTagCharacter(at(i+1)) {
		j := i + 1
		for IsTagCharacter(at(j)) {
			j++
		}
		if at(j) == cancelTag {
			j++
		}
		return j - i, Tag
	}

	j, kind, ok := element(rs, i)
	if !ok {
		return 0, Text
	}
	for IsZWJ(at(j)) {
		k, _, ok := element(rs, j+1)
		if !ok {
			break
		}
		j = k
		kind = ZWJ
	}
	return j - i, kind
}

// element reads one emoji with its optional selector or modifier and
// returns the index after it.
func element(rs []rune, i int) (int, Kind, bool) {
	if i >= len(rs) {
		return i, Text, false
	}
	r := rs[i]
	next := rune(0)
	if i+1 < len(rs) {
		next = rs[i+1]
	}
	switch {
	case next == textSelector:
		return i, Text, false
	case IsEmojiModifier(next) && (IsEmojiModifierBase(r) || IsEmojiPresentation(r)):
		return i + 2, Modified, true
	case IsEmojiPresentation(r):
		if next == emojiSelector {
			return i + 2, Single, true
		}
		return i + 1, Single, true
	case IsEmoji(r) && next == emojiSelector:
		return i + 2, Presentation, true
	}
	return i, Text, false
}
