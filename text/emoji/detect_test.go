package emoji

import "testing"

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name         string
		r            rune
		emoji        bool
		presentation bool
	}{
		{"grinning face", 0x1F600, true, true},
		{"cat face", 0x1F431, true, true},
		{"watch", 0x231A, true, true},
		{"star", 0x2B50, true, true},
		{"copyright", 0x00A9, true, false},
		{"heart", 0x2764, true, false},
		{"latin A", 'A', false, false},
		{"digit", '1', false, false},
		{"zwj", 0x200D, false, false},
		{"cjk", 0x4E2D, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmoji(tt.r); got != tt.emoji {
				t.Errorf("IsEmoji(%U) = %v, want %v", tt.r, got, tt.emoji)
			}
			if got := IsEmojiPresentation(tt.r); got != tt.presentation {
				t.Errorf("IsEmojiPresentation(%U) = %v, want %v", tt.r, got, tt.presentation)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	for r := rune(0x1F3FB); r <= 0x1F3FF; r++ {
		if !IsEmojiModifier(r) {
			t.Errorf("IsEmojiModifier(%U) = false", r)
		}
	}
	if IsEmojiModifier(0x1F3FA) {
		t.Error("IsEmojiModifier(U+1F3FA) = true")
	}
	if !IsEmojiModifierBase(0x1F44B) {
		t.Error("waving hand is not a modifier base")
	}
	if IsEmojiModifierBase(0x1F431) {
		t.Error("cat face is a modifier base")
	}
}

func TestComponentRunes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rune) bool
		in   []rune
		out  []rune
	}{
		{"zwj", IsZWJ, []rune{0x200D}, []rune{0x200C}},
		{"regional", IsRegionalIndicator, []rune{0x1F1E6, 0x1F1FF}, []rune{0x1F1E5, 0x1F200}},
		{"selector", IsVariationSelector, []rune{0xFE0E, 0xFE0F}, []rune{0xFE0D}},
		{"keycap base", IsKeycapBase, []rune{'0', '9', '#', '*'}, []rune{'a', '+'}},
		{"tag", IsTagCharacter, []rune{0xE0020, 0xE007E}, []rune{0xE007F}},
		{"invisible", IsInvisible, []rune{0x200D, 0xFE0F, 0x20E3, 0xE0067, 0xE007F}, []rune{'a', 0x1F600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.in {
				if !tt.fn(r) {
					t.Errorf("%U: got false, want true", r)
				}
			}
			for _, r := range tt.out {
				if tt.fn(r) {
					t.Errorf("%U: got true, want false", r)
				}
			}
		})
	}
}
