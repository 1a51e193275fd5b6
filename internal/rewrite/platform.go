package rewrite

import (
	"strings"
	"unicode/utf8"
)

// Tone is a target emotional register for a rewritten comment
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneWitty        Tone = "witty"
	ToneEmpathetic   Tone = "empathetic"
	ToneAssertive    Tone = "assertive"
)

// ParseTone validates a tone name
func ParseTone(s string) (Tone, bool) {
	switch Tone(strings.ToLower(s)) {
	case ToneProfessional, ToneFriendly, ToneWitty, ToneEmpathetic, ToneAssertive:
		return Tone(strings.ToLower(s)), true
	default:
		return "", false
	}
}

// Platform identifies the destination network
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformReddit    Platform = "reddit"
	PlatformInstagram Platform = "instagram"
)

// ParsePlatform validates a platform name. Empty input defaults to
// twitter, the strictest target.
func ParsePlatform(s string) (Platform, bool) {
	if s == "" {
		return PlatformTwitter, true
	}
	switch Platform(strings.ToLower(s)) {
	case PlatformTwitter, PlatformLinkedIn, PlatformReddit, PlatformInstagram:
		return Platform(strings.ToLower(s)), true
	default:
		return "", false
	}
}

type spec struct {
	description   string
	charLimit     int // 0 = no limit
	hashtagBudget int // How many suggested hashtags to append
}

func platformSpec(p Platform) spec {
	switch p {
	case PlatformTwitter:
		return spec{description: "short-form, 280 character limit", charLimit: 280, hashtagBudget: 2}
	case PlatformLinkedIn:
		return spec{description: "long-form professional network", hashtagBudget: 3}
	case PlatformReddit:
		return spec{description: "conversational, markdown tolerated", hashtagBudget: 0}
	case PlatformInstagram:
		return spec{description: "caption-style, hashtag heavy", charLimit: 2200, hashtagBudget: 5}
	default:
		return spec{description: "generic social platform", hashtagBudget: 0}
	}
}

// SuggestHashtags generates hashtag candidates for a topic using the
// common suffix patterns.
func SuggestHashtags(topic string) []string {
	clean := strings.ReplaceAll(strings.TrimSpace(topic), " ", "")
	if clean == "" {
		return nil
	}

	hashtags := []string{
		"#" + clean,
		"#" + clean + "Life",
		"#" + clean + "Goals",
		"#" + clean + "Community",
		"#" + clean + "Vibes",
		"#" + clean + "Tips",
	}
	return hashtags[:5]
}

// FormatForPlatform applies the deterministic platform constraints:
// emoji policy by tone, hashtag suffix within the platform budget and
// the character limit. Returns the final text and the hashtags used.
func FormatForPlatform(text string, tone Tone, platform Platform, topic string) (string, []string) {
	formatted := strings.TrimSpace(text)
	platSpec := platformSpec(platform)

	if tone == ToneProfessional {
		formatted = stripEmoji(formatted)
	}

	var used []string
	if platSpec.hashtagBudget > 0 && topic != "" {
		suggested := SuggestHashtags(topic)
		for _, tag := range suggested {
			if len(used) >= platSpec.hashtagBudget {
				break
			}
			// Skip tags the model already worked in.
			if strings.Contains(strings.ToLower(formatted), strings.ToLower(tag)) {
				continue
			}
			used = append(used, tag)
		}
	}

	if len(used) > 0 {
		withTags := formatted + "\n\n" + strings.Join(used, " ")
		if platSpec.charLimit == 0 || utf8.RuneCountInString(withTags) <= platSpec.charLimit {
			formatted = withTags
		} else {
			used = nil
		}
	}

	if platSpec.charLimit > 0 && utf8.RuneCountInString(formatted) > platSpec.charLimit {
		formatted = trimToLimit(formatted, platSpec.charLimit)
	}

	return formatted, used
}

// trimToLimit cuts at a word boundary and appends an ellipsis. Limits
// count characters, not bytes, so multi-byte text keeps its full budget.
func trimToLimit(text string, limit int) string {
	runes := []rune(text)
	if limit <= 1 {
		return string(runes[:limit])
	}
	cut := string(runes[:limit-1])
	if idx := strings.LastIndexAny(cut, " \n\t"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut) + "…"
}

// stripEmoji removes pictographic runes; professional copy stays plain
func stripEmoji(text string) string {
	var b strings.Builder
	for _, r := range text {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	// Collapse doubled spaces left behind by removed runes.
	return strings.Join(strings.Fields(b.String()), " ")
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // Pictographs, emoticons, symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // Misc symbols and dingbats
		return true
	case r == 0xFE0F || r == 0x200D: // Variation selector, ZWJ
		return true
	default:
		return false
	}
}

// TopicFromComment derives a coarse hashtag topic from the comment:
// the longest word of at least five letters.
func TopicFromComment(comment string) string {
	topic := ""
	for _, word := range strings.Fields(comment) {
		cleaned := strings.Trim(word, ".,!?;:\"'()#@")
		if !isAlphabetic(cleaned) {
			continue
		}
		if len(cleaned) >= 5 && len(cleaned) > len(topic) {
			topic = cleaned
		}
	}
	return topic
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func (t Tone) String() string { return string(t) }

func (p Platform) String() string { return string(p) }
