// Package address splits free-text Japanese addresses into postal code,
// prefecture, municipality and the rest.
package address

import (
	"regexp"
	"strings"

	"ark-import/internal/domain"
)

const (
	postalMark = "〒"
	// joiner separates street remainder, building name and room number.
	joiner = "　"
)

var (
	hyphenated = regexp.MustCompile(`([0-9０-９]{3})[-－ー‐−―]([0-9０-９]{4})`)
	contiguous = regexp.MustCompile(`[0-9０-９]{7}`)

	digitFolder = strings.NewReplacer(
		"０", "0", "１", "1", "２", "2", "３", "3", "４", "4",
		"５", "5", "６", "6", "７", "7", "８", "8", "９", "9",
	)
)

// Parser splits addresses. It holds only compiled, read-only tables and is
// safe to share.
type Parser struct {
	prefectures  []string
	specialWards []string
	cityPatterns []*regexp.Regexp
}

// NewParser creates a parser over the national prefecture and ward tables.
func NewParser() *Parser {
	return &Parser{
		prefectures:  Prefectures,
		specialWards: SpecialWards,
		cityPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(.+?[市町村])`),    // city, town, village
			regexp.MustCompile(`^(.+?郡.+?[町村])`), // town or village inside a county
			regexp.MustCompile(`^(.+?区)`),        // ward of a designated city
		},
	}
}

// PostalCode extracts a postal code as DDD-DDDD. Text before a 〒 mark is
// ignored. It returns the normalised code and the token as it appeared.
func PostalCode(address string) (code, token string) {
	if address == "" {
		return "", ""
	}
	search := address
	if _, after, found := strings.Cut(address, postalMark); found {
		search = after
		if before, _, ok := strings.Cut(after, postalMark); ok {
			search = before
		}
	}

	if m := hyphenated.FindStringSubmatch(search); m != nil {
		return digitFolder.Replace(m[1]) + "-" + digitFolder.Replace(m[2]), m[0]
	}
	if m := contiguous.FindString(search); m != "" {
		digits := digitFolder.Replace(m)
		return digits[:3] + "-" + digits[3:], m
	}
	return "", ""
}

// Parse splits address into its parts. Empty input yields empty parts.
func (p *Parser) Parse(address string) domain.AddressParts {
	if address == "" {
		return domain.AddressParts{}
	}

	code, token := PostalCode(address)
	working := address
	if code != "" {
		working = stripPostal(working, code, token)
	}

	var parts domain.AddressParts
	parts.PostalCode = code

	rest := working
	for _, pref := range p.prefectures {
		if strings.HasPrefix(working, pref) {
			parts.Prefecture = pref
			rest = working[len(pref):]
			break
		}
	}

	if rest != "" {
		parts.City, rest = p.matchCity(parts.Prefecture, rest)
	}
	parts.Remainder = strings.TrimSpace(rest)
	return parts
}

// SplitWithBuilding parses address and appends the building name and room
// number to the remainder, joined by a full-width space.
func (p *Parser) SplitWithBuilding(address, building, room string) domain.AddressParts {
	parts := p.Parse(address)

	segments := make([]string, 0, 3)
	if parts.Remainder != "" {
		segments = append(segments, parts.Remainder)
	}
	if building != "" {
		segments = append(segments, building)
	}
	if room != "" {
		segments = append(segments, room)
	}
	parts.Remainder = strings.Join(segments, joiner)
	return parts
}

func (p *Parser) matchCity(prefecture, s string) (city, rest string) {
	if prefecture == Tokyo {
		for _, ward := range p.specialWards {
			if strings.HasPrefix(s, ward) {
				return ward, s[len(ward):]
			}
		}
	}
	for _, re := range p.cityPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1], s[len(m[1]):]
		}
	}
	return "", s
}

// stripPostal removes every spelling of the postal code, with or without
// the 〒 mark, then trims.
func stripPostal(s, code, token string) string {
	candidates := []string{token, code, strings.ReplaceAll(code, "-", "")}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		s = strings.ReplaceAll(s, postalMark+c, "")
		s = strings.ReplaceAll(s, c, "")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimPrefix(s, postalMark))
}
