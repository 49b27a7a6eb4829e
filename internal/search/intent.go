package search

import (
	"regexp"
	"strings"
)

// IntentType is a coarse family of user goals.
type IntentType string

const (
	IntentConversion   IntentType = "conversion"
	IntentExtraction   IntentType = "extraction"
	IntentProtection   IntentType = "protection"
	IntentManipulation IntentType = "manipulation"
	IntentCompression  IntentType = "compression"
	IntentOCR          IntentType = "ocr"
	IntentArchive      IntentType = "archive"
	IntentSearch       IntentType = "search"
	IntentUnknown      IntentType = "unknown"
)

// Entities are the spans captured by the matching intent pattern.
type Entities struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Target string `json:"target,omitempty"`
}

// Intent is the result of DetectIntent.
type Intent struct {
	Type          IntentType `json:"type"`
	Confidence    float64    `json:"confidence"`
	MatchedTerms  []string   `json:"matched_terms"`
	Entities      Entities   `json:"entities"`
	OriginalQuery string     `json:"original_query"`
}

const intentConfidence = 0.8

type intentRule struct {
	typ      IntentType
	patterns []*regexp.Regexp
}

// Families are tried in order; the first with a matching pattern wins.
var intentRules = []intentRule{
	{IntentConversion, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:convert|change|transform|turn|make)\s+(.+?)\s+(?:to|in(?:to)?)\s+(.+)`),
		regexp.MustCompile(`(?i)(.+?)\s+(?:to|in(?:to)?)\s+(.+)`),
	}},
	{IntentExtraction, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:extract|pull|get|grab|remove|take)\s+(.+?)\s+(?:from|out\s+of)`),
		regexp.MustCompile(`(?i)(?:extract|pull|get)\s+(.+)`),
	}},
	{IntentProtection, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:lock|protect|encrypt|secure|password)`),
		regexp.MustCompile(`(?i)(?:unlock|decrypt|remove\s+password)`),
	}},
	{IntentManipulation, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:merge|combine|join|unite|concatenate)`),
		regexp.MustCompile(`(?i)(?:split|separate|cut|divide|break)`),
		regexp.MustCompile(`(?i)(?:resize|scale|adjust|change\s+size)`),
	}},
	{IntentCompression, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:compress|zip|archive|bundle|pack)`),
		regexp.MustCompile(`(?i)(?:uncompress|unzip|extract|unarchive|unpack)`),
	}},
	{IntentOCR, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:ocr|optical|character|recognition|text\s+from|image\s+to\s+text)`),
	}},
	{IntentArchive, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:zip|archive|compress)`),
		regexp.MustCompile(`(?i)(?:unzip|extract|unarchive|decompress)`),
	}},
	{IntentSearch, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:search|find|lookup|query|grep)`),
	}},
}

// intentFormats are reported in MatchedTerms when the query contains them.
var intentFormats = []string{
	"pdf", "docx", "doc", "excel", "xlsx", "ppt", "pptx", "text", "txt",
	"image", "png", "jpg", "jpeg", "webp", "bmp", "zip",
}

// DetectIntent classifies query into an intent family with fixed pattern
// rules and collects the file formats it mentions.
func DetectIntent(query string) Intent {
	q := Normalize(query)
	in := Intent{
		Type:          IntentUnknown,
		MatchedTerms:  []string{},
		OriginalQuery: query,
	}

rules:
	for _, r := range intentRules {
		for _, re := range r.patterns {
			m := re.FindStringSubmatch(q)
			if m == nil {
				continue
			}
			in.Type = r.typ
			in.Confidence = intentConfidence
			in.MatchedTerms = append(in.MatchedTerms, string(r.typ))
			switch {
			case r.typ == IntentConversion && len(m) >= 3:
				in.Entities.From, in.Entities.To = m[1], m[2]
			case r.typ == IntentExtraction && len(m) >= 2:
				in.Entities.Target = m[1]
			}
			break rules
		}
	}

	for _, f := range intentFormats {
		if strings.Contains(q, f) {
			in.MatchedTerms = append(in.MatchedTerms, f)
		}
	}
	return in
}
