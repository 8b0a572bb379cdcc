package intake

import (
	"strings"
	"unicode"
)

// Classification is the outcome of scoring a free-text issue report against
// the category keyword table. CategoryCode is empty when no category scored.
type Classification struct {
	CategoryCode string
	Confidence   int
	IsVague      bool
}

// CategoryKeywords binds a category code to the keywords that vote for it.
// Table order is a committed contract: when two categories score equally,
// the one declared earlier wins.
type CategoryKeywords struct {
	Code     string
	Keywords []string
}

const (
	keywordWordScore   = 10
	lengthBonus        = 20
	lengthBonusMinimum = 20
	vagueConfidence    = 40
	vagueLengthMinimum = 10
	maxConfidence      = 100
)

// Classifier scores free text against an immutable keyword table. It holds no
// mutable state and performs no I/O; identical input always yields identical
// output.
type Classifier struct {
	table []CategoryKeywords
}

func NewClassifier(table []CategoryKeywords) *Classifier {
	return &Classifier{table: table}
}

func DefaultClassifier() *Classifier {
	return &Classifier{table: DefaultCategoryKeywords}
}

// Classify scores text against every category in table order. A matched
// keyword contributes 10 points per word, so a multi-word keyword outranks a
// single word of the same family. The strictly highest score wins.
func (c *Classifier) Classify(text string) Classification {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Classification{Confidence: 0, IsVague: true}
	}

	tokens := tokenize(normalized)

	bestCode := ""
	bestScore := 0
	for _, entry := range c.table {
		score := 0
		for _, keyword := range entry.Keywords {
			if matchKeyword(normalized, tokens, keyword) {
				score += len(strings.Fields(keyword)) * keywordWordScore
			}
		}
		if score > bestScore {
			bestScore = score
			bestCode = entry.Code
		}
	}

	if bestScore == 0 {
		return Classification{Confidence: 0, IsVague: true}
	}

	confidence := bestScore
	if len(normalized) > lengthBonusMinimum {
		confidence += lengthBonus
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return Classification{
		CategoryCode: bestCode,
		Confidence:   confidence,
		IsVague:      confidence < vagueConfidence || len(normalized) < vagueLengthMinimum,
	}
}

// matchKeyword matches single-word keywords against whole tokens so that
// short codes like "ac" do not fire inside unrelated words, and multi-word
// keywords as plain substrings.
func matchKeyword(normalized string, tokens map[string]bool, keyword string) bool {
	if strings.ContainsRune(keyword, ' ') {
		return strings.Contains(normalized, keyword)
	}
	return tokens[keyword]
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[field] = true
	}
	return tokens
}
