package search

import "fmt"

// Weights holds every tunable scoring constant.
type Weights struct {
	BaseWeight      int     `yaml:"base_weight"`
	ExactBonus      int     `yaml:"exact_bonus"`
	CoverageWeight  int     `yaml:"coverage_weight"`
	CloseBonus      int     `yaml:"close_bonus"`
	CategoryBonus   int     `yaml:"category_bonus"`
	MinPercentage   int     `yaml:"min_percentage"`
	MaxPercentage   int     `yaml:"max_percentage"`
	HighThreshold   int     `yaml:"high_threshold"`
	MediumThreshold int     `yaml:"medium_threshold"`
	ExactThreshold  int     `yaml:"exact_threshold"`
	CloseThreshold  float64 `yaml:"close_threshold"`
	MinMatchQuality float64 `yaml:"min_match_quality"`
	DirectAccept    float64 `yaml:"direct_accept"`
	MaxSuggestions  int     `yaml:"max_suggestions"`
}

// DefaultWeights returns the stock scoring constants.
func DefaultWeights() Weights {
	return Weights{
		BaseWeight:      50,
		ExactBonus:      15,
		CoverageWeight:  35,
		CloseBonus:      10,
		CategoryBonus:   10,
		MinPercentage:   20,
		MaxPercentage:   100,
		HighThreshold:   70,
		MediumThreshold: 40,
		ExactThreshold:  85,
		CloseThreshold:  0.5,
		MinMatchQuality: 0.5,
		DirectAccept:    0.85,
		MaxSuggestions:  3,
	}
}

// Validate checks that the thresholds are ordered and in range.
func (w Weights) Validate() error {
	switch {
	case w.MinPercentage < 0 || w.MaxPercentage > 100 || w.MinPercentage > w.MaxPercentage:
		return fmt.Errorf("%w: percentage range [%d,%d]", ErrInvalidWeights, w.MinPercentage, w.MaxPercentage)
	case w.MediumThreshold > w.HighThreshold:
		return fmt.Errorf("%w: medium threshold %d above high threshold %d", ErrInvalidWeights, w.MediumThreshold, w.HighThreshold)
	case w.MinMatchQuality < 0 || w.MinMatchQuality > 1:
		return fmt.Errorf("%w: min match quality %v", ErrInvalidWeights, w.MinMatchQuality)
	case w.CloseThreshold < 0 || w.CloseThreshold > 1:
		return fmt.Errorf("%w: close threshold %v", ErrInvalidWeights, w.CloseThreshold)
	case w.MaxSuggestions < 0:
		return fmt.Errorf("%w: max suggestions %d", ErrInvalidWeights, w.MaxSuggestions)
	}
	return nil
}

// Confidence buckets a percentage.
func (w Weights) Confidence(percentage int) Confidence {
	switch {
	case percentage >= w.HighThreshold:
		return ConfidenceHigh
	case percentage >= w.MediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ConfidenceFor buckets a percentage with the default thresholds.
func ConfidenceFor(percentage int) Confidence {
	return DefaultWeights().Confidence(percentage)
}
