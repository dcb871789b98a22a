package seqkit

import (
	"slices"
	"strings"
	"unicode"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/option"
)

// ErrEmptySeparator is yielded by Split when the configured separator is an empty string.
const ErrEmptySeparator errorkit.Error = "seqkit: empty separator"

// Split returns a lazy sequence of the fields of a text.
//
// Without options the text is split on runs of unicode whitespace,
// runs at either end of the text are ignored,
// and an all-whitespace or empty text produces an empty sequence.
// With SplitSeparator the text is split on every non-overlapping occurrence
// of the separator, matches are found left to right,
// and the final field is always produced, even when it is empty.
//
// SplitMaxSplits caps how many times the text is cut.
// Once the cap is reached the rest of the text becomes part of the final field,
// with its remaining separators or whitespace kept verbatim.
// A negative cap, the default, means no limit.
//
// Fields are produced one by one as the consumer pulls them,
// the unprocessed remainder of the text is never scanned ahead of demand.
// An empty separator is reported through the sequence on first pull as ErrEmptySeparator.
func Split(text string, opts ...SplitOption) iterkit.SeqE[string] {
	conf := option.ToConfig[SplitConfig](opts)
	if conf.Separator == nil {
		return splitWhitespace(text, conf.MaxSplits)
	}
	if *conf.Separator == "" {
		return iterkit.Error[string](ErrEmptySeparator)
	}
	return splitSeparator(text, *conf.Separator, conf.MaxSplits)
}

// SplitOption configures how Split interprets its input text.
type SplitOption option.Option[SplitConfig]

type SplitConfig struct {
	// Separator is the exact text to cut fields at.
	// When nil, fields are cut at whitespace runs instead.
	Separator *string
	// MaxSplits caps how many cuts are made, negative values mean unlimited.
	//
	// Default: -1
	MaxSplits int
}

func (c *SplitConfig) Init() {
	c.MaxSplits = -1
}

// Configure applies the receiver as the whole configuration.
func (c SplitConfig) Configure(t *SplitConfig) { *t = c }

// SplitSeparator makes Split cut the text at every occurrence of the given separator.
func SplitSeparator(sep string) SplitOption {
	return option.Func[SplitConfig](func(c *SplitConfig) {
		c.Separator = &sep
	})
}

// SplitMaxSplits caps how many times Split cuts the text.
// Zero keeps the text in one piece, a negative value removes the cap.
func SplitMaxSplits(n int) SplitOption {
	return option.Func[SplitConfig](func(c *SplitConfig) {
		c.MaxSplits = n
	})
}

func splitWhitespace(text string, maxSplits int) iterkit.SeqE[string] {
	return func(yield func(string, error) bool) {
		var (
			field  strings.Builder
			splits int
			frozen bool
		)
		for _, char := range text {
			if frozen {
				field.WriteRune(char)
				continue
			}
			if !unicode.IsSpace(char) {
				field.WriteRune(char)
				continue
			}
			if field.Len() == 0 {
				continue
			}
			if splits == maxSplits {
				// cap reached, the whitespace itself belongs to the final field from here on
				field.WriteRune(char)
				frozen = true
				continue
			}
			if !yield(field.String(), nil) {
				return
			}
			field.Reset()
			splits++
		}
		if field.Len() != 0 {
			yield(field.String(), nil)
		}
	}
}

func splitSeparator(text, sep string, maxSplits int) iterkit.SeqE[string] {
	return func(yield func(string, error) bool) {
		var (
			sepRunes = []rune(sep)
			maxLen   = len(sepRunes) + 1
			window   = make([]rune, 0, maxLen)
			field    strings.Builder
			splits   int
			frozen   bool
		)
		for _, char := range text {
			if frozen {
				field.WriteRune(char)
				continue
			}
			window = append(window, char)
			if len(window) == maxLen {
				// the oldest rune fell out of separator reach, it is part of the current field
				field.WriteRune(window[0])
				copy(window, window[1:])
				window = window[:maxLen-1]
			}
			if !slices.Equal(window, sepRunes) {
				continue
			}
			if splits == maxSplits {
				// cap reached, the matched separator stays verbatim in the final field
				field.WriteString(string(window))
				window = window[:0]
				frozen = true
				continue
			}
			if !yield(field.String(), nil) {
				return
			}
			field.Reset()
			splits++
			window = window[:0]
		}
		field.WriteString(string(window))
		yield(field.String(), nil)
	}
}
