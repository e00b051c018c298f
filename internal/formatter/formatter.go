package formatter

import (
	"go/format"
	"strings"

	"go.uber.org/zap"

	"github.com/mcncl/json2types/internal/errors"
)

// Formatter runs gofmt over generated Go code
type Formatter struct {
	logger *zap.Logger
}

// NewFormatter creates a new Formatter instance
func NewFormatter(logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Formatter{logger: logger}
}

// Format returns code formatted the way gofmt would. The input may be a full
// file or a list of declarations without a package clause.
func (f *Formatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	formatted, err := format.Source([]byte(code))
	if err != nil {
		return "", errors.NewFormatError("failed to parse Go code", err)
	}
	return string(formatted), nil
}

// FormatOrKeep formats code and falls back to the unformatted text on failure.
func (f *Formatter) FormatOrKeep(code string) string {
	formatted, err := f.Format(code)
	if err != nil {
		f.logger.Warn("keeping unformatted output", zap.Error(err))
		return code
	}
	return formatted
}

// Supports reports whether output in language can be formatted.
func Supports(language string) bool {
	return language == "go"
}
