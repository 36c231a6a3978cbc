package gitignore

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dsemenov/repomove/internal/relocate/shared"
)

const (
	pathSeparatorLiteralConstant        = "/"
	emptyReplacementConstant            = ""
	ignoreFileOpenErrorTemplateConstant = "unable to open ignore file %s: %w"
	ignoreFileReadErrorTemplateConstant = "unable to read ignore file %s: %w"
)

// Loader reads .gitignore-style files into ordered literal exclusion entries.
type Loader struct{}

// NewLoader constructs an ignore file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadEntries reads the ignore file line by line, removing every "/" from each
// line and trimming surrounding whitespace. Comment and blank lines receive no
// special handling and pass through the same transform; entries are neither
// deduplicated nor reordered.
func (loader *Loader) LoadEntries(ignoreFilePath string) (shared.IgnoreList, error) {
	ignoreFile, openError := os.Open(ignoreFilePath)
	if openError != nil {
		return nil, fmt.Errorf(ignoreFileOpenErrorTemplateConstant, ignoreFilePath, openError)
	}
	defer ignoreFile.Close()

	ignoreEntries := shared.IgnoreList{}
	lineScanner := bufio.NewScanner(ignoreFile)
	for lineScanner.Scan() {
		strippedLine := strings.ReplaceAll(lineScanner.Text(), pathSeparatorLiteralConstant, emptyReplacementConstant)
		ignoreEntries = append(ignoreEntries, strings.TrimSpace(strippedLine))
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, fmt.Errorf(ignoreFileReadErrorTemplateConstant, ignoreFilePath, scanError)
	}

	return ignoreEntries, nil
}
