package benchcmp

import (
	"encoding/json"
	"os"
)

// Load reads a benchmark result file and parses it into a Document.
// It returns *NotFoundError when the file does not exist and *ParseError
// when the content is not valid JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	if err != nil {
		return nil, err
	}

	var doc Document

	err = json.Unmarshal(data, &doc)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &doc, nil
}
