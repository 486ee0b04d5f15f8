package tabular

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

const (
	encodingUTF8     = "utf-8"
	encodingShiftJIS = "shift_jis"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseDelimited decodes and parses a comma separated export. Files that are not
// valid UTF-8 are decoded as Shift_JIS. A header that parses to a single cell
// containing tabs is re-read as tab separated.
func parseDelimited(data []byte) ([][]string, string, error) {
	text, enc, err := decode(data)
	if err != nil {
		return nil, "", err
	}

	records, err := readRecords(text, ',')
	if err != nil {
		return nil, "", err
	}
	if len(records) > 0 && len(records[0]) == 1 && strings.Contains(records[0][0], "\t") {
		records, err = readRecords(text, '\t')
		if err != nil {
			return nil, "", err
		}
	}
	return records, enc, nil
}

func decode(data []byte) (string, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), encodingUTF8, nil
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", err
	}
	return string(decoded), encodingShiftJIS, nil
}

func readRecords(text string, comma rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}
