package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a question bank.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatJS is a JavaScript module holding `const name = [ ... ];`
	// where the array literal is valid JSON.
	FormatJS Format = "js"
)

// FormatFromPath picks a Format from the file extension. Unknown
// extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".js", ".mjs":
		return FormatJS
	default:
		return FormatJSON
	}
}

// Load reads and decodes the question bank at path.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Index: -1, Err: err}
	}
	qs, err := Decode(data, FormatFromPath(path))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Index: -1, Err: err}
	}
	return qs, nil
}

// Decode parses a question bank. JSON and JS sources hold either an array
// of records or an object with a "questions" array. Missing optional
// fields decode to zero values.
func Decode(data []byte, format Format) ([]Question, error) {
	var raw []byte
	switch format {
	case FormatJS:
		body, err := extractArrayLiteral(data)
		if err != nil {
			return nil, err
		}
		raw = body
	case FormatYAML:
		body, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		raw = body
	default:
		raw = data
	}

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoQuestions
	}
	if err := validateRecords(records); err != nil {
		return nil, err
	}
	if err := coerceCorrect(records); err != nil {
		return nil, err
	}

	// Records passed the schema, so a typed decode cannot fail on shape.
	typed, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("re-encode records: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(typed, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return qs, nil
}

// decodeRecords unwraps the top-level container into a list of records.
func decodeRecords(raw []byte) ([]any, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}

	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		list, ok := v["questions"].([]any)
		if !ok {
			return nil, fmt.Errorf("object source must hold a \"questions\" array")
		}
		return list, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported top-level JSON type %T", doc)
	}
}

// coerceCorrect rewrites an integral "correct" written with a fraction or
// exponent, such as 1.0, as a plain integer so the typed decode accepts it.
func coerceCorrect(records []any) error {
	for i, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		n, ok := rec["correct"].(json.Number)
		if !ok {
			continue
		}
		if _, err := n.Int64(); err == nil {
			continue
		}
		f, err := n.Float64()
		if err != nil || f != float64(int64(f)) {
			return &LoadError{Index: i, Err: fmt.Errorf("correct must be an integer, got %s", n)}
		}
		rec["correct"] = json.Number(strconv.FormatInt(int64(f), 10))
	}
	return nil
}

// extractArrayLiteral pulls the array assigned in `const x = [ ... ];`.
func extractArrayLiteral(data []byte) ([]byte, error) {
	content := string(data)
	start := strings.Index(content, " = [")
	if start < 0 {
		return nil, fmt.Errorf("no array assignment found")
	}
	start += len(" = ")
	end := strings.LastIndex(content, "];")
	if end < start {
		return nil, fmt.Errorf("unterminated array literal")
	}
	return []byte(content[start : end+1]), nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []byte("null"), nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}

// jsBankName is the variable a written JS module assigns.
const jsBankName = "questions"

// Write encodes qs in format: an indented JSON array, a YAML sequence, or
// a JS module that Load reads back.
func Write(w io.Writer, qs []Question, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(qs); err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		return enc.Close()
	case FormatJS:
		var buf bytes.Buffer
		if err := writeJSON(&buf, qs); err != nil {
			return err
		}
		body := bytes.TrimRight(buf.Bytes(), "\n")
		_, err := fmt.Fprintf(w, "const %s = %s;\n\nexport default %s;\n", jsBankName, body, jsBankName)
		return err
	default:
		return writeJSON(w, qs)
	}
}

func writeJSON(w io.Writer, qs []Question) error {
	if qs == nil {
		qs = []Question{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(qs); err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	return nil
}
