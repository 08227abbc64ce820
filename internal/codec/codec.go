// Package codec is the serialization adapter for design specs: YAML in
// and out, with deterministic key ordering, an explicit schema-version
// tag, and strict decoding that surfaces a typed error instead of
// partially populating a spec.
package codec

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/logger"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	gdserrors "github.com/gentle-giraffe-apps/GentleDesignSystem/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Encode serializes a spec. Output is deterministic byte for byte: role
// maps encode with sorted keys, so equal specs always serialize
// identically and can be diffed or cached by content hash. Encoding a
// valid in-memory spec is expected never to fail.
func Encode(s spec.Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, gdserrors.NewEncodeError(err)
	}
	if err := enc.Close(); err != nil {
		return nil, gdserrors.NewEncodeError(err)
	}
	return buf.Bytes(), nil
}

// Decode parses a serialized spec. Structural problems (malformed YAML,
// wrong shapes, unknown keys) surface as *errors.DecodeError; a
// well-formed document with invalid content surfaces as
// *errors.ValidationError. On any error the returned spec is zero;
// decoding never partially populates. Role-level fallbacks do not apply
// here; those belong to resolution time.
func Decode(data []byte) (spec.Spec, error) {
	var s spec.Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return spec.Spec{}, gdserrors.NewDecodeError("", extractLine(err), err)
	}

	if err := ValidateSpec(&s); err != nil {
		return spec.Spec{}, err
	}

	return s, nil
}

// EncodeToFile serializes a spec to a file.
func EncodeToFile(s spec.Spec, path string) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads and decodes a spec from a file.
func LoadFile(path string) (spec.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Spec{}, gdserrors.NewDecodeError(path, 0, err)
	}

	s, err := Decode(data)
	if err != nil {
		if decodeErr, ok := err.(*gdserrors.DecodeError); ok {
			decodeErr.Path = path
		}
		return spec.Spec{}, err
	}
	return s, nil
}

// LoadFileOrDefault reads a spec from a file, falling back to the bundled
// default when the file is missing or malformed. The failure is logged,
// never surfaced: a broken theme must not block the UI.
func LoadFileOrDefault(path string, log *logger.Logger) spec.Spec {
	s, err := LoadFile(path)
	if err != nil {
		log.Error(err, fmt.Sprintf("falling back to bundled spec: %s", path))
		return spec.Default()
	}
	return s
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
