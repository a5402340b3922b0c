package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tillerhq/tiller/pkg/core"
	"gopkg.in/yaml.v3"
)

// frontmatter delimiter, required at the very start of the document and on
// its own line to close the block.
const marker = "---"

// Parse reads a microagent document: a YAML metadata block delimited by
// marker lines, followed by the body. The body is preserved byte-for-byte
// apart from trimming leading and trailing whitespace.
func Parse(r io.Reader, source string) (core.Microagent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Microagent{}, err
	}

	if !bytes.HasPrefix(data, []byte(marker+"\n")) && !bytes.HasPrefix(data, []byte(marker+"\r\n")) {
		return core.Microagent{}, fmt.Errorf("%w: %s: document does not start with a metadata block", core.ErrMalformedMetadata, source)
	}

	rest := data[len(marker):]
	parts := bytes.SplitN(rest, []byte("\n"+marker), 2)
	if len(parts) == 1 {
		return core.Microagent{}, fmt.Errorf("%w: %s: metadata block started but no closing delimiter found", core.ErrMalformedMetadata, source)
	}

	var meta core.Metadata
	if err := yaml.Unmarshal(parts[0], &meta); err != nil {
		return core.Microagent{}, fmt.Errorf("%w: %s: %v", core.ErrMalformedMetadata, source, err)
	}
	if err := meta.Validate(); err != nil {
		return core.Microagent{}, fmt.Errorf("%s: %w", source, err)
	}

	return core.Microagent{
		Metadata: meta,
		Body:     strings.TrimSpace(string(parts[1])),
		Source:   source,
	}, nil
}

// ParseFile loads a microagent from a file on disk.
func ParseFile(path string) (core.Microagent, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Microagent{}, fmt.Errorf("%w: %s", core.ErrMicroagentNotFound, path)
		}
		return core.Microagent{}, err
	}
	defer f.Close()

	return Parse(f, path)
}

// Serialize converts a microagent back to document bytes. Parsing the
// result yields an identical body.
func Serialize(m core.Microagent) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(marker + "\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(m.Metadata); err != nil {
		return nil, err
	}
	encoder.Close()
	buf.WriteString(marker + "\n\n")
	buf.WriteString(m.Body)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
