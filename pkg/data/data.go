// Package data writes operation emissions to the data channel (stdout).
//
// Each emission becomes one document. JSON documents are newline separated and
// YAML documents are separated by "---". Unset fields are left out. An optional yq
// expression is applied to every emission before it is formatted.
package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/config"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
)

const (
	indent            = "  "
	yamlDocSeparator  = "---\n"
	resultMetadataKey = "ResultMetadata"
	terminalFormatter = "terminal256"
)

// codec encodes SDK shapes. Struct field order is preserved and SDK bookkeeping is dropped.
var codec = func() jsoniter.API {
	api := jsoniter.Config{EscapeHTML: false}.Froze()
	api.RegisterExtension(&omitResultMetadata{})
	return api
}()

// omitResultMetadata hides the ResultMetadata field SDK responses carry.
type omitResultMetadata struct {
	jsoniter.DummyExtension
}

func (*omitResultMetadata) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	if b := sd.GetField(resultMetadataKey); b != nil {
		b.ToNames = []string{}
		b.FromNames = []string{}
	}
}

// Writer formats emissions onto an io.Writer.
type Writer struct {
	out    io.Writer
	format string
	query  string
	style  string
	count  int
}

// NewWriter returns a Writer for the given output format and optional yq query.
func NewWriter(out io.Writer, format, query string) (*Writer, error) {
	defer perf.Track(nil, "data.NewWriter")()

	if format == "" {
		format = config.DefaultOutputFormat
	}
	if !config.IsSupportedOutputFormat(format) {
		return nil, errUtils.Build(fmt.Errorf("%w: %q", errUtils.ErrInvalidOutputFormat, format)).
			WithHintf("Supported formats: %s", strings.Join(config.SupportedOutputFormats, ", ")).
			Err()
	}

	query = strings.TrimSpace(query)
	if query != "" {
		if err := validateQuery(query); err != nil {
			return nil, err
		}
	}

	return &Writer{out: out, format: format, query: query}, nil
}

// Emit writes one document. It is an operation.Emitter.
func (w *Writer) Emit(value any) error {
	defer perf.Track(nil, "data.Writer.Emit")()

	doc, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrWriteOutput, err)
	}
	if doc, err = pruneNulls(doc); err != nil {
		return err
	}

	if w.query != "" {
		if doc, err = evaluateQuery(w.query, doc); err != nil {
			return err
		}
	}

	rendered, err := w.render(doc)
	if err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrWriteOutput, err)
	}

	if w.style != "" {
		rendered = w.highlight(rendered)
	}

	if w.format == config.OutputFormatYAML && w.count > 0 {
		rendered = append([]byte(yamlDocSeparator), rendered...)
	}
	if _, err := w.out.Write(rendered); err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrWriteOutput, err)
	}
	w.count++
	return nil
}

// Highlight colours documents with the named chroma style. An empty style turns it off.
func (w *Writer) Highlight(style string) {
	w.style = style
}

// Count returns the number of documents written so far.
func (w *Writer) Count() int {
	return w.count
}

func (w *Writer) render(doc []byte) ([]byte, error) {
	if w.format == config.OutputFormatYAML {
		return yaml.JSONToYAML(doc)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(doc), "", indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (w *Writer) highlight(doc []byte) []byte {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(doc), w.format, terminalFormatter, w.style); err != nil {
		log.Debug("Syntax highlighting failed", "style", w.style, "error", err)
		return doc
	}
	return buf.Bytes()
}
