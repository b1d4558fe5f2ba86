package data

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/mikefarah/yq/v4/pkg/yqlib"
	"github.com/samber/lo"
	"gopkg.in/op/go-logging.v1"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/perf"
)

var initYq sync.Once

// yqPreferences keep scalar styles so quoted strings such as "true" stay strings.
var yqPreferences = yqlib.YamlPreferences{
	Indent:                      2,
	ColorsEnabled:               false,
	LeadingContentPreProcessing: true,
	PrintDocSeparators:          true,
	UnwrapScalar:                false,
	EvaluateTogether:            false,
}

// yqJSONPreferences print each result node as one compact line.
var yqJSONPreferences = yqlib.JsonPreferences{
	Indent:        0,
	ColorsEnabled: false,
	UnwrapScalar:  false,
}

// setupYq silences the yq logger and initialises its expression parser.
func setupYq() {
	initYq.Do(func() {
		backend := logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
		backend.SetLevel(logging.CRITICAL, "")
		yqlib.GetLogger().SetBackend(backend)

		yqlib.InitExpressionParser()
	})
}

func validateQuery(query string) error {
	defer perf.Track(nil, "data.validateQuery")()

	setupYq()
	if _, err := yqlib.ExpressionParser.ParseExpression(query); err != nil {
		return errUtils.Build(fmt.Errorf("%w: %q: %w", errUtils.ErrQueryEvaluation, query, err)).
			WithHint("The query is a yq expression, e.g. '.Addons[0]' or '.Nodegroup.Status'").
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}
	return nil
}

// evaluateQuery applies a yq expression to a JSON document and returns the result as JSON.
// Every matched node is kept: one node is returned as is, several are collected into an array.
func evaluateQuery(query string, doc []byte) ([]byte, error) {
	defer perf.Track(nil, "data.evaluateQuery")()

	setupYq()

	input, err := yaml.JSONToYAML(doc)
	if err != nil {
		return nil, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrQueryEvaluation, err)
	}

	evaluator := yqlib.NewStringEvaluator()
	result, err := evaluator.EvaluateAll(query, string(input), yqlib.NewJSONEncoder(yqJSONPreferences), yqlib.NewYamlDecoder(yqPreferences))
	if err != nil {
		return nil, errUtils.Build(fmt.Errorf("%w: %q: %w", errUtils.ErrQueryEvaluation, query, err)).Err()
	}

	return joinNodes(result), nil
}

// joinNodes turns the encoder output, one compact JSON value per line, into a single JSON value.
func joinNodes(result string) []byte {
	nodes := lo.Filter(strings.Split(result, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})

	switch len(nodes) {
	case 0:
		return []byte("null")
	case 1:
		return []byte(strings.TrimSpace(nodes[0]))
	default:
		return []byte("[" + strings.Join(nodes, ",") + "]")
	}
}
