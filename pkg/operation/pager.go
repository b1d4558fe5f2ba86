package operation

import (
	"context"

	awsUtils "github.com/cloudposse/ekscli/internal/aws_utils"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
)

// Pager drives a continuation-token loop. It has two states, paging and done: each response is
// handed to the page callback, then the loop either requests the next page or stops.
type Pager[In, Out any] struct {
	// Operation names the remote operation in logs and errors.
	Operation string
	Call      func(ctx context.Context, in *In) (*Out, error)
	NextToken func(out *Out) *string
	SetToken  func(in *In, token *string)
	// InitialToken is the token the first request carries, if any.
	InitialToken *string
	// Manual stops after the first page. A returned token is logged so the caller can resume.
	Manual bool
	// TokenFlag is the flag the caller uses to resume, named in the resume hint.
	TokenFlag string
}

// Run requests pages starting from req until the service returns no continuation token.
// req is updated in place with each token. Call failures are classified as remote errors;
// page callback failures are returned as is.
func (p *Pager[In, Out]) Run(ctx context.Context, req *In, page func(out *Out) error) error {
	defer perf.Track(nil, "operation.Pager.Run")()

	sent := p.InitialToken
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return awsUtils.WrapRemoteError(p.Operation, err)
		}

		out, err := p.Call(ctx, req)
		if err != nil {
			return awsUtils.WrapRemoteError(p.Operation, err)
		}

		if err := page(out); err != nil {
			return err
		}

		var next *string
		if p.NextToken != nil {
			next = p.NextToken(out)
		}
		hasNext := next != nil && *next != ""
		log.Debug("Fetched page", "operation", p.Operation, "page", n, "more", hasNext)

		switch {
		case !hasNext:
			return nil
		case p.Manual || p.SetToken == nil:
			log.Info("More results are available", "operation", p.Operation, "next-token", *next,
				"hint", "pass --"+p.TokenFlag+" to fetch the next page")
			return nil
		case sent != nil && *sent == *next:
			log.Warn("Service returned the same continuation token; stopping", "operation", p.Operation, "page", n)
			return nil
		}

		p.SetToken(req, next)
		sent = next
	}
}
