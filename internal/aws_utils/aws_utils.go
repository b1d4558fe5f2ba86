package aws_utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/logging"

	errUtils "github.com/cloudposse/ekscli/errors"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
	"github.com/cloudposse/ekscli/pkg/schema"
	"github.com/cloudposse/ekscli/pkg/version"
)

const appIDPrefix = "ekscli/"

// LoadAWSConfig loads AWS config.
/*
	It looks for credentials in the following order:

	Environment variables:
	  AWS_ACCESS_KEY_ID
	  AWS_SECRET_ACCESS_KEY
	  AWS_SESSION_TOKEN (optional, for temporary credentials)

	Shared credentials file:
	  Typically at ~/.aws/credentials
	  Controlled by:
	    AWS_PROFILE (defaults to default), or aws.profile / --profile
	    AWS_SHARED_CREDENTIALS_FILE

	Shared config file:
	  Typically at ~/.aws/config

	Amazon EC2 Instance Metadata Service (IMDS)

	Web Identity Token credentials:
	  When AWS_WEB_IDENTITY_TOKEN_FILE and AWS_ROLE_ARN are set

	SSO credentials (if configured)

	When aws.role_arn is set, the resolved credentials are used to assume that role.
*/
func LoadAWSConfig(ctx context.Context, settings *schema.AWS) (aws.Config, error) {
	defer perf.Track(nil, "aws_utils.LoadAWSConfig")()

	cfgOpts := []func(*config.LoadOptions) error{
		config.WithAppID(appIDPrefix + version.Version),
		config.WithLogger(sdkLogger()),
	}

	if log.GetLevel() <= log.TraceLevel {
		cfgOpts = append(cfgOpts, config.WithClientLogMode(aws.LogRetries|aws.LogRequest))
	}

	// Conditionally set the region
	if settings.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(settings.Region))
	}
	if settings.Profile != "" {
		cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(settings.Profile))
	}
	if settings.MaxAttempts > 0 {
		cfgOpts = append(cfgOpts, config.WithRetryMaxAttempts(settings.MaxAttempts))
	}
	if settings.EndpointURL != "" {
		log.Debug("Using endpoint override", "url", settings.EndpointURL)
		cfgOpts = append(cfgOpts, config.WithBaseEndpoint(settings.EndpointURL))
	}

	// Load base config (from env, profile, etc.)
	baseCfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return aws.Config{}, errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrLoadAwsConfig, err)).
			WithHint("Check the AWS profile and credentials, or pass --profile").
			Err()
	}

	// Conditionally assume the role
	if settings.RoleArn != "" {
		log.Debug("Assuming role", "ARN", settings.RoleArn)
		stsClient := sts.NewFromConfig(baseCfg)

		creds := stscreds.NewAssumeRoleProvider(stsClient, settings.RoleArn, func(o *stscreds.AssumeRoleOptions) {
			if settings.AssumeRoleDuration > 0 {
				o.Duration = settings.AssumeRoleDuration
			}
		})

		// Reload full config with assumed role credentials
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(aws.NewCredentialsCache(creds)))
		roleCfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
		if err != nil {
			return aws.Config{}, errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrLoadAwsConfig, err)).
				WithContext("role_arn", settings.RoleArn).
				Err()
		}
		return roleCfg, nil
	}

	return baseCfg, nil
}

// sdkLogger routes SDK log output through the CLI logger.
// SDK debug entries (request and retry traces) are logged at Trace.
func sdkLogger() logging.Logger {
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...any) {
		msg := fmt.Sprintf(format, v...)
		if classification == logging.Warn {
			log.Warn(msg, "source", "aws-sdk")
			return
		}
		log.Trace(msg, "source", "aws-sdk")
	})
}
