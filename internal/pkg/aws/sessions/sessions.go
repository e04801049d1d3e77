// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sessions provides functions that return AWS sessions to use in the AWS SDK.
package sessions

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/cfn-shapes/internal/pkg/version"
)

const (
	userAgentHeader = "User-Agent"

	maxRetriesOnRecoverableFailures = 8 // Default provided by SDK is 3 which means requests are retried up to only 2 seconds.
	credsTimeout                    = 10 * time.Second
	clientTimeout                   = 30 * time.Second
)

type sessionValidator interface {
	ValidateCredentials(sess *session.Session) (credentials.Value, error)
}

// Provider provides methods to create sessions.
// Once the default session is created, it's cached locally so that the same session is not re-created.
type Provider struct {
	defaultSess      *session.Session
	sessionValidator sessionValidator
}

var (
	instance *Provider
	once     sync.Once
)

// ImmutableProvider returns a session Provider singleton.
func ImmutableProvider() *Provider {
	once.Do(func() {
		instance = &Provider{
			sessionValidator: credsValidator{},
		}
	})
	return instance
}

// Session returns a session for the CLI's global flags.
// An empty profile falls back to the default credential chain, and a non-empty region overrides the configured one.
func (p *Provider) Session(profile, region string) (*session.Session, error) {
	switch {
	case profile != "":
		sess, err := p.FromProfile(profile)
		if err != nil {
			return nil, err
		}
		if region != "" {
			return sess.Copy(aws.NewConfig().WithRegion(region)), nil
		}
		return sess, nil
	case region != "":
		return p.DefaultWithRegion(region)
	default:
		return p.Default()
	}
}

// Default returns a session configured against the "default" AWS profile.
func (p *Provider) Default() (*session.Session, error) {
	if p.defaultSess != nil {
		return p.defaultSess, nil
	}

	sess, err := p.newSession(session.Options{
		Config:            *newConfig(),
		SharedConfigState: session.SharedConfigEnable,
	}, "")
	if err != nil {
		return nil, err
	}
	p.defaultSess = sess
	return sess, nil
}

// DefaultWithRegion returns a session configured against the "default" AWS profile and the input region.
func (p *Provider) DefaultWithRegion(region string) (*session.Session, error) {
	return p.newSession(session.Options{
		Config:            *newConfig().WithRegion(region),
		SharedConfigState: session.SharedConfigEnable,
	}, "")
}

// FromProfile returns a session configured against the input profile name.
func (p *Provider) FromProfile(name string) (*session.Session, error) {
	return p.newSession(session.Options{
		Config:            *newConfig(),
		SharedConfigState: session.SharedConfigEnable,
		Profile:           name,
	}, name)
}

func (p *Provider) newSession(opts session.Options, profile string) (*session.Session, error) {
	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, err
	}
	if aws.StringValue(sess.Config.Region) == "" {
		return nil, &errMissingRegion{}
	}
	if _, err := p.sessionValidator.ValidateCredentials(sess); err != nil {
		if isCredRetrievalErr(err) {
			return nil, &errCredRetrieval{
				profile:   profile,
				parentErr: err,
			}
		}
		return nil, err
	}
	sess.Handlers.Build.PushBackNamed(userAgentHandler())
	return sess, nil
}

// Creds returns the credential values from a session.
func Creds(sess *session.Session) (credentials.Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), credsTimeout)
	defer cancel()

	v, err := sess.Config.Credentials.GetWithContext(ctx)
	if err != nil {
		return credentials.Value{}, fmt.Errorf("get credentials of session: %w", err)
	}
	return v, nil
}

type credsValidator struct{}

// ValidateCredentials retrieves the credentials of the session so that misconfigured profiles fail early.
func (credsValidator) ValidateCredentials(sess *session.Session) (credentials.Value, error) {
	return Creds(sess)
}

// newConfig returns a config with an end-to-end request timeout and verbose credentials errors.
func newConfig() *aws.Config {
	c := &http.Client{
		Timeout: clientTimeout,
	}
	return aws.NewConfig().
		WithHTTPClient(c).
		WithCredentialsChainVerboseErrors(true).
		WithMaxRetries(maxRetriesOnRecoverableFailures)
}

// userAgentHandler returns a http request handler that sets a custom user agent to all aws requests.
func userAgentHandler() request.NamedHandler {
	return request.NamedHandler{
		Name: "UserAgentHandler",
		Fn: func(r *request.Request) {
			userAgent := r.HTTPRequest.Header.Get(userAgentHeader)
			r.HTTPRequest.Header.Set(userAgentHeader,
				fmt.Sprintf("cfnshape/%s (%s) %s", version.Version, runtime.GOOS, userAgent))
		},
	}
}
