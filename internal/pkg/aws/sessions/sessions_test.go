// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/cfn-shapes/internal/pkg/aws/sessions/mocks"
	"github.com/golang/mock/gomock"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/require"
)

// mockProvider implements the AWS SDK's credentials.Provider interface.
type mockProvider struct {
	value credentials.Value
	err   error
}

func (m mockProvider) Retrieve() (credentials.Value, error) {
	if m.err != nil {
		return credentials.Value{}, m.err
	}
	return m.value, nil
}

func (m mockProvider) IsExpired() bool {
	return false
}

func TestCreds(t *testing.T) {
	testCases := map[string]struct {
		inSess *session.Session

		wantedCreds credentials.Value
		wantedErr   error
	}{
		"returns values if provider is valid": {
			inSess: &session.Session{
				Config: &aws.Config{
					Credentials: credentials.NewCredentials(mockProvider{
						value: credentials.Value{
							AccessKeyID:     "abc",
							SecretAccessKey: "def",
						},
						err: nil,
					}),
				},
			},
			wantedCreds: credentials.Value{
				AccessKeyID:     "abc",
				SecretAccessKey: "def",
			},
		},
		"returns a wrapped error if fails to fetch credentials": {
			inSess: &session.Session{
				Config: &aws.Config{
					Credentials: credentials.NewCredentials(mockProvider{
						value: credentials.Value{},
						err:   errors.New("some error"),
					}),
				},
			},
			wantedErr: errors.New("get credentials of session: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			creds, err := Creds(tc.inSess)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
			} else {
				require.Equal(t, tc.wantedCreds, creds)
			}

		})
	}
}

func TestProvider_FromProfile(t *testing.T) {
	t.Run("error if region is missing", func(t *testing.T) {
		ogRegion := os.Getenv("AWS_REGION")
		ogDefaultRegion := os.Getenv("AWS_DEFAULT_REGION")
		defer func() {
			err := restoreEnvVar("AWS_REGION", ogRegion)
			require.NoError(t, err)

			err = restoreEnvVar("AWS_DEFAULT_REGION", ogDefaultRegion)
			require.NoError(t, err)
		}()

		// Since "walk-like-an-egyptian" is (very likely) a non-existent profile, whether the region information
		// is missing depends on whether the `AWS_REGION` environment variable is set.
		err := os.Unsetenv("AWS_REGION")
		require.NoError(t, err)
		err = os.Unsetenv("AWS_DEFAULT_REGION")
		require.NoError(t, err)

		// When
		sess, err := ImmutableProvider().FromProfile("walk-like-an-egyptian")

		// THEN
		require.NotNil(t, err)
		require.EqualError(t, errors.New("missing region configuration"), err.Error())
		require.Nil(t, sess)
	})

	t.Run("region information present", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mocks.NewMocksessionValidator(ctrl)
		m.EXPECT().ValidateCredentials(gomock.Any()).Return(credentials.Value{}, nil)

		ogRegion := os.Getenv("AWS_REGION")
		defer func() {
			err := restoreEnvVar("AWS_REGION", ogRegion)
			require.NoError(t, err)
		}()

		// Since "walk-like-an-egyptian" is (very likely) a non-existent profile, whether the region information
		// is missing depends on whether the `AWS_REGION` environment variable is set.
		err := os.Setenv("AWS_REGION", "us-west-2")
		require.NoError(t, err)

		// WHEN
		provider := &Provider{
			sessionValidator: m,
		}

		sess, err := provider.FromProfile("walk-like-an-egyptian")

		// THEN
		require.NoError(t, err)
		require.Equal(t, "us-west-2", *sess.Config.Region)
	})

	t.Run("session credentials are incorrect", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mocks.NewMocksessionValidator(ctrl)
		m.EXPECT().ValidateCredentials(gomock.Any()).Return(credentials.Value{}, context.DeadlineExceeded)

		ogRegion := os.Getenv("AWS_REGION")
		defer func() {
			err := restoreEnvVar("AWS_REGION", ogRegion)
			require.NoError(t, err)
		}()

		// Since "walk-like-an-egyptian" is (very likely) a non-existent profile, whether the region information
		// is missing depends on whether the `AWS_REGION` environment variable is set.
		err := os.Setenv("AWS_REGION", "us-west-2")
		require.NoError(t, err)

		// WHEN
		provider := &Provider{
			sessionValidator: m,
		}

		sess, err := provider.FromProfile("walk-like-an-egyptian")

		// THEN
		require.EqualError(t, err, "context deadline exceeded")
		var recommender interface{ RecommendActions() string }
		require.ErrorAs(t, err, &recommender)
		require.Contains(t, recommender.RecommendActions(), "profile [walk-like-an-egyptian]")
		require.Nil(t, sess)
	})
}

func TestProvider_Session(t *testing.T) {
	testCases := map[string]struct {
		inProfile string
		inRegion  string

		wantedRegion string
	}{
		"uses the default chain with the environment region": {
			wantedRegion: "us-west-2",
		},
		"overrides the region of the default chain": {
			inRegion:     "eu-west-1",
			wantedRegion: "eu-west-1",
		},
		"uses the profile with the environment region": {
			inProfile:    "walk-like-an-egyptian",
			wantedRegion: "us-west-2",
		},
		"overrides the region of the profile": {
			inProfile:    "walk-like-an-egyptian",
			inRegion:     "ap-northeast-1",
			wantedRegion: "ap-northeast-1",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := mocks.NewMocksessionValidator(ctrl)
			m.EXPECT().ValidateCredentials(gomock.Any()).Return(credentials.Value{}, nil)

			ogRegion := os.Getenv("AWS_REGION")
			defer func() {
				err := restoreEnvVar("AWS_REGION", ogRegion)
				require.NoError(t, err)
			}()
			require.NoError(t, os.Setenv("AWS_REGION", "us-west-2"))

			provider := &Provider{
				sessionValidator: m,
			}

			// WHEN
			sess, err := provider.Session(tc.inProfile, tc.inRegion)

			// THEN
			require.NoError(t, err)
			require.Equal(t, tc.wantedRegion, aws.StringValue(sess.Config.Region))
		})
	}
}

func TestProvider_Default_IsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMocksessionValidator(ctrl)
	m.EXPECT().ValidateCredentials(gomock.Any()).Return(credentials.Value{}, nil).Times(1)

	ogRegion := os.Getenv("AWS_REGION")
	defer func() {
		err := restoreEnvVar("AWS_REGION", ogRegion)
		require.NoError(t, err)
	}()
	require.NoError(t, os.Setenv("AWS_REGION", "us-east-1"))

	provider := &Provider{
		sessionValidator: m,
	}

	first, err := provider.Default()
	require.NoError(t, err)
	second, err := provider.Default()
	require.NoError(t, err)

	require.Same(t, first, second)
}

func TestErrMissingRegion_RecommendActions(t *testing.T) {
	require.Contains(t, (&errMissingRegion{}).RecommendActions(), "--region")
}

func restoreEnvVar(key string, originalValue string) error {
	if originalValue == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, originalValue)
}
