package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/wordcount/source"
	"github.com/hupe1980/wordcount/source/minio"
	"github.com/hupe1980/wordcount/source/s3"
)

// resolve maps an input URI to a store and the name to open in it.
func resolve(ctx context.Context, input string, insecure bool) (source.Store, string, error) {
	scheme, rest, ok := strings.Cut(input, "://")
	if !ok {
		return source.NewLocalStore(""), input, nil
	}

	switch scheme {
	case "file":
		return source.NewLocalStore(""), rest, nil
	case "s3":
		bucket, key, err := splitObject(rest)
		if err != nil {
			return nil, "", fmt.Errorf("invalid s3 uri %q: %w", input, err)
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("load aws config: %w", err)
		}
		return s3.NewStore(awss3.NewFromConfig(cfg), bucket, ""), key, nil
	case "minio":
		u, err := url.Parse("//" + rest)
		if err != nil {
			return nil, "", fmt.Errorf("invalid minio uri %q: %w", input, err)
		}
		bucket, key, err := splitObject(strings.TrimPrefix(u.Path, "/"))
		if err != nil {
			return nil, "", fmt.Errorf("invalid minio uri %q: %w", input, err)
		}
		client, err := miniogo.New(u.Host, &miniogo.Options{
			Creds: credentials.NewChainCredentials([]credentials.Provider{
				&credentials.EnvMinio{},
				&credentials.EnvAWS{},
			}),
			Secure: !insecure,
		})
		if err != nil {
			return nil, "", err
		}
		return minio.NewStore(client, bucket, ""), key, nil
	default:
		return nil, "", fmt.Errorf("unsupported input scheme %q", scheme)
	}
}

// splitObject splits "bucket/key/with/slashes".
func splitObject(s string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(s, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("expected bucket/key")
	}
	return bucket, key, nil
}
