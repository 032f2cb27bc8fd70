package override

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
)

const s3Scheme = "s3://"

// Fetcher returns the raw bytes of a real team info feed.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type FileFetcher struct {
	Path string
}

func (f FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, retry.Unrecoverable(apperr.ErrNotFound.Msg("override feed file %q does not exist", f.Path))
	}
	return b, err
}

type S3Fetcher struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func (f S3Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	object, err := f.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.Bucket),
		Key:    aws.String(f.Key),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && (ae.ErrorCode() == "NoSuchKey" || ae.ErrorCode() == "NotFound") {
			return nil, retry.Unrecoverable(apperr.ErrNotFound.Msg("override feed s3://%s/%s does not exist", f.Bucket, f.Key))
		}
		return nil, errors.Wrap(err, "failed to invoke GetObject")
	}
	defer object.Body.Close()

	return io.ReadAll(object.Body)
}

// Loaded is a parsed feed with the fingerprint of the bytes it was parsed from.
type Loaded struct {
	Feed        Feed
	Fingerprint uint64
	LoadedAt    time.Time
}

// Loader fetches and parses the feed, retrying transient fetch failures.
// A Loader without a Fetcher yields an empty feed.
type Loader struct {
	Fetcher  Fetcher
	Attempts uint
}

func NewLoader(conf *appconfig.Config) (*Loader, error) {
	fetcher, err := newFetcher(conf)
	if err != nil {
		return nil, err
	}
	return &Loader{
		Fetcher:  fetcher,
		Attempts: conf.FeedRetryAttempts,
	}, nil
}

func newFetcher(conf *appconfig.Config) (Fetcher, error) {
	uri := strings.TrimSpace(conf.OverrideFeedURI)
	if uri == "" {
		log.Info().Str("evt.name", "override.feed.disabled").Msg("no override feed configured")
		return nil, nil
	}

	if !strings.HasPrefix(uri, s3Scheme) {
		return FileFetcher{Path: uri}, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(uri, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, apperr.ErrConfiguration.Msg("override feed uri %q must look like s3://bucket/key", uri)
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.OverrideFeedS3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, "")))
	}
	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return S3Fetcher{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Key:    key,
	}, nil
}

func (l *Loader) Load(ctx context.Context) (*Loaded, error) {
	if l.Fetcher == nil {
		return &Loaded{Feed: Feed{}, LoadedAt: time.Now()}, nil
	}

	var b []byte
	err := retry.Do(
		func() error {
			var err error
			b, err = l.Fetcher.Fetch(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(l.attempts()),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Str("evt.name", "override.feed.retry").Uint("attempt", n+1).Msg("failed to fetch override feed, retrying")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch override feed")
	}

	return Parse(b)
}

func (l *Loader) attempts() uint {
	if l.Attempts == 0 {
		return 1
	}
	return l.Attempts
}

// Parse decodes raw feed bytes.
func Parse(b []byte) (*Loaded, error) {
	feed := Feed{}
	if err := json.Unmarshal(b, &feed); err != nil {
		return nil, apperr.ErrInvalidReq.Msg("override feed is not valid json: %s", err.Error())
	}
	return &Loaded{
		Feed:        feed,
		Fingerprint: xxh3.Hash(b),
		LoadedAt:    time.Now(),
	}, nil
}
