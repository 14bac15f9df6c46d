/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package objectstore

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3Store is the DriverS3 backend: every object is one key in cfg.S3Bucket,
// optionally namespaced under cfg.S3Prefix. Region/endpoint resolution
// follows the standard AWS SDK v2 config chain, so this backend equally
// targets AWS S3 and any S3-compatible service reachable at S3Endpoint.
type s3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func newS3Store(ctx context.Context, cfg *Config) (*s3Store, error) {
	opts := []func(*awscfg.LoadOptions) error{}
	if cfg.S3Region != "" {
		opts = append(opts, awscfg.WithRegion(cfg.S3Region))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Store{client: client, bucket: cfg.S3Bucket, prefix: cfg.S3Prefix}, nil
}

func (s *s3Store) key(handle string) string {
	return s.prefix + handle
}

func (s *s3Store) Put(data []byte) (string, error) {
	handle := uuid.NewString()

	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(handle)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}

	return handle, nil
}

func (s *s3Store) Get(handle string) ([]byte, error) {
	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(handle)),
	})
	if err != nil {
		return nil, ErrorNotFound.Error(err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *s3Store) Delete(handle string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(handle)),
	})
	return err
}
