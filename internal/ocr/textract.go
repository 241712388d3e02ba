// Package ocr wraps AWS Textract as the fallback text recognizer for
// scanned documents and images that native extraction cannot handle.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
)

// ErrUnavailable is returned when the OCR backend has not been
// configured. Callers treat it as "no OCR", not as a failure.
var ErrUnavailable = errors.New("ocr backend is not configured")

// Client recognizes text in raw document bytes. Implementations must
// be safe for concurrent use.
type Client interface {
	// Recognize returns the recognized text, line per line. It fails
	// with ErrUnavailable when the backend is not configured.
	Recognize(ctx context.Context, data []byte) (string, error)

	// Available reports whether Recognize can be attempted at all.
	Available() bool
}

// detectDocumentTextAPI is the slice of the Textract client we use.
type detectDocumentTextAPI interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
}

type textractClient struct {
	api    detectDocumentTextAPI
	logger *utils.Logger
}

// Options carries the credentials for the Textract backend. Leaving
// any field empty produces a client whose Available() is false.
type Options struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// NewTextractClient builds a Textract-backed OCR client. When the
// credentials are incomplete it returns a client that reports
// unavailable rather than an error, so the caller can still serve
// documents that extract natively.
func NewTextractClient(ctx context.Context, opts Options, logger *utils.Logger) (Client, error) {
	if opts.AccessKeyID == "" || opts.SecretAccessKey == "" || opts.Region == "" {
		logger.Warn("AWS credentials not set, OCR fallback disabled")
		return &textractClient{api: nil, logger: logger}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("AWS Textract client initialized", "region", opts.Region)

	return &textractClient{
		api:    textract.NewFromConfig(cfg),
		logger: logger,
	}, nil
}

func (c *textractClient) Available() bool {
	return c.api != nil
}

// Recognize runs synchronous text detection and keeps only LINE
// blocks, joined with newlines in the order the backend returns them.
// Word and table granularities are skipped to avoid duplicating text.
func (c *textractClient) Recognize(ctx context.Context, data []byte) (string, error) {
	if c.api == nil {
		return "", ErrUnavailable
	}

	out, err := c.api.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: data},
	})
	if err != nil {
		return "", fmt.Errorf("textract call failed: %w", err)
	}

	var lines []string
	for _, block := range out.Blocks {
		if block.BlockType == types.BlockTypeLine {
			lines = append(lines, aws.ToString(block.Text))
		}
	}

	return strings.Join(lines, "\n"), nil
}
