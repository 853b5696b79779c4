// Command knn classifies data points with a k-nearest-neighbors majority vote.
//
//	knn <features.json> <labels.json> <queries.json>
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/hupe1980/knngo"
	"github.com/hupe1980/knngo/dataset"
)

var (
	neighborsFlag     int
	workersFlag       int
	logLevelFlag      string
	jsonLogsFlag      bool
	minioEndpointFlag string
	minioBucketFlag   string
	minioPrefixFlag   string
	minioInsecureFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "knn <features> <labels> <queries>",
	Short: "Classify data points with a k-nearest-neighbors majority vote",
	Long: `knn — exact k-nearest-neighbors classification of JSON datasets.

Takes three JSON files: training features ([N][D] array of arrays),
training labels (N numbers or strings), and query points ([M][D]).
Prints the M predicted labels on one line, in query order.

Inputs ending in .gz, .zst or .lz4 are decompressed transparently. With
--minio-endpoint set, paths are object keys read from --minio-bucket
(credentials from MINIO_ACCESS_KEY / MINIO_SECRET_KEY).

Examples:
  knn train.json labels.json points.json
  knn -k 3 train.json.gz labels.json points.json
  knn --minio-endpoint play.min.io --minio-bucket datasets train.json labels.json points.json`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&neighborsFlag, "neighbors", "k", 5, "Number of nearest neighbors consulted per prediction")
	rootCmd.Flags().IntVar(&workersFlag, "workers", 1, "Number of goroutines used to classify queries")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&jsonLogsFlag, "json-logs", false, "Emit JSON-formatted logs")
	rootCmd.Flags().StringVar(&minioEndpointFlag, "minio-endpoint", "", "Read inputs from this S3-compatible endpoint instead of the file system")
	rootCmd.Flags().StringVar(&minioBucketFlag, "minio-bucket", "", "Bucket holding the input objects")
	rootCmd.Flags().StringVar(&minioPrefixFlag, "minio-prefix", "", "Key prefix prepended to all input objects")
	rootCmd.Flags().BoolVar(&minioInsecureFlag, "minio-insecure", false, "Use plain HTTP for the object storage endpoint")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, err := newLogger()
	if err != nil {
		return err
	}

	source, err := newSource()
	if err != nil {
		return err
	}

	features, err := dataset.ReadVectors(ctx, source, args[0])
	if err != nil {
		return fmt.Errorf("training features: %w", err)
	}
	labels, err := dataset.ReadLabels(ctx, source, args[1])
	if err != nil {
		return fmt.Errorf("training labels: %w", err)
	}
	queries, err := dataset.ReadVectors(ctx, source, args[2])
	if err != nil {
		return fmt.Errorf("query points: %w", err)
	}

	clf, err := knngo.New(features, labels, neighborsFlag,
		knngo.WithLogger(logger),
		knngo.WithParallelism(workersFlag),
	)
	if err != nil {
		return err
	}

	predictions, err := clf.PredictBatch(ctx, queries)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", strings.Join(predictions, " "))

	return nil
}

func newLogger() (*knngo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevelFlag)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevelFlag, err)
	}
	if jsonLogsFlag {
		return knngo.NewJSONLogger(level), nil
	}
	return knngo.NewTextLogger(level), nil
}

func newSource() (dataset.Source, error) {
	if minioEndpointFlag == "" {
		return dataset.LocalSource{}, nil
	}
	if minioBucketFlag == "" {
		return nil, fmt.Errorf("--minio-bucket is required with --minio-endpoint")
	}

	client, err := minio.New(minioEndpointFlag, &minio.Options{
		Creds:  credentials.NewEnvMinio(),
		Secure: !minioInsecureFlag,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return dataset.NewMinIOSource(client, minioBucketFlag, minioPrefixFlag), nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
