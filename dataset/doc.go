// Package dataset loads the JSON inputs of the knn tool.
//
// Three files drive a classification run: training features ([N][D] array
// of arrays), training labels (N numbers or strings), and query points
// ([M][D]). Decoding uses goccy/go-json; numeric labels keep their exact
// JSON literal so output matches the input rendering.
//
// Inputs are read through a Source. LocalSource reads the file system,
// MinIOSource reads S3-compatible object storage. Files ending in .gz,
// .zst or .lz4 are decompressed transparently.
package dataset
