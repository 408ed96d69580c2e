// Package compress provides the compression codecs used for dataset files.
//
// Dataset payloads are small text or JSON documents, so the codecs favor
// simplicity and predictable memory use over throughput tuning. Four codecs
// are available, selected by format.CompressionType:
//
//   - Zstd: best ratio; gozstd under cgo, klauspost/compress/zstd otherwise
//   - S2: fast Snappy-compatible compression
//   - LZ4: fast block compression
//   - NoOp: passthrough for uncompressed files
//
// All codecs are stateless values safe for concurrent use; pooled internal
// buffers are handled per call.
package compress
