// Package archive implements the compressed sidecar copy described in
// this module's domain stack: after a DLIS file has been written in full
// (see package writer), Compress produces a separate compressed file
// alongside it for cold storage or transport. The primary .dlis file is
// never touched.
//
// # Algorithms
//
//   - None: no compression, useful as a baseline or when the data is
//     already incompressible.
//   - Zstd: best compression ratio, moderate speed. Good default for
//     archival.
//   - S2: balanced compression and speed.
//   - LZ4: fastest decompression, moderate compression ratio.
package archive
