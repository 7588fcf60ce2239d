// Package document defines the document-model contract balloonkit consumes,
// plus two implementations: an in-memory document and a PDF import adapter.
//
// The document model is a collaborator, not part of the core: balloonkit
// only needs to enumerate pages, read positioned text spans and plain text,
// draw leader lines, circles, and centered labels, and capture or restore
// the document's bytes for snapshotting. Anything beyond that contract -
// rendering fidelity, font embedding, print output - belongs to the backend
// behind the interface.
//
// # Implementations
//
//   - [Memory] - a fully in-process document; drawings are recorded as an
//     annotation overlay and snapshots serialize the whole state
//   - [OpenPDF] - imports a real PDF's positioned text into a Memory
//     document using github.com/ledongthuc/pdf
package document
