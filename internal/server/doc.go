// Package server exposes the mockup generator over HTTP.
//
// The API mirrors the interactive workflow: upload design and template
// images, optionally name each design, preview a single pairing, then
// generate the full batch as a downloadable archive.
//
// # Endpoints
//
//	GET    /api/health          liveness check
//	POST   /api/designs         multipart upload of design images
//	POST   /api/templates       multipart upload of shirt templates
//	PUT    /api/designs/:name   set the display name for a design
//	GET    /api/uploads         list stored uploads with dimensions
//	DELETE /api/uploads         clear everything (start over)
//	POST   /api/preview         composite one (design, template) pair -> PNG
//	POST   /api/generate        run a batch -> master zip download
//
// # Upload Store
//
// Uploads are decoded on ingest and held in an in-memory store for the
// lifetime of the process; nothing is persisted to disk. A decode failure
// rejects only the offending file, never the whole upload request.
//
// # Parameter Overrides
//
// Preview and generate accept an optional "params" object overriding the
// configured plain/model placement parameters for that call only, which is
// how a UI would wire its tuning sliders.
package server
