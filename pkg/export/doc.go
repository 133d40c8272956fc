// Package export renders routes to static HTML files and optionally
// publishes the result to S3.
//
// Each page is one scoped render pass. Routes map to files the
// static-site way ("/about" becomes about/index.html), and the encoded
// snapshot frame can be written alongside each page for tooling that
// consumes the wire form.
package export
