// Package export turns a rendered slip into hard copy: a printable HTML
// document for the host print dialog, or a PDF download built either from
// the document model directly or from a client-captured bitmap.
package export

import (
	"fmt"
	"io"

	"bps-backend/internal/domain"
)

// ErrTargetUnavailable reports a print target that could not be opened
// (the blocked-popup case). Recoverable; callers decide how to surface it.
var ErrTargetUnavailable = domain.UnavailableError{Resource: "print target"}

const printDocument = `<!doctype html>
<html>
<head>
<meta charset="utf-8" />
<title>%s</title>
<style>%s</style>
</head>
<body onload="window.print()">
%s
</body>
</html>
`

// Print wraps already-rendered slip markup into a standalone printable
// document and writes it to the target. The markup goes in verbatim; no
// re-rendering happens here.
func Print(target io.Writer, title, css, renderedHTML string) error {
	if target == nil {
		return ErrTargetUnavailable
	}
	if _, err := fmt.Fprintf(target, printDocument, title, css, renderedHTML); err != nil {
		return domain.UnavailableError{Resource: "print target", Err: err}
	}
	return nil
}
