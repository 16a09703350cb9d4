// Package docket fetches case pages from the county court docket site.
//
// The fetcher sends static browser-emulation headers (the site error-pages
// plain HTTP clients), tolerates the site's intermittently broken certificate
// chain with a single verification-disabled retry, and sniffs 200 responses
// for the soft-failure banners the site embeds instead of using error
// statuses.
package docket
