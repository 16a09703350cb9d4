// Package storage persists diagnostic error-page dumps.
//
// When the court site answers 200 but the body carries one of its soft-failure
// banners, the raw response is written to error_page_<case_number>.html for
// later manual inspection. The default storage location is
// ~/.local/share/docketwatch/. These dumps are the only local artifact the
// sync produces.
package storage
