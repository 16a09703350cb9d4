// Package airtable provides a minimal client for the Airtable REST API.
//
// The client covers exactly the two operations the sync needs: listing every
// record of one table (following the offset pagination token until exhausted)
// and patching individual fields on a record while leaving the rest of the
// row untouched. Authentication uses a bearer token.
package airtable
