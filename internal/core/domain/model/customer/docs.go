// Package customer contains the Customer aggregate: the registry of recipients that
// parcels are matched against.
//
// Business rules:
//   - a customer always has a name
//   - phone numbers identify customers; two customers never share one
//   - locked customers are skipped by label auto-fill and by intake enrichment
//   - FillBlanks only fills empty fields; it never overwrites known data
package customer
