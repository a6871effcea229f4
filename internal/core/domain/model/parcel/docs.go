// Package parcel contains the Parcel aggregate: a package held at the depot from the moment
// its label is scanned until the recipient signs for it or it is sent back to the courier.
//
// The Go keyword "package" is why the aggregate is called Parcel; the stored relation is "parcels".
package parcel
