// Package kernel provides the value objects shared by every aggregate of the depot:
//   - UUID: identity of customers, parcels and pickups
//   - Region: the depot's city, province and postal prefix used when a label omits them
package kernel
