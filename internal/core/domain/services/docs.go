// Package services holds the stateless domain services of the label-ingestion pipeline.
//
// The package includes:
//   - Normalizer: canonical postal codes and addresses for the depot's Region
//   - LabelParser: rule tables that turn noisy OCR text into a parcel.Label candidate
//   - LabelAutofill: completes a candidate from a registered customer unless the customer is locked
//
// None of these services return errors: a field that cannot be extracted or normalized is left empty.
package services
