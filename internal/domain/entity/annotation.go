package entity

// AnnotationKind classifies a non-fatal degradation
type AnnotationKind string

const (
	// MissingReferenceData: an airport code the directory could not resolve
	MissingReferenceData AnnotationKind = "missing_reference_data"
	// MalformedRecord: an unparsable date or number; the record is kept
	MalformedRecord AnnotationKind = "malformed_record"
	// InsufficientData: an analysis had too little input to produce a result
	InsufficientData AnnotationKind = "insufficient_data"
)

// Annotation flags a degraded part of the report. Repeated occurrences of the
// same kind and subject are folded into Count.
type Annotation struct {
	Kind    AnnotationKind `json:"kind"`
	Subject string         `json:"subject"`
	Detail  string         `json:"detail,omitempty"`
	Count   int            `json:"count"`
}
