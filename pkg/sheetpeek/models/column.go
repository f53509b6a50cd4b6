package models

// DType is the inferred data type label of a column.
type DType string

const (
	DTypeInt64    DType = "int64"
	DTypeFloat64  DType = "float64"
	DTypeBool     DType = "bool"
	DTypeDatetime DType = "datetime64"
	DTypeObject   DType = "object"
)

// NumericSummary holds summary statistics of a numeric column.
type NumericSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Column describes one sampled column.
type Column struct {
	// Name is the column label.
	Name string `json:"name"`
	// DType is the inferred data type.
	DType DType `json:"dtype"`
	// NonEmpty is the number of non-empty cells in the sample.
	NonEmpty int `json:"non_empty"`
	// Summary is set for int64 and float64 columns with at least one value.
	Summary *NumericSummary `json:"summary,omitempty"`
}
