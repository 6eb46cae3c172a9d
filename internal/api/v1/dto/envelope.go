package dto

// DataEnvelope wraps every non-delete response; callers unwrap .data.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// SuccessEnvelope is the response shape for deletions.
type SuccessEnvelope struct {
	Success bool `json:"success"`
}
