package shared

// Envelope is the uniform JSON body returned by every resource endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	// Count is only set on list responses; a pointer so zero is still written.
	Count         *int     `json:"count,omitempty"`
	Error         string   `json:"error,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
	TraceID       string   `json:"traceId,omitempty"`
}

// CreatedData is the payload of a successful create.
type CreatedData struct {
	ID string `json:"id"`
}

// UpdatedData is the payload of a successful update.
type UpdatedData struct {
	ID            string `json:"id"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// DeletedData is the payload of a successful delete.
type DeletedData struct {
	ID           string `json:"id"`
	DeletedCount int64  `json:"deletedCount"`
}
