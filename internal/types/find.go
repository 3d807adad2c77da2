package types

type (
	// FindParams contains parameters for a find request.
	FindParams struct {
		Path  string `json:"path"`
		Name  string `json:"name,omitempty"`
		IName string `json:"iname,omitempty"`
		Type  string `json:"type,omitempty"`
	}

	// FindMatch is a single matched path.
	FindMatch struct {
		Path string `json:"path"`
		URI  string `json:"uri"`
	}
)
