package predictor

type Result struct {
	Success     bool   `json:"success"`
	Plant       string `json:"plant,omitempty"`
	Disease     string `json:"disease,omitempty"`
	Confidence  int    `json:"confidence,omitempty"`
	Description string `json:"description,omitempty"`
	Prevention  string `json:"prevention,omitempty"`
	Treatment   string `json:"treatment,omitempty"`
	Severity    string `json:"severity,omitempty"`
	Error       string `json:"error,omitempty"`
}

type DiseaseInfo struct {
	Description string `json:"description"`
	Prevention  string `json:"prevention"`
	Treatment   string `json:"treatment"`
}
