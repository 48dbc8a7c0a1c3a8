package services

// AnalysisService is the simulated content-authenticity engine. It stands in
// for an external detection backend, so its verdict is deterministic on the
// content URL and purely advisory: nothing here ever touches the ledger.
// Settlement only accepts verdicts from the oracle endpoint.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// AnalysisResult is the advisory verdict for a piece of content
type AnalysisResult struct {
	IsReal     bool     `json:"is_real"`
	Confidence int      `json:"confidence"`
	Logs       []string `json:"logs"`
}

// Analyze produces a deterministic verdict from the content URL: the same
// reference always scores the same way. Even char-code sum reads as real;
// confidence lands between 85 and 99.
func (s *AnalysisService) Analyze(contentURL string) *AnalysisResult {
	sum := 0
	for _, ch := range contentURL {
		sum += int(ch)
	}

	isReal := sum%2 == 0
	confidence := 85 + sum%15

	logs := []string{
		"Initializing neural engine...",
		"Fetching content from storage provider...",
		"Analyzing metadata consistency...",
	}
	if isReal {
		logs = append(logs,
			"Metadata signature matches capture device.",
			"Compression artifacts are consistent.",
			"No GAN patterns detected in frequency domain.",
		)
	} else {
		logs = append(logs,
			"Metadata anomalies detected in EXIF data.",
			"Inconsistent compression artifacts found.",
			"High-frequency noise patterns match StyleGAN2 signature.",
		)
	}
	logs = append(logs, "Finalizing authenticity score...")

	return &AnalysisResult{
		IsReal:     isReal,
		Confidence: confidence,
		Logs:       logs,
	}
}
