package predictor

import "fmt"

// diseaseInfo carries advisory text for the diseases we have curated
// entries for. Keys use the display form of the name (spaces, not
// underscores). Everything else gets a generated fallback.
var diseaseInfo = map[string]DiseaseInfo{
	"Apple scab": {
		Description: "Fungal disease causing olive-green velvety spots on leaves and fruits",
		Prevention:  "Use resistant varieties, ensure good air circulation, apply fungicide sprays",
		Treatment:   "Apply Captan or Mancozeb fungicide, prune infected areas",
	},
	"Black rot": {
		Description: "Fungal disease causing black circular lesions on fruits and leaves",
		Prevention:  "Remove infected plant debris, ensure proper spacing, avoid overhead watering",
		Treatment:   "Apply copper-based fungicides, remove infected fruits immediately",
	},
	"Late blight": {
		Description: "Devastating fungal disease causing water-soaked spots and plant death",
		Prevention:  "Use resistant varieties, avoid overhead irrigation, ensure good drainage",
		Treatment:   "Apply Metalaxyl or copper-based fungicides, destroy infected plants",
	},
	"Early blight": {
		Description: "Fungal disease causing brown concentric rings on older leaves",
		Prevention:  "Rotate crops, avoid overhead watering, maintain plant spacing",
		Treatment:   "Apply Chlorothalonil or Mancozeb fungicide sprays",
	},
	"Powdery mildew": {
		Description: "Fungal disease causing white powdery coating on leaves",
		Prevention:  "Ensure good air circulation, avoid overhead watering, plant in sunny locations",
		Treatment:   "Apply sulfur-based fungicides or neem oil",
	},
}

func lookupDiseaseInfo(disease, plant string) DiseaseInfo {
	if info, ok := diseaseInfo[disease]; ok {
		return info
	}
	return DiseaseInfo{
		Description: fmt.Sprintf("%s affecting %s", disease, plant),
		Prevention:  "Maintain good plant hygiene, use resistant varieties, ensure proper spacing",
		Treatment:   "Consult agricultural extension services for specific treatment recommendations",
	}
}
