package advisor

const conflictPrompt = `Analyze if this appointment: %s conflicts with these: %s.
Consider doctor availability, specialized room requirements, and average procedure duration.
Return a concise clinical warning or "NO_CONFLICT".`

const diagnosisPrompt = `Act as a senior medical consultant. Based on these clinical notes, suggest likely ICD-10 diagnosis codes and evidence-based treatment templates: "%s"`

const transcribePrompt = "Transcribe this medical dictation and format it as a professional SOAP note (Subjective, Objective, Assessment, Plan)."

const summaryPrompt = "Provide a high-yield executive summary for a busy physician. Focus on chronic conditions, recent interventions, and drug allergies: %s"

const reminderPrompt = `Draft a professional and friendly %s reminder for a medical appointment.
Patient: %s
Doctor: %s
Time: %s
Include a request to confirm by replying "YES" or cancel by replying "NO". Keep it concise.`

// diagnosisSchema constrains the model to the Diagnosis shape.
var diagnosisSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"suggestedDiagnoses": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"code":        map[string]interface{}{"type": "STRING"},
					"description": map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"code", "description"},
			},
		},
		"treatmentPlan":  map[string]interface{}{"type": "STRING"},
		"clinicalAlerts": map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
		"riskLevel":      map[string]interface{}{"type": "STRING", "description": "Low, Medium, or High"},
	},
	"required": []string{"suggestedDiagnoses", "treatmentPlan", "riskLevel"},
}
