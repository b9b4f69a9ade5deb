package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"patient_name": {
		Title:       "PATIENT NAME",
		Description: "Full name of the patient.",
		Details:     "Also used for the report filename: <Name>_Report.pdf (spaces become underscores).",
	},
	"age": {
		Title:       "AGE",
		Description: "Patient age in years.",
		Details:     "Whole number between 0 and 130.",
	},
	"gender": {
		Title:       "GENDER",
		Description: "Patient's declared gender.",
		Details:     "male, female or other.",
	},
	"location": {
		Title:       "LOCATION",
		Description: "City or region the patient lives in.",
		Details:     "Free text. Included in the AI context and the report header.",
	},
	"past_history": {
		Title:       "PAST HISTORY",
		Description: "Known conditions, surgeries and allergies.",
		Details:     "Free text. Examples: hypertension, appendectomy 2019, penicillin allergy.",
	},
	"calories": {
		Title:       "DAILY CALORIES",
		Description: "Approximate daily calorie intake.",
		Details:     "Whole number, kcal per day. Leave 0 if unknown.",
	},
	"steps": {
		Title:       "AVERAGE STEPS",
		Description: "Average steps walked per day.",
		Details:     "Whole number. Leave 0 if unknown.",
	},
	"sleep_hours": {
		Title:       "SLEEP HOURS",
		Description: "Average hours of sleep per night.",
		Details:     "Decimal between 0 and 24 (e.g., 7.5).",
	},
	"heart_rate": {
		Title:       "RESTING HEART RATE",
		Description: "Resting heart rate in beats per minute.",
		Details:     "Between 30 and 200, or 0 when not measured.",
	},
	"symptoms_file": {
		Title:       "SYMPTOMS FILE",
		Description: "Optional text file to load symptoms from.",
		Details:     "Plain UTF-8 text. Leave empty to type symptoms manually below.",
	},
	"symptoms_text": {
		Title:       "SYMPTOMS",
		Description: "The patient's current complaints.",
		Details:     "Free text. This is the main input for the initial AI diagnostic.",
	},
	"menu_action": {
		Title:       "WORKFLOW ACTION",
		Description: "Next step in the clinical workflow.",
		Details: `The usual order: profile, symptoms, initial diagnostic,
doctor notes, test recommendations, uploads, final diagnostic,
prescription, follow-up plan, then commit blocks and render the report.
Steps can be revisited in any order.`,
	},
	"doctor_notes": {
		Title:       "DOCTOR NOTES",
		Description: "The clinician's own observations.",
		Details:     "Free text. Feeds into the test recommendations and the final diagnostic.",
	},
	"final_prescription": {
		Title:       "PRESCRIPTION",
		Description: "The confirmed diagnosis and prescription.",
		Details:     "Free text. When left empty, the report falls back to the AI final diagnostic.",
	},
	"upload_path": {
		Title:       "RESULT FILE",
		Description: "Path to a test result to attach.",
		Details: `png/jpg files are listed as images, everything else as documents.
DICOM files (.dcm) get an automatic modality annotation.
Leave empty to go back.`,
	},
	"commit_choice": {
		Title:       "COMMIT TO TIMELINE",
		Description: "Freeze a block into the report timeline.",
		Details: `Commits snapshot the current content; later edits do not
change already committed blocks. Committing twice adds the block twice.`,
	},
	"report_file": {
		Title:       "REPORT FILE",
		Description: "Where to write the PDF report.",
		Details:     "Defaults to <PatientName>_Report.pdf in the working directory.",
	},
	"session_path": {
		Title:       "SESSION FILE",
		Description: "Where to save the session YAML.",
		Details:     "A saved session can be reloaded with 'smartdiago wizard --from <file>' or rendered headlessly with --config.",
	},
}
