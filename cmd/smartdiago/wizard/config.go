package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

// Config is the YAML shape of a saved session. Upload blobs are not
// persisted, only their listing metadata; a reloaded session can still
// render the report, which only needs the listing.
type Config struct {
	Patient  PatientYAML          `yaml:"patient"`
	Stages   map[string]StageYAML `yaml:"stages,omitempty"`
	Uploads  []UploadYAML         `yaml:"uploads,omitempty"`
	Timeline []EntryYAML          `yaml:"timeline,omitempty"`
}

// PatientYAML holds the patient record with YAML tags for serialization.
type PatientYAML struct {
	Name        string  `yaml:"name"`
	Age         int     `yaml:"age"`
	Gender      string  `yaml:"gender"`
	Location    string  `yaml:"location"`
	PastHistory string  `yaml:"past_history"`
	Calories    int     `yaml:"calories"`
	Steps       int     `yaml:"steps"`
	SleepHours  float64 `yaml:"sleep_hours"`
	HeartRate   int     `yaml:"heart_rate"`
}

// StageYAML holds one stage artifact with YAML tags.
type StageYAML struct {
	Content    string `yaml:"content"`
	Provenance string `yaml:"provenance"`
}

// UploadYAML holds one upload's listing metadata with YAML tags.
type UploadYAML struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Annotation string `yaml:"annotation,omitempty"`
}

// EntryYAML holds one committed timeline block with YAML tags.
type EntryYAML struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// LoadFromYAML reads a saved session file and rebuilds the session.
func LoadFromYAML(path string) (*session.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}

	return configToSession(&cfg)
}

// SaveToYAML writes the session to path as YAML.
func SaveToYAML(s *session.Session, path string) error {
	data, err := yaml.Marshal(sessionToConfig(s))
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// configToSession validates the YAML shape and rebuilds a session.
func configToSession(cfg *Config) (*session.Session, error) {
	s := session.New()

	s.Patient = session.Patient{
		Name:        cfg.Patient.Name,
		Age:         cfg.Patient.Age,
		Gender:      session.Gender(cfg.Patient.Gender),
		Location:    cfg.Patient.Location,
		PastHistory: cfg.Patient.PastHistory,
		Calories:    cfg.Patient.Calories,
		Steps:       cfg.Patient.Steps,
		SleepHours:  cfg.Patient.SleepHours,
		HeartRate:   cfg.Patient.HeartRate,
	}
	if err := s.Patient.Validate(); err != nil {
		return nil, fmt.Errorf("invalid patient: %w", err)
	}

	for name, st := range cfg.Stages {
		stage := session.Stage(name)
		if !stage.Valid() {
			return nil, fmt.Errorf("unknown stage %q", name)
		}
		switch session.Provenance(st.Provenance) {
		case session.ProvenanceGenerated:
			if err := s.Stages.SetGenerated(stage, st.Content); err != nil {
				return nil, err
			}
		case session.ProvenanceEdited:
			if err := s.Stages.Edit(stage, st.Content); err != nil {
				return nil, err
			}
		case session.ProvenanceEmpty, "":
			// Content without provenance counts as operator-entered.
			if st.Content != "" {
				if err := s.Stages.Edit(stage, st.Content); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("stage %q: unknown provenance %q", name, st.Provenance)
		}
	}

	for _, u := range cfg.Uploads {
		kind := session.UploadKind(u.Kind)
		if kind != session.KindImage && kind != session.KindDocument {
			return nil, fmt.Errorf("upload %q: unknown kind %q", u.Name, u.Kind)
		}
		s.Uploads.Add(session.Upload{
			Name:       u.Name,
			Kind:       kind,
			Annotation: u.Annotation,
		})
	}

	for _, e := range cfg.Timeline {
		s.Timeline.Commit(e.Title, e.Content)
	}

	return s, nil
}

// sessionToConfig captures the session into the YAML shape. Stages that
// are still empty are omitted.
func sessionToConfig(s *session.Session) *Config {
	cfg := &Config{
		Patient: PatientYAML{
			Name:        s.Patient.Name,
			Age:         s.Patient.Age,
			Gender:      string(s.Patient.Gender),
			Location:    s.Patient.Location,
			PastHistory: s.Patient.PastHistory,
			Calories:    s.Patient.Calories,
			Steps:       s.Patient.Steps,
			SleepHours:  s.Patient.SleepHours,
			HeartRate:   s.Patient.HeartRate,
		},
	}

	for _, stage := range session.AllStages() {
		art := s.Stages.Get(stage)
		if art.Provenance == session.ProvenanceEmpty {
			continue
		}
		if cfg.Stages == nil {
			cfg.Stages = make(map[string]StageYAML)
		}
		cfg.Stages[string(stage)] = StageYAML{
			Content:    art.Content,
			Provenance: string(art.Provenance),
		}
	}

	for _, u := range s.Uploads.Items() {
		cfg.Uploads = append(cfg.Uploads, UploadYAML{
			Name:       u.Name,
			Kind:       string(u.Kind),
			Annotation: u.Annotation,
		})
	}

	for _, e := range s.Timeline.Entries() {
		cfg.Timeline = append(cfg.Timeline, EntryYAML{Title: e.Title, Content: e.Content})
	}

	return cfg
}
