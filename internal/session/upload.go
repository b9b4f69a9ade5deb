package session

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// UploadKind classifies an uploaded test result for the report listing.
type UploadKind string

const (
	KindImage    UploadKind = "image"
	KindDocument UploadKind = "document"
)

// Upload is one operator-supplied test result: an opaque blob tagged by
// detected kind. Uploads are never mutated after insertion. Annotation
// carries optional metadata extracted at ingestion time (e.g. DICOM
// modality and study description).
type Upload struct {
	Name       string
	Content    []byte
	Kind       UploadKind
	Annotation string
}

// UploadList is the session's append-only list of uploaded results.
type UploadList struct {
	items []Upload
}

// NewUploadList returns an empty list.
func NewUploadList() *UploadList {
	return &UploadList{}
}

// Add appends an upload in insertion order.
func (l *UploadList) Add(u Upload) {
	l.items = append(l.items, u)
}

// Items returns a copy of the uploads in insertion order.
func (l *UploadList) Items() []Upload {
	out := make([]Upload, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of uploads.
func (l *UploadList) Len() int { return len(l.items) }

// Names returns the upload filenames in insertion order.
func (l *UploadList) Names() []string {
	names := make([]string, 0, len(l.items))
	for _, u := range l.items {
		names = append(names, u.Name)
	}
	return names
}

// Summary renders the "name (kind)" listing committed to the timeline
// by the uploaded-results action. Returns "None" when nothing was
// uploaded, matching the report's historical wording.
func (l *UploadList) Summary() string {
	if len(l.items) == 0 {
		return "None"
	}
	lines := make([]string, 0, len(l.items))
	for _, u := range l.items {
		lines = append(lines, fmt.Sprintf("%s (%s)", u.Name, u.Kind))
	}
	return strings.Join(lines, "\n")
}

// DetectKind classifies an upload by declared content type, falling
// back to the filename suffix. Only png/jpg uploads count as images;
// everything else (pdf, dicom, unknown) is a document reference.
func DetectKind(name, contentType string) UploadKind {
	if strings.HasPrefix(contentType, "image/") {
		return KindImage
	}
	if contentType == "application/pdf" {
		return KindDocument
	}
	switch strings.ToLower(lastSuffix(name)) {
	case ".png", ".jpg", ".jpeg":
		return KindImage
	}
	return KindDocument
}

func lastSuffix(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// DecodeError reports an uploaded symptom file that is not valid text.
// The operator falls back to manual entry.
type DecodeError struct {
	Name string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file %q is not valid UTF-8 text", e.Name)
}

// DecodeTextFile interprets an uploaded symptom file as UTF-8 text.
func DecodeTextFile(name string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &DecodeError{Name: name}
	}
	return string(data), nil
}
