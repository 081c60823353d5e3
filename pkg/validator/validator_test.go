package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/campuslost/lostfound/pkg/validator"
)

type sampleStruct struct {
	ID    string `validate:"required,uuid"`
	Name  string `validate:"required,min=1,max=10"`
	Email string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ID:   "550e8400-e29b-41d4-a716-446655440000",
		Name: "hello",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ID"] != "This field is required" {
		t.Errorf("unexpected ID message: %q", m["ID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- custom tags ---

type finderReq struct {
	Email string `json:"email" validate:"required,email"`
}

type reportReq struct {
	Category  string    `json:"category"   validate:"required,item_category"`
	Location  string    `json:"location"   validate:"required,campus_location"`
	DateFound string    `json:"date_found" validate:"required,calendar_date"`
	DateTo    string    `json:"date_to"    validate:"omitempty,calendar_date"`
	Images    []string  `json:"images"     validate:"min=1,max=2,dive,image_data_url"`
	Finder    finderReq `json:"finder"`
}

func validReport() reportReq {
	return reportReq{
		Category:  "Electronics",
		Location:  "Lecture Hall A",
		DateFound: "2024-03-05",
		Images:    []string{"data:image/png;base64,AAAA"},
		Finder:    finderReq{Email: "a@campus.edu"},
	}
}

func TestCustomTags_valid(t *testing.T) {
	r := validReport()
	if err := pkgvalidator.Validate(&r); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestCustomTags_messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*reportReq)
		field  string
		want   string
	}{
		{"unknown category", func(r *reportReq) { r.Category = "Pets" }, "category", "Must be one of: Electronics"},
		{"lowercase location", func(r *reportReq) { r.Location = "library" }, "location", "Must be one of: Library"},
		{"bad date", func(r *reportReq) { r.DateFound = "05/03/2024" }, "date_found", "Must be a date in YYYY-MM-DD format"},
		{"bad optional date", func(r *reportReq) { r.DateTo = "2024-13-01" }, "date_to", "Must be a date in YYYY-MM-DD format"},
		{"no images", func(r *reportReq) { r.Images = nil }, "images", "Must contain at least 1 entries"},
		{"too many images", func(r *reportReq) { r.Images = append(r.Images, r.Images[0], r.Images[0]) }, "images", "Must contain at most 2 entries"},
		{"not a data url", func(r *reportReq) { r.Images = []string{"https://x/y.png"} }, "images[0]", "Must be a base64 image data URL"},
		{"nested email", func(r *reportReq) { r.Finder.Email = "nope" }, "finder.email", "Must be a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			tt.mutate(&r)
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&r))
			if !strings.HasPrefix(m[tt.field], tt.want) {
				t.Errorf("field %q: got %q, want prefix %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

// --- ValidateRequest ---

type itemReq struct {
	Name     string `json:"name"     validate:"required,min=2,max=120"`
	Category string `json:"category" validate:"required,item_category"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Wallet","category":"Accessories"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Wallet" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 200) + `","category":"Other"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 32)

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Wallet"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing category")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}
