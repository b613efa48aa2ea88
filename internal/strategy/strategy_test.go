package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fileorg/internal/model"
)

func rec(name, ext, mime string) model.FileRecord {
	return model.FileRecord{Name: name, Extension: ext, MIMEType: mime}
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		name string
		r    model.FileRecord
		want string
	}{
		{"pdf", rec("report.pdf", "pdf", "application/pdf"), "Documents"},
		{"upper-case ext", rec("X.JPG", "JPG", ""), "Images"},
		{"presentation", rec("deck.pptx", "pptx", ""), "Presentations"},
		{"spreadsheet", rec("data.csv", "csv", "text/csv"), "Spreadsheets"},
		{"disk image", rec("os.iso", "iso", ""), "Disk Images"},
		{"torrent", rec("a.torrent", "torrent", ""), "Downloads"},
		{"mime image family", rec("pic.jfif", "jfif", "image/jpeg"), "Images"},
		{"mime text family", rec("notes.nfo", "nfo", "text/x-nfo"), "Documents"},
		{"mime word", rec("x.dot", "dot", "application/msword"), "Documents"},
		{"mime excel", rec("x.xlt", "xlt", "application/vnd.ms-excel"), "Spreadsheets"},
		{"mime powerpoint", rec("x.pot", "pot", "application/vnd.ms-powerpoint"), "Presentations"},
		{"mime rar", rec("x.cbr", "cbr", "application/x-rar-compressed"), "Archives"},
		{"unknown mime", rec("unknown.xyz", "xyz", "chemical/x-xyz"), Other},
		{"nothing known", rec("blob", "", ""), Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ByExtension(tt.r))
		})
	}
}

func TestByExtension_Total(t *testing.T) {
	exts := []string{"", "a", "zzz", "pdf", "PNG", "tar.gz", "💾"}
	mimes := []string{"", "foo/bar", "image/x", "application/octet-stream"}
	for _, e := range exts {
		for _, m := range mimes {
			assert.NotEmpty(t, ByExtension(rec("f", e, m)), "ext=%q mime=%q", e, m)
		}
	}
}

func TestDate(t *testing.T) {
	created := time.Date(2023, 11, 5, 10, 0, 0, 0, time.UTC)
	r := model.FileRecord{Name: "a.txt", CreatedAt: created}

	assert.Equal(t, "2023/November", Date{}.Classify(r))

	r.TakenAt = time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023/November", Date{}.Classify(r))
	assert.Equal(t, "2019/July", Date{PreferCaptureTime: true}.Classify(r))

	now := func() time.Time { return time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "2025/February", Date{Now: now}.Classify(model.FileRecord{Name: "zero"}))
	assert.NotEmpty(t, Date{}.Classify(model.FileRecord{Name: "zero"}))
}

func TestByPattern(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"invoice_2024.txt", "Finance", true},
		{"invoice_backup.txt", "Finance", true},
		{"My_Resume.docx", "Job Applications", true},
		{"cover letter.pdf", "Job Applications", true},
		{"report.pdf", "Research", true},
		{"Screenshot 2024-01-01.png", "Screenshots", true},
		{"db.bak", "Backups", true},
		{"avatar.png", "Profile Pictures", true},
		{"server.LOG", "Logs", true},
		{"app_icon.png", "Icons Logos", true},
		// "logo" also contains "log" and Logs precedes Icons Logos.
		{"company_logo.svg", "Logs", true},
		{"instagram_post.jpg", "Social Media", true},
		{"photo.png", "", false},
		{"unknown.xyz", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ByPattern(model.FileRecord{Name: tt.name})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByPattern_FirstMatchWins(t *testing.T) {
	// "project_backup" matches both Projects and Backups; Projects is earlier.
	got, ok := ByPattern(model.FileRecord{Name: "project_backup.zip"})
	assert.True(t, ok)
	assert.Equal(t, "Projects", got)
}

func TestMatchCandidate(t *testing.T) {
	cands := []string{"Work", "Photos", "Receipts", "Misc"}

	got, exact := MatchCandidate("Photos", cands)
	assert.True(t, exact)
	assert.Equal(t, "Photos", got)

	got, exact = MatchCandidate("photos", cands)
	assert.False(t, exact)
	assert.Equal(t, "Photos", got)

	// len("Travel")=6 ties with "Photos" only.
	got, _ = MatchCandidate("Travel", cands)
	assert.Equal(t, "Photos", got)

	// len("Tax")=3: "Work" and "Misc" are both 1 away; the earlier one wins.
	got, _ = MatchCandidate("Tax", cands)
	assert.Equal(t, "Work", got)

	got, _ = MatchCandidate("anything", nil)
	assert.Equal(t, Other, got)
}

func TestCleanCandidates(t *testing.T) {
	raw := []string{" Work ", "", "Work", "`Photos`", "a", "b", "c", "d", "e", "f", "g", "h", "i"}
	got := CleanCandidates(raw)
	assert.Equal(t, []string{"Work", "Photos", "a", "b", "c", "d", "e", "f", "g", "h"}, got)
}

func TestIsText(t *testing.T) {
	assert.True(t, IsText(rec("a.txt", "txt", "")))
	assert.True(t, IsText(rec("a.nfo", "nfo", "text/plain")))
	assert.False(t, IsText(rec("a.png", "png", "image/png")))
}

func TestReadText_Truncates(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/long.txt"
	content := make([]rune, MaxTextChars+50)
	for i := range content {
		content[i] = 'é'
	}
	writeTestFile(t, path, string(content))

	got, err := readText(path, MaxTextChars)
	assert.NoError(t, err)
	assert.Equal(t, MaxTextChars, len([]rune(got)))
}
