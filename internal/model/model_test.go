package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "1", want: StrategyExtension},
		{in: "2", want: StrategyDate},
		{in: " 3 ", want: StrategyPattern},
		{in: "4", want: StrategyManual},
		{in: "5", want: StrategyAI},
		{in: "Pattern", want: StrategyPattern},
		{in: "ai", want: StrategyAI},
		{in: "6", wantErr: true},
		{in: "", wantErr: true},
		{in: "magic", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	got, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByName, got)

	got, err = ParseSortKey("5")
	require.NoError(t, err)
	assert.Equal(t, SortBySizeDesc, got)

	got, err = ParseSortKey("modified")
	require.NoError(t, err)
	assert.Equal(t, SortByModifiedAt, got)

	_, err = ParseSortKey("0")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestAssignment(t *testing.T) {
	a := NewAssignment([]AssignmentEntry{
		{Name: "b.png", Category: "Images"},
		{Name: "a.pdf", Category: "Documents"},
		{Name: "c.jpg", Category: "Images"},
	})

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []string{"b.png", "a.pdf", "c.jpg"}, a.Names())
	assert.Equal(t, []string{"Documents", "Images"}, a.Labels())
	assert.Equal(t, map[string]int{"Documents": 1, "Images": 2}, a.Counts())

	label, ok := a.Get("a.pdf")
	assert.True(t, ok)
	assert.Equal(t, "Documents", label)

	_, ok = a.Get("missing")
	assert.False(t, ok)
}

func TestAssignment_WithOverrides(t *testing.T) {
	a := NewAssignment([]AssignmentEntry{
		{Name: "a.pdf", Category: "Documents"},
		{Name: "b.png", Category: "Images"},
	})

	b := a.WithOverrides(map[string]string{
		"a.pdf":   " Taxes/2024 ",
		"b.png":   "   ",
		"new.txt": "Sneaky",
	})

	got, _ := b.Get("a.pdf")
	assert.Equal(t, "Taxes/2024", got)
	got, _ = b.Get("b.png")
	assert.Equal(t, "Images", got)
	assert.Equal(t, 2, b.Len())

	// original untouched
	got, _ = a.Get("a.pdf")
	assert.Equal(t, "Documents", got)
}

func TestAssignment_JSON(t *testing.T) {
	a := NewAssignment([]AssignmentEntry{{Name: "x.txt", Category: "Documents"}})
	b, err := a.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"x.txt","category":"Documents"}]`, string(b))

	var back Assignment
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, a.Map(), back.Map())
}

func TestMoveReport_Add(t *testing.T) {
	var r MoveReport
	r.Add(MoveResult{Name: "a", Outcome: OutcomeMoved})
	r.Add(MoveResult{Name: "b", Outcome: OutcomeSkipped})
	r.Add(MoveResult{Name: "c", Outcome: OutcomeFailed, Reason: "boom"})
	r.Add(MoveResult{Name: "d", Outcome: OutcomeMoved})

	assert.Equal(t, 2, r.Moved)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Failed)
	assert.Len(t, r.Results, 4)
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"Documents":        "Documents",
		"  Images  ":       "Images",
		"2023/November":    "2023/November",
		"../../etc":        "etc",
		"a/./b":            "a/b",
		"":                 "Other",
		"   ":              "Other",
		"..":               "Other",
		`Q1: "Reports"?`:   "Q1_ _Reports__",
		"tab\there":        "tab_here",
		"Icons Logos":      "Icons Logos",
		"/leading/slash/":  "leading/slash",
		`back\slash`:       "back_slash",
		"Job Applications": "Job Applications",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeLabel(in), "input %q", in)
	}
}

func TestAssignment_LabelsAreSanitized(t *testing.T) {
	a := NewAssignment([]AssignmentEntry{
		{Name: "photo.png", Category: "../Escape"},
		{Name: "report.pdf", Category: "Documents"},
	})
	got, _ := a.Get("photo.png")
	assert.Equal(t, "Escape", got)

	b := a.WithOverrides(map[string]string{"report.pdf": "Tax: 2024?"})
	got, _ = b.Get("report.pdf")
	assert.Equal(t, "Tax_ 2024_", got)
	assert.Equal(t, map[string]int{"Escape": 1, "Tax_ 2024_": 1}, b.Counts())
}
