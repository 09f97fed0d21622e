package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.August, 31)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-08-31"` {
		t.Errorf("marshaled as %s, want \"2026-08-31\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("roundtrip gave %v, want %v", back, d)
	}
}

func TestDateZeroValue(t *testing.T) {
	var d Date
	if d.String() != "" {
		t.Errorf("zero date String() = %q, want empty", d.String())
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Errorf("zero date marshaled as %s, want \"\"", b)
	}

	var back Date
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !back.IsZero() {
		t.Error("empty string should unmarshal to the zero date")
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("31/08/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2026, time.February, 27).AddDays(2)
	want := NewDate(2026, time.March, 1)
	if !d.Equal(want.Time) {
		t.Errorf("AddDays crossed month boundary to %v, want %v", d, want)
	}
}
