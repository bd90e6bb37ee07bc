package queue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatEvent(t *testing.T) {
	line := FormatEvent(RecordCreatedEvent{
		Table:     "stand",
		ID:        7,
		Fields:    map[string]string{"stand_name": "Tacos", "area_id": "2"},
		CreatedAt: "2026-07-03T18:00:00Z",
	})
	want := `[2026-07-03T18:00:00Z] Record created | table=stand | id=7 | area_id="2" | stand_name="Tacos"` + "\n"
	if line != want {
		t.Errorf("FormatEvent() =\n%q\nwant\n%q", line, want)
	}
}

func TestHandleMessage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	t.Run("Appends", func(t *testing.T) {
		for _, body := range []string{
			`{"table":"ticket","id":1,"fields":{"ticket_type":"VIP"},"created_at":"t1"}`,
			`{"table":"dish","id":2,"fields":{"dish_name":"Fries"},"created_at":"t2"}`,
		} {
			if err := HandleMessage([]byte(body), dir); err != nil {
				t.Fatalf("HandleMessage: %v", err)
			}
		}

		data, err := os.ReadFile(filepath.Join(dir, ActivityLogName))
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
		}
		if !strings.Contains(lines[1], "table=dish") || !strings.Contains(lines[1], `dish_name="Fries"`) {
			t.Errorf("unexpected second line %q", lines[1])
		}
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		if err := HandleMessage([]byte("not json"), dir); err == nil {
			t.Error("expected unmarshal error")
		}
		if err := HandleMessage([]byte(`{"id":3}`), dir); err == nil {
			t.Error("expected error for event without table")
		}
	})
}
