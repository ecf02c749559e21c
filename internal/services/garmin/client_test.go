package garmin

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/gbagnoli/photo-process/internal/runner"
)

type fakeExecutor struct {
	runs   [][]string
	reads  [][]string
	output string
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) error {
	f.runs = append(f.runs, append([]string{binary}, args...))
	return nil
}

func (f *fakeExecutor) Output(_ context.Context, binary string, args []string) (string, error) {
	f.reads = append(f.reads, append([]string{binary}, args...))
	return f.output, nil
}

func newTestClient(t *testing.T, fake *fakeExecutor) *Client {
	t.Helper()
	run := runner.New(nil, false, runner.WithExecutor(fake), runner.WithEchoWriter(io.Discard))
	client, err := New("garmin", run)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestLoggedIn(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"logged in", "Account: someone@example.com\nStatus: Logged in\n", true},
		{"logged out", "Status: Not logged in\n", false},
		{"empty output", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExecutor{output: tt.output}
			client := newTestClient(t, fake)

			got, err := client.LoggedIn(context.Background())
			if err != nil {
				t.Fatalf("LoggedIn failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoggedIn = %v, want %v", got, tt.want)
			}
			wantCmd := []string{"garmin", "auth", "status"}
			if len(fake.reads) != 1 || !reflect.DeepEqual(fake.reads[0], wantCmd) {
				t.Errorf("command = %v, want %v", fake.reads, wantCmd)
			}
		})
	}
}

func TestListActivitiesParsesTable(t *testing.T) {
	fake := &fakeExecutor{output: `ID          Date        Name
----------  ----------  --------------------
11223344    2023-05-01  Morning Ride
11223355    2023-04-28  Evening Run

not enough
11223366    yesterday   Broken Row
11223377    2023-04-20  Walk`}
	client := newTestClient(t, fake)

	got, err := client.ListActivities(context.Background(), 100, 200)
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}

	wantCmd := []string{"garmin", "activities", "list", "--limit", "100", "--start", "200"}
	if len(fake.reads) != 1 || !reflect.DeepEqual(fake.reads[0], wantCmd) {
		t.Fatalf("command = %v, want %v", fake.reads, wantCmd)
	}

	wantIDs := []string{"11223344", "11223355", "11223377"}
	if len(got) != len(wantIDs) {
		t.Fatalf("parsed %d activities, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("activity[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}
	if got[0].Date.Format("2006-01-02") != "2023-05-01" {
		t.Errorf("activity[0].Date = %v", got[0].Date)
	}
}

func TestListActivitiesEmptyPage(t *testing.T) {
	fake := &fakeExecutor{output: "ID          Date\n----------  ----------\n"}
	client := newTestClient(t, fake)

	got, err := client.ListActivities(context.Background(), 100, 0)
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty page, got %+v", got)
	}
}

func TestDownloadArgs(t *testing.T) {
	fake := &fakeExecutor{}
	client := newTestClient(t, fake)

	if err := client.Download(context.Background(), "11223344", "/t/11223344.gpx"); err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	want := []string{"garmin", "activities", "download", "-t", "gpx", "-o", "/t/11223344.gpx", "11223344"}
	if len(fake.runs) != 1 || !reflect.DeepEqual(fake.runs[0], want) {
		t.Errorf("command = %v, want %v", fake.runs, want)
	}
}
