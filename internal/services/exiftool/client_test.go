package exiftool

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/gbagnoli/photo-process/internal/runner"
	"github.com/gbagnoli/photo-process/internal/timezone"
)

type execCall struct {
	binary string
	args   []string
}

type fakeExecutor struct {
	runs   []execCall
	reads  []execCall
	output string
	err    error
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) error {
	f.runs = append(f.runs, execCall{binary: binary, args: append([]string(nil), args...)})
	return f.err
}

func (f *fakeExecutor) Output(_ context.Context, binary string, args []string) (string, error) {
	f.reads = append(f.reads, execCall{binary: binary, args: append([]string(nil), args...)})
	return f.output, f.err
}

func newTestClient(t *testing.T, fake *fakeExecutor) *Client {
	t.Helper()
	run := runner.New(nil, false, runner.WithExecutor(fake), runner.WithEchoWriter(io.Discard))
	client, err := New("exiftool", run)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestNewValidation(t *testing.T) {
	run := runner.New(nil, false, runner.WithEchoWriter(io.Discard))
	if _, err := New("  ", run); err == nil {
		t.Error("expected error for blank binary")
	}
	if _, err := New("exiftool", nil); err == nil {
		t.Error("expected error for nil runner")
	}
}

func TestRenameByDateArgs(t *testing.T) {
	fake := &fakeExecutor{}
	client := newTestClient(t, fake)

	if err := client.RenameByDate(context.Background(), []string{"/photos"}); err != nil {
		t.Fatalf("RenameByDate failed: %v", err)
	}
	want := []string{
		"-FileName<DateTimeOriginal",
		"-d", "%Y-%m-%d %H.%M.%S%%-c.%%e",
		"-overwrite_original",
		"/photos",
	}
	if len(fake.runs) != 1 || !reflect.DeepEqual(fake.runs[0].args, want) {
		t.Errorf("args = %v, want %v", fake.runs, want)
	}
}

func TestSetTimeArgs(t *testing.T) {
	rome := timezone.City{Name: "Rome", ID: 19, Offset: "+01:00"}
	newYork := timezone.City{Name: "New York", ID: 27, Offset: "-05:00"}

	tests := []struct {
		name string
		city timezone.City
		dst  bool
		want []string
	}{
		{
			name: "positive offset no dst",
			city: rome,
			want: []string{
				"-AllDates+=0:0:0 01:00:0",
				"-TimeZone=+01:00",
				"-TimeZoneCity#=19",
				"-OffSetTime=+01:00",
				"-OffSetTimeOriginal=+01:00",
				"-OffSetTimeDigitized=+01:00",
				"-DaylightSavings#=0",
				"-overwrite_original",
				"/photos",
			},
		},
		{
			name: "dst adds an hour flag",
			city: rome,
			dst:  true,
			want: []string{
				"-AllDates+=0:0:0 01:00:0",
				"-TimeZone=+01:00",
				"-TimeZoneCity#=19",
				"-OffSetTime=+01:00",
				"-OffSetTimeOriginal=+01:00",
				"-OffSetTimeDigitized=+01:00",
				"-DaylightSavings#=60",
				"-overwrite_original",
				"/photos",
			},
		},
		{
			name: "negative offset shifts backwards",
			city: newYork,
			want: []string{
				"-AllDates-=0:0:0 05:00:0",
				"-TimeZone=-05:00",
				"-TimeZoneCity#=27",
				"-OffSetTime=-05:00",
				"-OffSetTimeOriginal=-05:00",
				"-OffSetTimeDigitized=-05:00",
				"-DaylightSavings#=0",
				"-overwrite_original",
				"/photos",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExecutor{}
			client := newTestClient(t, fake)
			if err := client.SetTime(context.Background(), tt.city, tt.dst, []string{"/photos"}); err != nil {
				t.Fatalf("SetTime failed: %v", err)
			}
			if len(fake.runs) != 1 {
				t.Fatalf("expected one invocation, got %d", len(fake.runs))
			}
			if !reflect.DeepEqual(fake.runs[0].args, tt.want) {
				t.Errorf("args = %v, want %v", fake.runs[0].args, tt.want)
			}
		})
	}
}

func TestSetTimeRejectsMalformedOffset(t *testing.T) {
	fake := &fakeExecutor{}
	client := newTestClient(t, fake)
	broken := timezone.City{Name: "Broken", ID: 1, Offset: "noon"}

	if err := client.SetTime(context.Background(), broken, false, []string{"/photos"}); err == nil {
		t.Fatal("expected error for malformed offset")
	}
	if len(fake.runs) != 0 {
		t.Error("no command should run for a malformed offset")
	}
}

func TestShiftArgs(t *testing.T) {
	tests := []struct {
		name    string
		by      string
		resetTZ bool
		want    []string
	}{
		{
			name: "bare amount shifts forward",
			by:   "5",
			want: []string{"-AllDates+=0:0:0 5:0", "-overwrite_original"},
		},
		{
			name: "explicit plus matches bare",
			by:   "+5",
			want: []string{"-AllDates+=0:0:0 5:0", "-overwrite_original"},
		},
		{
			name: "negative with minutes",
			by:   "-2:30",
			want: []string{"-AllDates-=0:0:0 2:30:0", "-overwrite_original"},
		},
		{
			name:    "reset clears every timezone tag distinctly",
			by:      "+1",
			resetTZ: true,
			want: []string{
				"-AllDates+=0:0:0 1:0",
				"-overwrite_original",
				"-OffSetTime=",
				"-OffSetTimeOriginal=",
				"-OffSetTimeDigitized=",
				"-Timezone=",
				"-TimezoneCity=",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExecutor{}
			client := newTestClient(t, fake)
			files := []string{"/photos/a.jpg", "/photos/b.jpg"}
			if err := client.Shift(context.Background(), tt.by, tt.resetTZ, files); err != nil {
				t.Fatalf("Shift failed: %v", err)
			}
			if len(fake.runs) != 1 {
				t.Fatalf("expected one invocation, got %d", len(fake.runs))
			}
			want := append(append([]string{}, tt.want...), files...)
			if !reflect.DeepEqual(fake.runs[0].args, want) {
				t.Errorf("args = %v, want %v", fake.runs[0].args, want)
			}
		})
	}
}

func TestOrganizeByDateArgs(t *testing.T) {
	fake := &fakeExecutor{}
	client := newTestClient(t, fake)
	files := []string{"/photos/a.jpg", "/photos/sub/b.jpg"}

	if err := client.OrganizeByDate(context.Background(), "/photos", files); err != nil {
		t.Fatalf("OrganizeByDate failed: %v", err)
	}
	want := []string{
		"-d", "%Y-%m-%d",
		"-Directory</photos/$DateTimeOriginal",
		"/photos/a.jpg", "/photos/sub/b.jpg",
	}
	if len(fake.runs) != 1 || !reflect.DeepEqual(fake.runs[0].args, want) {
		t.Errorf("args = %v, want %v", fake.runs, want)
	}
}

func TestDateRange(t *testing.T) {
	fake := &fakeExecutor{output: "2023-05-01\n-\n\n2023-04-28\nnot-a-date\n2023-05-03"}
	client := newTestClient(t, fake)

	start, end, ok, err := client.DateRange(context.Background(), "/photos")
	if err != nil {
		t.Fatalf("DateRange failed: %v", err)
	}
	if !ok {
		t.Fatal("expected dates to be found")
	}
	if got := start.Format("2006-01-02"); got != "2023-04-28" {
		t.Errorf("start = %s, want 2023-04-28", got)
	}
	if got := end.Format("2006-01-02"); got != "2023-05-03" {
		t.Errorf("end = %s, want 2023-05-03", got)
	}

	wantArgs := []string{"-T", "-d", "%Y-%m-%d", "-DateTimeOriginal", "-r", "/photos"}
	if len(fake.reads) != 1 || !reflect.DeepEqual(fake.reads[0].args, wantArgs) {
		t.Errorf("scan args = %v, want %v", fake.reads, wantArgs)
	}
}

func TestDateRangeWithoutDates(t *testing.T) {
	fake := &fakeExecutor{output: "-\n-\n"}
	client := newTestClient(t, fake)

	_, _, ok, err := client.DateRange(context.Background(), "/photos")
	if err != nil {
		t.Fatalf("DateRange failed: %v", err)
	}
	if ok {
		t.Error("expected no dates")
	}
}

func TestDateRangePropagatesToolError(t *testing.T) {
	fake := &fakeExecutor{err: errors.New("exiftool exited with status 1")}
	client := newTestClient(t, fake)

	if _, _, _, err := client.DateRange(context.Background(), "/photos"); err == nil {
		t.Fatal("expected scan failure to propagate")
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	fake := &fakeExecutor{output: "2023-05-01"}
	client := newTestClient(t, fake)

	start, end, ok, err := client.DateRange(context.Background(), "/photos")
	if err != nil || !ok {
		t.Fatalf("DateRange = ok %v, err %v", ok, err)
	}
	if !start.Equal(end) {
		t.Errorf("single day should collapse the range: %v vs %v", start, end)
	}
	if got := start.Format("2006-01-02"); got != "2023-05-01" {
		t.Errorf("day = %s, want 2023-05-01", got)
	}
}
