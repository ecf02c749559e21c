package exiftool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gbagnoli/photo-process/internal/runner"
	"github.com/gbagnoli/photo-process/internal/timezone"
)

// renameDateFormat is handed to exiftool verbatim: %%-c and %%e are exiftool
// escapes (collision counter, original extension), not printf directives.
const renameDateFormat = "%Y-%m-%d %H.%M.%S%%-c.%%e"

// dayFormat is exiftool's -d argument for day-granularity values.
const dayFormat = "%Y-%m-%d"

// Client builds and dispatches exiftool write invocations.
type Client struct {
	binary string
	run    *runner.Runner
}

// New constructs an exiftool client.
func New(binary string, run *runner.Runner) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("exiftool binary required")
	}
	if run == nil {
		return nil, errors.New("runner required")
	}
	return &Client{binary: binary, run: run}, nil
}

// RenameByDate renames the targets (files, or directories scanned
// non-recursively) after their DateTimeOriginal, "YYYY-MM-DD
// HH.MM.SS[-c].ext", with a collision counter when two captures share a
// second.
func (c *Client) RenameByDate(ctx context.Context, paths []string) error {
	args := []string{
		"-FileName<DateTimeOriginal",
		"-d", renameDateFormat,
		"-overwrite_original",
	}
	return c.run.RunFiles(ctx, c.binary, args, paths)
}

// SetTime stamps the targets with a city's timezone: AllDates move by the
// offset and the timezone tag family records the city and its DST state.
func (c *Client) SetTime(ctx context.Context, city timezone.City, dst bool, paths []string) error {
	minutes, err := timezone.ParseOffset(city.Offset)
	if err != nil {
		return fmt.Errorf("timezone %s: %w", city.Name, err)
	}
	offset := timezone.FormatOffset(minutes)
	daylight := 0
	if dst {
		daylight = 60
	}
	args := []string{
		fmt.Sprintf("-AllDates%s=0:0:0 %s:0", offset[:1], offset[1:]),
		"-TimeZone=" + offset,
		fmt.Sprintf("-TimeZoneCity#=%d", city.ID),
		"-OffSetTime=" + offset,
		"-OffSetTimeOriginal=" + offset,
		"-OffSetTimeDigitized=" + offset,
		fmt.Sprintf("-DaylightSavings#=%d", daylight),
		"-overwrite_original",
	}
	return c.run.RunFiles(ctx, c.binary, args, paths)
}

// Shift moves AllDates on the given files by an "[+|-]HH[:MM]" amount. A
// missing sign shifts forward. When resetTZ is set every timezone tag is
// cleared alongside, each as its own argument.
func (c *Client) Shift(ctx context.Context, by string, resetTZ bool, files []string) error {
	direction := "+"
	if strings.HasPrefix(by, "+") || strings.HasPrefix(by, "-") {
		direction, by = by[:1], by[1:]
	}
	args := []string{
		fmt.Sprintf("-AllDates%s=0:0:0 %s:0", direction, by),
		"-overwrite_original",
	}
	if resetTZ {
		args = append(args,
			"-OffSetTime=",
			"-OffSetTimeOriginal=",
			"-OffSetTimeDigitized=",
			"-Timezone=",
			"-TimezoneCity=",
		)
	}
	return c.run.RunFiles(ctx, c.binary, args, files)
}

// OrganizeByDate moves the given files into per-day subdirectories of dir
// named after their DateTimeOriginal.
func (c *Client) OrganizeByDate(ctx context.Context, dir string, files []string) error {
	args := []string{
		"-d", dayFormat,
		fmt.Sprintf("-Directory<%s/$DateTimeOriginal", dir),
	}
	return c.run.RunFiles(ctx, c.binary, args, files)
}

// DateRange scans dir recursively for DateTimeOriginal values and returns
// the earliest and latest capture day. ok reports whether any dated file was
// found.
func (c *Client) DateRange(ctx context.Context, dir string) (start, end time.Time, ok bool, err error) {
	out, err := c.run.Output(ctx, c.binary, "-T", "-d", dayFormat, "-DateTimeOriginal", "-r", dir)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	for _, line := range strings.Split(out, "\n") {
		value := strings.TrimSpace(line)
		if value == "" || value == "-" {
			continue
		}
		day, perr := time.Parse(dayLayout, value)
		if perr != nil {
			continue
		}
		if !ok || day.Before(start) {
			start = day
		}
		if !ok || day.After(end) {
			end = day
		}
		ok = true
	}
	return start, end, ok, nil
}

// dayLayout is the Go layout matching dayFormat's exiftool output.
const dayLayout = "2006-01-02"
