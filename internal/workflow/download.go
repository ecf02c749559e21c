package workflow

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/fileutil"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// activityPageLimit is the page size for garmin activity listings.
const activityPageLimit = 100

// defaultTrackWindowDays is how far back DownloadTracks reaches when no
// start date is given.
const defaultTrackWindowDays = 20

const dayLayout = "2006-01-02"

// DownloadTracks fetches GPX activities recorded between start and end from
// the garmin account into dest, canonicalizes each file, and merges
// everything into the aggregate track. A zero end means today; a zero start
// means the default window before end. Being logged out is fatal except
// under dry-run, where the run continues to report what it would do.
func DownloadTracks(ctx context.Context, ts *Toolset, cfg config.Config, dest string, start, end time.Time) error {
	ctx = services.WithOperation(ctx, "download-tracks")
	logger := logging.WithContext(ctx, ts.Logger)

	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -defaultTrackWindowDays)
	}
	start, end = dayOf(start), dayOf(end)
	logger.Info("downloading activities",
		logging.String("start", start.Format(dayLayout)),
		logging.String("end", end.Format(dayLayout)),
		logging.String("dest", dest),
	)

	loggedIn, err := ts.Garmin.LoggedIn(ctx)
	if err != nil {
		return err
	}
	if !loggedIn {
		const msg = "not logged in, run 'garmin auth login' first"
		if !ts.Run.DryRun() {
			return services.Wrap(services.ErrExternalTool, "garmin", "download-tracks", msg, nil)
		}
		logger.Warn(msg)
	}

	if err := fileutil.EnsureDir(dest); err != nil {
		return err
	}

	for offset := 0; ; offset += activityPageLimit {
		activities, err := ts.Garmin.ListActivities(ctx, activityPageLimit, offset)
		if err != nil {
			return err
		}
		if len(activities) == 0 {
			break
		}

		allOlder := true
		for _, act := range activities {
			if act.Date.Before(start) {
				continue
			}
			allOlder = false
			if act.Date.After(end) {
				continue
			}

			path := filepath.Join(dest, act.ID+".gpx")
			if _, err := os.Stat(path); err == nil {
				logger.Info("activity already downloaded, checking name",
					logging.String("id", act.ID))
				if _, err := ts.Tracks.Canonicalize(ctx, path); err != nil {
					return err
				}
				continue
			}

			logger.Info("downloading activity",
				logging.String("id", act.ID),
				logging.String("date", act.Date.Format(dayLayout)),
			)
			if err := ts.Garmin.Download(ctx, act.ID, path); err != nil {
				return err
			}
			if _, err := ts.Tracks.Canonicalize(ctx, path); err != nil {
				return err
			}
		}

		// Listings run newest-first, so a page of entirely pre-window
		// activities means every later page is older still.
		if allOlder {
			break
		}
	}

	media, err := ScanMedia(dest, cfg.Suffixes)
	if err != nil {
		return err
	}
	if len(media.Tracks) == 0 {
		return nil
	}
	_, err = ts.Tracks.MergeAll(ctx, media.Tracks, dest)
	return err
}

// dayOf truncates a timestamp to its calendar day so range checks compare at
// the granularity activity listings report.
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
