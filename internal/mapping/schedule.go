package mapping

import (
	"strings"

	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
)

// AppendAiringDay appends "Airs on {day}" to releaseInfo for the first
// schedule day listing animeID whose day token is not already part of the
// string, then stops. The substring membership check makes a repeated merge a
// no-op.
func AppendAiringDay(releaseInfo, animeID string, schedule []zannime.ScheduleDay) string {
	for _, day := range schedule {
		if !airsOn(day, animeID) || strings.Contains(releaseInfo, day.Day) {
			continue
		}
		fragment := "Airs on " + day.Day
		if releaseInfo == "" {
			return fragment
		}
		return releaseInfo + " | " + fragment
	}
	return releaseInfo
}

func airsOn(day zannime.ScheduleDay, animeID string) bool {
	for _, anime := range day.AnimeList {
		if anime.ID == animeID {
			return true
		}
	}
	return false
}
