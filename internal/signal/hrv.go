package signal

import (
	"fmt"

	"vitals_monitor/internal/models"
)

const (
	HRVHours = 24
	HRVBase  = 60.0 // ms
	HRVRange = 40.0 // values fall in [HRVBase, HRVBase+HRVRange)
)

// GenerateHRV builds one bar per hour labelled "0:00" .. "23:00".
func GenerateHRV(rnd RandSource) []models.HRVBar {
	bars := make([]models.HRVBar, 0, HRVHours)
	for h := 0; h < HRVHours; h++ {
		bars = append(bars, models.HRVBar{
			Time:  fmt.Sprintf("%d:00", h),
			Value: HRVBase + rnd.Float64()*HRVRange,
		})
	}
	return bars
}
