package config

import "github.com/spf13/viper"

// defaultFontPath is where most Linux distributions install DejaVu,
// which covers the accented characters used in reports.
const defaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// ReportConfig holds settings for file-based report exports.
type ReportConfig struct {
	FontPath    string
	ChartImages []string
}

// LoadReportConfig reads report export settings from Viper.
func LoadReportConfig() ReportConfig {
	config := ReportConfig{
		FontPath: defaultFontPath,
	}

	if v := viper.GetString("report.font_path"); v != "" {
		config.FontPath = ExpandPath(v)
	}
	if v := viper.GetStringSlice("report.chart_images"); len(v) > 0 {
		config.ChartImages = make([]string, 0, len(v))
		for _, img := range v {
			config.ChartImages = append(config.ChartImages, ExpandPath(img))
		}
	}

	return config
}
