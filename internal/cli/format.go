package cli

import (
	"time"

	"mannwallet/pkg/utils"
)

// FormatIndianCurrency formats a number in Indian currency format (lakhs, crores).
func FormatIndianCurrency(amount float64) string {
	return utils.FormatIndianCurrency(amount)
}

// FormatRupees formats a whole-rupee amount with Indian grouping.
func FormatRupees(amount int64) string {
	return utils.FormatRupees(amount)
}

// FormatDate formats a timestamp for display.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = "02-Jan-2006"
	}
	return t.Format(layout)
}

// emotionTag returns a short marker for an emotion in list output.
func emotionTag(emotion string) string {
	switch emotion {
	case "happy":
		return "😊"
	case "stressed":
		return "😰"
	case "excited":
		return "🤩"
	case "sad":
		return "😢"
	case "angry":
		return "😠"
	case "calm":
		return "😌"
	case "anxious":
		return "😟"
	case "guilty":
		return "😔"
	default:
		return "•"
	}
}
