package emoji

import (
	"github.com/drakos74/free-perceptron/internal/model"
)

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	FullEclipse  = "🌑"
	ThirdEclipse = "🌒"
	HalfEclipse  = "🌓"
	FirstEclipse = "🌔"
	FullMoon     = "🌕"
	Star         = "🌟"

	Zero = "🥜"
	Down = "🐞"
	Up   = "🦠"

	DotFire  = "🔥"
	DotWater = "💧"

	Check = "✅"
	Error = "🚫"
)

// MapBool maps the correctness of a guess to an emoji.
func MapBool(s bool) string {
	if s {
		return Check
	}
	return Error
}

// MapLabel maps the label to an emoji.
func MapLabel(l model.Label) string {
	switch l {
	case model.Positive:
		return DotFire
	case model.Negative:
		return DotWater
	}
	return Zero
}

// MapToSentiment maps the given float value according to it's sign.
func MapToSentiment(f float64) string {
	emo := Zero
	if f > 0 {
		emo = Up
	} else if f < 0 {
		emo = Down
	}
	return emo
}

// MapAccuracy maps an accuracy in [0,1] to the moon phases, with a star for a perfect score.
func MapAccuracy(a float64) string {
	switch {
	case a >= 1:
		return Star
	case a >= 0.9:
		return FullMoon
	case a >= 0.75:
		return FirstEclipse
	case a >= 0.5:
		return HalfEclipse
	case a >= 0.25:
		return ThirdEclipse
	}
	return FullEclipse
}
