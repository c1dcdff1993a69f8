package pricing

import (
	"fmt"

	"track_market/internal/domain/entity"
)

const (
	estimatorBasePrice = 5000
	estimatorMinPrice  = 3000
	estimatorMaxPrice  = 25000
	estimatorPriceStep = 1000

	genreMultiplierMin = 0.8
	genreMultiplierMax = 1.5

	qualityHigh   = "high"
	qualityMedium = "medium"
	defaultGenre  = "Electronic"
)

// qualityTier порог размера (строго больше sizeOverMB) и множитель цены.
type qualityTier struct {
	sizeOverMB float64
	multiplier float64
}

//nolint:gochecknoglobals,mnd
var qualityTiers = []qualityTier{
	{sizeOverMB: 10, multiplier: 2.0},
	{sizeOverMB: 5, multiplier: 1.5},
	{sizeOverMB: 2, multiplier: 1.2},
}

const lowestQualityMultiplier = 0.8

// Estimator оценивает трек по размеру файла и случайному жанровому множителю.
// Результат всегда в [3000, 25000] и кратен 1000.
type Estimator struct {
	random Random
}

func NewEstimator(random Random) *Estimator {
	return &Estimator{random: random}
}

func (e *Estimator) Estimate(track entity.Track) entity.Estimation {
	sizeMB := float64(track.FileSize) / bytesInMegabyte

	genreMultiplier := genreMultiplierMin + e.random.Float64()*(genreMultiplierMax-genreMultiplierMin)

	price := int64(estimatorBasePrice * QualityMultiplier(track.FileSize) * genreMultiplier)
	price = max(estimatorMinPrice, min(price, estimatorMaxPrice))
	price = price / estimatorPriceStep * estimatorPriceStep

	quality := qualityMedium
	if sizeMB > 5 { //nolint:mnd
		quality = qualityHigh
	}

	return entity.Estimation{
		Price:          price,
		Track:          track,
		Quality:        quality,
		Genre:          defaultGenre,
		Recommendation: fmt.Sprintf("Рекомендуемая цена на основе анализа: %d ₽", price),
	}
}

// QualityMultiplier выбирает множитель по размеру файла в байтах.
func QualityMultiplier(fileSize int64) float64 {
	sizeMB := float64(fileSize) / bytesInMegabyte

	for _, tier := range qualityTiers {
		if sizeMB > tier.sizeOverMB {
			return tier.multiplier
		}
	}

	return lowestQualityMultiplier
}
