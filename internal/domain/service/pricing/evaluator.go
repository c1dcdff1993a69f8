package pricing

import (
	"fmt"
	"strings"

	"track_market/internal/domain/entity"
)

const (
	evaluatorMinBasePrice = 1000
	evaluatorMaxBasePrice = 5000

	largeFileBonus     = 500
	largeFileThreshold = 5 * bytesInMegabyte
	losslessBonus      = 300

	minConfidence = 85
	maxConfidence = 98

	minDurationMinutes = 2
	maxDurationMinutes = 6
	maxDurationSeconds = 59
)

//nolint:gochecknoglobals
var (
	evaluationQualities = []string{"Отличное", "Хорошее", "Высокое"}
	evaluationGenres    = []string{"Electronic", "Pop", "Hip-Hop", "Rock", "Jazz", "Ambient"}
	evaluationDemand    = []string{"Высокий", "Средний", "Выше среднего"}
	losslessMarkers     = []string{".wav", ".flac"}
)

// Evaluator выдаёт случайную базовую цену с надбавками за размер и
// lossless-формат. Цена всегда в [1000, 5800].
type Evaluator struct {
	random Random
}

func NewEvaluator(random Random) *Evaluator {
	return &Evaluator{random: random}
}

func (e *Evaluator) Evaluate(track entity.Track) entity.Evaluation {
	price := int64(intBetween(e.random, evaluatorMinBasePrice, evaluatorMaxBasePrice))

	if track.FileSize > largeFileThreshold {
		price += largeFileBonus
	}

	if isLossless(track.FileName) {
		price += losslessBonus
	}

	minutes := intBetween(e.random, minDurationMinutes, maxDurationMinutes)
	seconds := intBetween(e.random, 0, maxDurationSeconds)

	return entity.Evaluation{
		Price:           price,
		Currency:        currencyRUB,
		Confidence:      intBetween(e.random, minConfidence, maxConfidence),
		Quality:         pick(e.random, evaluationQualities),
		Genre:           pick(e.random, evaluationGenres),
		Duration:        fmt.Sprintf("%d:%02d", minutes, seconds),
		PotentialDemand: pick(e.random, evaluationDemand),
		Recommendation:  fmt.Sprintf("Трек имеет хороший потенциал продаж. Рекомендуемая цена: %d ₽", price),
	}
}

// isLossless ищет маркер формата в любом месте имени, а не только в расширении:
// "mix.wav.mp3" тоже получает надбавку.
func isLossless(fileName string) bool {
	name := strings.ToLower(fileName)

	for _, marker := range losslessMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}

	return false
}
