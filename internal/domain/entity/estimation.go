package entity

// Track файл, по которому считается оценка.
type Track struct {
	FileName string
	FileSize int64
}

// Estimation результат оценки по размеру файла.
type Estimation struct {
	Price          int64
	Track          Track
	Quality        string
	Genre          string
	Recommendation string
}

// Evaluation расширенная оценка со случайными характеристиками трека.
type Evaluation struct {
	Price           int64
	Currency        string
	Confidence      int
	Quality         string
	Genre           string
	Duration        string
	PotentialDemand string
	Recommendation  string
}
